package ldap

// MaxFilterDepth bounds the recursion the Filter decoder (and the Not
// branch in particular) will follow before giving up with
// ErrDepthExceeded. It is a plain constant, not ambient state: every
// recursive call threads its own depth counter.
const MaxFilterDepth = 32

// DecodeOptions configures the few knobs the decoder exposes. The zero
// value is the default configuration used by DecodeMessage/DecodeMessages.
type DecodeOptions struct {
	// MaxFilterDepth overrides the default recursion bound for nested
	// Filter CHOICEs. Zero means "use the package default".
	MaxFilterDepth int
}

func (o DecodeOptions) maxFilterDepth() int {
	if o.MaxFilterDepth > 0 {
		return o.MaxFilterDepth
	}
	return MaxFilterDepth
}

// expectTagged asserts that buf begins with an element of the given class
// and tag, and returns its content plus whatever follows it. It is the
// "mandatory tagged" combinator of spec.md §4.B.
func expectTagged(buf []byte, class Class, tag uint64) (content, rest []byte, err *Error) {
	h, content, rest, err := readTLV(buf)
	if err != nil {
		return nil, nil, err
	}
	if h.class != class || h.tag != tag {
		return nil, nil, kindErrorf(ErrBER, "unexpected tag")
	}
	return content, rest, nil
}

// tryTagged peeks the next element; if it matches (class, tag) it behaves
// like expectTagged and ok is true. If the header parses but doesn't
// match, buf is returned completely untouched and ok is false. A
// structurally malformed header is still a hard error even when it would
// not have matched, since well-formedness must be established before a
// tag comparison means anything. This is the "optional tagged" combinator
// of spec.md §4.B.
func tryTagged(buf []byte, class Class, tag uint64) (content, rest []byte, ok bool, err *Error) {
	if len(buf) == 0 {
		return nil, buf, false, nil
	}
	h, herr := readHeader(buf)
	if herr != nil {
		return nil, nil, false, herr
	}
	if h.class != class || h.tag != tag {
		return nil, buf, false, nil
	}
	content = buf[h.headerLen : h.headerLen+h.length]
	rest = buf[h.headerLen+h.length:]
	return content, rest, true, nil
}

// expectUniversal asserts a Universal-class element with the given tag
// and constructed bit, returning its content and the remainder.
func expectUniversal(buf []byte, tag uint64, constructed bool) (content, rest []byte, err *Error) {
	h, content, rest, err := readTLV(buf)
	if err != nil {
		return nil, nil, err
	}
	if h.class != ClassUniversal || h.tag != tag || h.constructed != constructed {
		return nil, nil, kindErrorf(ErrBER, "unexpected universal tag")
	}
	return content, rest, nil
}

// sequenceElements repeatedly applies decodeElem to the content of a
// Universal SEQUENCE (tag 16, constructed), stopping when the SEQUENCE
// content is exhausted. It implements the SEQUENCE-of repetition rule of
// spec.md §4.B ("many0"/"many1" are just min below).
func sequenceElements[T any](buf []byte, min int, decodeElem func([]byte) (T, []byte, *Error)) ([]T, []byte, *Error) {
	content, rest, err := expectUniversal(buf, TagSequence, true)
	if err != nil {
		return nil, nil, err
	}
	items, err := repeatElements(content, min, decodeElem)
	if err != nil {
		return nil, nil, err
	}
	return items, rest, nil
}

// setElements is sequenceElements for Universal SET (tag 17).
func setElements[T any](buf []byte, min int, decodeElem func([]byte) (T, []byte, *Error)) ([]T, []byte, *Error) {
	content, rest, err := expectUniversal(buf, TagSet, true)
	if err != nil {
		return nil, nil, err
	}
	items, err := repeatElements(content, min, decodeElem)
	if err != nil {
		return nil, nil, err
	}
	return items, rest, nil
}

// repeatElements decodes decodeElem over content until it is exhausted,
// requiring at least min results (min=0 for "many0", min=1 for "many1").
func repeatElements[T any](content []byte, min int, decodeElem func([]byte) (T, []byte, *Error)) ([]T, *Error) {
	var items []T
	rem := content
	for len(rem) > 0 {
		item, next, err := decodeElem(rem)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		rem = next
	}
	if len(items) < min {
		return nil, kindErrorf(ErrBER, "expected at least one element")
	}
	return items, nil
}
