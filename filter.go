package ldap

// Filter tag numbers (RFC 4511 §4.5.1). Values match the wire tags, the
// same constants go-ldap/ldap's filter.go exposes as FilterAnd through
// FilterExtensibleMatch, and the tags rusticata's ldap-parser
// filter_parser.rs switches on.
const (
	FilterAnd             uint64 = 0
	FilterOr              uint64 = 1
	FilterNot             uint64 = 2
	FilterEqualityMatch   uint64 = 3
	FilterSubstrings      uint64 = 4
	FilterGreaterOrEqual  uint64 = 5
	FilterLessOrEqual     uint64 = 6
	FilterPresent         uint64 = 7
	FilterApproxMatch     uint64 = 8
	FilterExtensibleMatch uint64 = 9
)

// Substring tag numbers (RFC 4511 §4.5.1).
const (
	FilterSubstringsInitial uint64 = 0
	FilterSubstringsAny     uint64 = 1
	FilterSubstringsFinal   uint64 = 2
)

// FilterKind identifies which field of Filter is populated; its values
// equal the wire tag number of the corresponding arm.
type FilterKind uint64

const (
	FilterKindAnd             = FilterKind(FilterAnd)
	FilterKindOr              = FilterKind(FilterOr)
	FilterKindNot             = FilterKind(FilterNot)
	FilterKindEqualityMatch   = FilterKind(FilterEqualityMatch)
	FilterKindSubstrings      = FilterKind(FilterSubstrings)
	FilterKindGreaterOrEqual  = FilterKind(FilterGreaterOrEqual)
	FilterKindLessOrEqual     = FilterKind(FilterLessOrEqual)
	FilterKindPresent         = FilterKind(FilterPresent)
	FilterKindApproxMatch     = FilterKind(FilterApproxMatch)
	FilterKindExtensibleMatch = FilterKind(FilterExtensibleMatch)
)

// Filter is the recursive CHOICE of spec.md §3/§4.D. Exactly one field
// matching Kind is populated.
type Filter struct {
	Kind FilterKind

	And             []Filter
	Or              []Filter
	Not             *Filter
	EqualityMatch   *AttributeValueAssertion
	Substrings      *SubstringFilter
	GreaterOrEqual  *AttributeValueAssertion
	LessOrEqual     *AttributeValueAssertion
	Present         string
	ApproxMatch     *AttributeValueAssertion
	ExtensibleMatch *MatchingRuleAssertion
}

// SubstringFilter is Filter's Substrings arm.
type SubstringFilter struct {
	FilterType string
	Substrings []Substring
}

// SubstringKind identifies which field of Substring is populated.
type SubstringKind uint64

const (
	SubstringKindInitial = SubstringKind(FilterSubstringsInitial)
	SubstringKindAny     = SubstringKind(FilterSubstringsAny)
	SubstringKindFinal   = SubstringKind(FilterSubstringsFinal)
)

// Substring is one element of SubstringFilter.Substrings.
type Substring struct {
	Kind  SubstringKind
	Value []byte
}

// MatchingRuleAssertion is Filter's ExtensibleMatch arm.
type MatchingRuleAssertion struct {
	MatchingRule    string
	HasMatchingRule bool
	RuleType        string
	HasRuleType     bool
	AssertionValue  []byte
	DnAttributes    bool // default false when absent
}

// Tag numbers for MatchingRuleAssertion's context-tagged fields.
const (
	tagMatchingRule = uint64(1)
	tagRuleType     = uint64(2)
	tagMatchValue   = uint64(3)
	tagDnAttributes = uint64(4)
)

// decodeFilter decodes one Filter CHOICE from buf, recursing through And/
// Or/Not with a bounded depth (spec.md §4.B, §4.D). depth is the depth of
// the element about to be decoded; the top-level call uses depth 1.
func decodeFilter(buf []byte, depth int, opts DecodeOptions) (Filter, []byte, *Error) {
	if depth > opts.maxFilterDepth() {
		return Filter{}, nil, kindErrorf(ErrDepthExceeded, "")
	}

	h, err := readHeader(buf)
	if err != nil {
		return Filter{}, nil, err
	}
	if h.class != ClassContext {
		return Filter{}, nil, kindErrorf(ErrInvalidFilterType, "filter tag must be context-specific")
	}

	switch h.tag {
	case FilterAnd, FilterOr:
		content, rest, terr := expectTagged(buf, ClassContext, h.tag)
		if terr != nil {
			return Filter{}, nil, terr
		}
		children, cerr := repeatElements(content, 1, func(b []byte) (Filter, []byte, *Error) {
			return decodeFilter(b, depth+1, opts)
		})
		if cerr != nil {
			return Filter{}, nil, cerr
		}
		if h.tag == FilterAnd {
			return Filter{Kind: FilterKindAnd, And: children}, rest, nil
		}
		return Filter{Kind: FilterKindOr, Or: children}, rest, nil

	case FilterNot:
		content, rest, terr := expectTagged(buf, ClassContext, FilterNot)
		if terr != nil {
			return Filter{}, nil, terr
		}
		inner, remInner, ierr := decodeFilter(content, depth+1, opts)
		if ierr != nil {
			return Filter{}, nil, ierr
		}
		if len(remInner) != 0 {
			return Filter{}, nil, kindErrorf(ErrBER, "trailing bytes after Not filter")
		}
		return Filter{Kind: FilterKindNot, Not: &inner}, rest, nil

	case FilterEqualityMatch, FilterGreaterOrEqual, FilterLessOrEqual, FilterApproxMatch:
		content, rest, terr := expectTagged(buf, ClassContext, h.tag)
		if terr != nil {
			return Filter{}, nil, terr
		}
		ava, aerr := decodeAttributeValueAssertionContent(content)
		if aerr != nil {
			return Filter{}, nil, aerr
		}
		f := Filter{Kind: FilterKind(h.tag)}
		switch h.tag {
		case FilterEqualityMatch:
			f.EqualityMatch = &ava
		case FilterGreaterOrEqual:
			f.GreaterOrEqual = &ava
		case FilterLessOrEqual:
			f.LessOrEqual = &ava
		case FilterApproxMatch:
			f.ApproxMatch = &ava
		}
		return f, rest, nil

	case FilterSubstrings:
		content, rest, terr := expectTagged(buf, ClassContext, FilterSubstrings)
		if terr != nil {
			return Filter{}, nil, terr
		}
		sf, serr := decodeSubstringFilterContent(content)
		if serr != nil {
			return Filter{}, nil, serr
		}
		return Filter{Kind: FilterKindSubstrings, Substrings: &sf}, rest, nil

	case FilterPresent:
		content, rest, terr := expectTagged(buf, ClassContext, FilterPresent)
		if terr != nil {
			return Filter{}, nil, terr
		}
		s, serr := decodeLdapStringContent(content, ErrInvalidString)
		if serr != nil {
			return Filter{}, nil, serr
		}
		return Filter{Kind: FilterKindPresent, Present: s}, rest, nil

	case FilterExtensibleMatch:
		content, rest, terr := expectTagged(buf, ClassContext, FilterExtensibleMatch)
		if terr != nil {
			return Filter{}, nil, terr
		}
		mra, merr := decodeMatchingRuleAssertionContent(content)
		if merr != nil {
			return Filter{}, nil, merr
		}
		return Filter{Kind: FilterKindExtensibleMatch, ExtensibleMatch: &mra}, rest, nil

	default:
		return Filter{}, nil, kindErrorf(ErrInvalidFilterType, "")
	}
}

// decodeAttributeValueAssertionContent decodes the two fields of an
// AttributeValueAssertion given the content of its enclosing element
// (spec.md §4.D tags 3/5/6/8, or a CompareRequest's real SEQUENCE).
func decodeAttributeValueAssertionContent(content []byte) (AttributeValueAssertion, *Error) {
	desc, rest, err := decodeLdapString(content, ErrInvalidString)
	if err != nil {
		return AttributeValueAssertion{}, err
	}
	value, _, err := decodeAssertionValue(rest)
	if err != nil {
		return AttributeValueAssertion{}, err
	}
	return AttributeValueAssertion{AttributeDesc: desc, AssertionValue: value}, nil
}

// decodeAttributeValueAssertion decodes a real SEQUENCE-wrapped
// AttributeValueAssertion, used by CompareRequest.
func decodeAttributeValueAssertion(buf []byte) (AttributeValueAssertion, []byte, *Error) {
	content, rest, err := expectUniversal(buf, TagSequence, true)
	if err != nil {
		return AttributeValueAssertion{}, nil, err
	}
	ava, err := decodeAttributeValueAssertionContent(content)
	if err != nil {
		return AttributeValueAssertion{}, nil, err
	}
	return ava, rest, nil
}

func decodeAssertionValue(buf []byte) ([]byte, []byte, *Error) {
	h, content, rest, err := readTLV(buf)
	if err != nil {
		return nil, nil, err
	}
	if h.class != ClassUniversal || h.tag != TagOctetString {
		return nil, nil, kindErrorf(ErrBER, "expected OCTET STRING assertion value")
	}
	b, err := decodeOctetStringBytes(h, content)
	if err != nil {
		return nil, nil, err
	}
	return b, rest, nil
}

func decodeSubstringFilterContent(content []byte) (SubstringFilter, *Error) {
	filterType, rest, err := decodeLdapString(content, ErrInvalidString)
	if err != nil {
		return SubstringFilter{}, err
	}
	subs, _, err := sequenceElements(rest, 1, decodeSubstring)
	if err != nil {
		return SubstringFilter{}, err
	}
	return SubstringFilter{FilterType: filterType, Substrings: subs}, nil
}

func decodeSubstring(buf []byte) (Substring, []byte, *Error) {
	h, content, rest, err := readTLV(buf)
	if err != nil {
		return Substring{}, nil, err
	}
	if h.class != ClassContext {
		return Substring{}, nil, kindErrorf(ErrInvalidSubstring, "")
	}
	switch h.tag {
	case FilterSubstringsInitial, FilterSubstringsAny, FilterSubstringsFinal:
		b, berr := decodeOctetStringBytes(h, content)
		if berr != nil {
			return Substring{}, nil, berr
		}
		return Substring{Kind: SubstringKind(h.tag), Value: b}, rest, nil
	default:
		return Substring{}, nil, kindErrorf(ErrInvalidSubstring, "")
	}
}

func decodeMatchingRuleAssertionContent(i []byte) (MatchingRuleAssertion, *Error) {
	var mra MatchingRuleAssertion

	content, rest, ok, err := tryTagged(i, ClassContext, tagMatchingRule)
	if err != nil {
		return MatchingRuleAssertion{}, err
	}
	if ok {
		s, serr := decodeLdapStringContent(content, ErrInvalidString)
		if serr != nil {
			return MatchingRuleAssertion{}, serr
		}
		mra.MatchingRule = s
		mra.HasMatchingRule = true
		i = rest
	}

	content, rest, ok, err = tryTagged(i, ClassContext, tagRuleType)
	if err != nil {
		return MatchingRuleAssertion{}, err
	}
	if ok {
		s, serr := decodeLdapStringContent(content, ErrInvalidString)
		if serr != nil {
			return MatchingRuleAssertion{}, serr
		}
		mra.RuleType = s
		mra.HasRuleType = true
		i = rest
	}

	content, rest, ok, err = tryTagged(i, ClassContext, tagMatchValue)
	if err != nil {
		return MatchingRuleAssertion{}, err
	}
	if !ok {
		return MatchingRuleAssertion{}, kindErrorf(ErrBER, "MatchingRuleAssertion missing mandatory matchValue")
	}
	mra.AssertionValue = content
	i = rest

	content, _, ok, err = tryTagged(i, ClassContext, tagDnAttributes)
	if err != nil {
		return MatchingRuleAssertion{}, err
	}
	if ok {
		b, berr := decodeBoolean(content)
		if berr != nil {
			return MatchingRuleAssertion{}, berr
		}
		mra.DnAttributes = b
	}

	return mra, nil
}
