package ldap

import "fmt"

// ErrorKind classifies a decode failure. It carries only the data a caller
// can act on: no dynamic error chains are threaded through the decoder
// itself.
type ErrorKind int

const (
	// ErrShortInput means the buffer ended before a length-known prefix
	// could be decoded. Missing holds the number of bytes still needed,
	// or MissingUnknown when a precise count cannot be computed (e.g. an
	// oversized long-form length).
	ErrShortInput ErrorKind = iota
	// ErrInvalidString means OCTET STRING content was not valid UTF-8
	// where UTF-8 was required.
	ErrInvalidString
	// ErrInvalidDN is ErrInvalidString for DN-typed fields.
	ErrInvalidDN
	// ErrInvalidAuthenticationType means AuthenticationChoice carried a
	// context tag outside {0, 3}.
	ErrInvalidAuthenticationType
	// ErrInvalidSubstring means a Substring entry carried a context tag
	// outside {0, 1, 2}.
	ErrInvalidSubstring
	// ErrInvalidFilterType means a Filter CHOICE carried a context tag
	// outside {0..9}.
	ErrInvalidFilterType
	// ErrInvalidMessageType means a ProtocolOp carried an APPLICATION tag
	// outside the allowed set.
	ErrInvalidMessageType
	// ErrBER is a lower-level BER decoding failure: bad tag, bad length,
	// unsupported indefinite length, integer overflow, mismatched
	// constructed/primitive bit.
	ErrBER
	// ErrDepthExceeded means Filter nesting exceeded MaxFilterDepth.
	ErrDepthExceeded
	// ErrUnknown is a catch-all reserved for unreachable branches; it
	// must never be the result of a reachable code path.
	ErrUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case ErrShortInput:
		return "short input"
	case ErrInvalidString:
		return "invalid string"
	case ErrInvalidDN:
		return "invalid DN"
	case ErrInvalidAuthenticationType:
		return "invalid authentication type"
	case ErrInvalidSubstring:
		return "invalid substring type"
	case ErrInvalidFilterType:
		return "invalid filter type"
	case ErrInvalidMessageType:
		return "invalid message type"
	case ErrBER:
		return "BER error"
	case ErrDepthExceeded:
		return "filter depth exceeded"
	default:
		return "unknown error"
	}
}

// MissingUnknown marks an Error.Missing count that cannot be computed
// precisely, e.g. when a BER long-form length is too large to compare
// against the remaining buffer in a meaningful way.
const MissingUnknown = -1

// Error is the single error type returned by every decoder in this
// package. It is never panicked, only returned, and is safe to compare
// with errors.Is/errors.As once wrapped by a caller.
type Error struct {
	Kind    ErrorKind
	Missing int   // meaningful only for ErrShortInput
	Cause   error // meaningful only for ErrBER, may be nil otherwise
	Context string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrShortInput:
		if e.Missing == MissingUnknown {
			return "ldap: short input (more bytes needed)"
		}
		return fmt.Sprintf("ldap: short input (%d more bytes needed)", e.Missing)
	case ErrBER:
		if e.Cause != nil {
			if e.Context != "" {
				return fmt.Sprintf("ldap: BER error: %s: %v", e.Context, e.Cause)
			}
			return fmt.Sprintf("ldap: BER error: %v", e.Cause)
		}
		return "ldap: BER error"
	default:
		if e.Context != "" {
			return fmt.Sprintf("ldap: %s: %s", e.Kind, e.Context)
		}
		return "ldap: " + e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target has the same Kind, allowing callers to write
// errors.Is(err, &ldap.Error{Kind: ldap.ErrShortInput}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func shortInput(missing int) *Error {
	return &Error{Kind: ErrShortInput, Missing: missing}
}

func berErrorf(cause error, context string) *Error {
	return &Error{Kind: ErrBER, Cause: cause, Context: context}
}

func kindErrorf(kind ErrorKind, context string) *Error {
	return &Error{Kind: kind, Context: context}
}
