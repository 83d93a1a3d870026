package ldap

// This file holds the LDAP data model (spec.md §3): pure data, borrowing
// string and opaque-byte ranges from the input buffer that produced them
// wherever a Go byte slice can alias that buffer directly. String-typed
// fields go through a one-time UTF-8-validated conversion, same as every
// decoder in this corpus (go-ldap/ldap, merlinz01/ldapserver) does for
// OCTET STRING payloads; byte-slice fields are true zero-copy sub-slices
// of the original input.

// LdapMessage is the decoded envelope described in spec.md §3 and §4.G.
type LdapMessage struct {
	MessageID  uint32
	ProtocolOp ProtocolOp
	Controls   []Control // nil when absent
}

// Control is an LDAP control (RFC 4511 §4.1.11).
type Control struct {
	ControlType  string
	Criticality  bool // default false
	ControlValue []byte
	HasValue     bool
}

// ProtocolOpTag identifies which variant of ProtocolOp is populated.
type ProtocolOpTag int

const (
	OpBindRequest           ProtocolOpTag = 0
	OpBindResponse          ProtocolOpTag = 1
	OpUnbindRequest         ProtocolOpTag = 2
	OpSearchRequest         ProtocolOpTag = 3
	OpSearchResultEntry     ProtocolOpTag = 4
	OpSearchResultDone      ProtocolOpTag = 5
	OpModifyRequest         ProtocolOpTag = 6
	OpModifyResponse        ProtocolOpTag = 7
	OpAddRequest            ProtocolOpTag = 8
	OpAddResponse           ProtocolOpTag = 9
	OpDelRequest            ProtocolOpTag = 10
	OpDelResponse           ProtocolOpTag = 11
	OpModDnRequest          ProtocolOpTag = 12
	OpModDnResponse         ProtocolOpTag = 13
	OpCompareRequest        ProtocolOpTag = 14
	OpCompareResponse       ProtocolOpTag = 15
	OpAbandonRequest        ProtocolOpTag = 16
	OpSearchResultReference ProtocolOpTag = 19
	OpExtendedRequest       ProtocolOpTag = 23
	OpExtendedResponse      ProtocolOpTag = 24
	OpIntermediateResponse  ProtocolOpTag = 25
)

// ProtocolOp is the tagged union of spec.md §3. Exactly one field
// matching Tag is populated; the rest are zero values. This is the usual
// Go rendering of an ASN.1 CHOICE (the same shape go-ldap/ldap's own
// Client interface uses one method per operation for).
type ProtocolOp struct {
	Tag ProtocolOpTag

	BindRequest           *BindRequest
	BindResponse          *BindResponse
	SearchRequest         *SearchRequest
	SearchResultEntry     *SearchResultEntry
	SearchResultDone      *LdapResult
	ModifyRequest         *ModifyRequest
	ModifyResponse        *LdapResult
	AddRequest            *AddRequest
	AddResponse           *LdapResult
	DelRequest            string
	DelResponse           *LdapResult
	ModDnRequest          *ModDnRequest
	ModDnResponse         *LdapResult
	CompareRequest        *CompareRequest
	CompareResponse       *LdapResult
	AbandonRequest        uint32
	SearchResultReference []string
	ExtendedRequest       *ExtendedRequest
	ExtendedResponse      *ExtendedResponse
	IntermediateResponse  *IntermediateResponse
}

// LdapResult is the common result envelope (RFC 4511 §4.1.9). The
// optional referral [3] is consumed by the tolerant SEQUENCE-body
// decoder (see DESIGN.md) but not represented here; see SPEC_FULL.md §C.
type LdapResult struct {
	ResultCode        uint32
	MatchedDN         string
	DiagnosticMessage string
}

// BindRequest is [APPLICATION 0].
type BindRequest struct {
	Version        uint8
	Name           string
	Authentication AuthenticationChoice
}

// AuthenticationChoiceKind identifies which field of AuthenticationChoice
// is populated.
type AuthenticationChoiceKind int

const (
	AuthSimple AuthenticationChoiceKind = 0
	AuthSasl   AuthenticationChoiceKind = 3
)

// AuthenticationChoice is the BindRequest CHOICE over context tags [0]
// and [3]; tags 1 and 2 are reserved and any other tag is an error.
type AuthenticationChoice struct {
	Kind   AuthenticationChoiceKind
	Simple []byte
	Sasl   SaslCredentials
}

// SaslCredentials is the SEQUENCE carried by AuthenticationChoice's sasl
// arm.
type SaslCredentials struct {
	Mechanism   string
	Credentials []byte
	HasCreds    bool
}

// BindResponse is [APPLICATION 1].
type BindResponse struct {
	Result          LdapResult
	ServerSaslCreds []byte
	HasSaslCreds    bool
}

// SearchScope is SearchRequest.scope.
type SearchScope uint32

const (
	ScopeBaseObject   SearchScope = 0
	ScopeSingleLevel  SearchScope = 1
	ScopeWholeSubtree SearchScope = 2
)

// DerefAliases is SearchRequest.derefAliases.
type DerefAliases uint32

const (
	NeverDerefAliases   DerefAliases = 0
	DerefInSearching    DerefAliases = 1
	DerefFindingBaseObj DerefAliases = 2
	DerefAlways         DerefAliases = 3
)

// SearchRequest is [APPLICATION 3].
type SearchRequest struct {
	BaseObject   string
	Scope        SearchScope
	DerefAliases DerefAliases
	SizeLimit    uint32
	TimeLimit    uint32
	TypesOnly    bool
	Filter       Filter
	Attributes   []string
}

// SearchResultEntry is [APPLICATION 4].
type SearchResultEntry struct {
	ObjectName string
	Attributes []PartialAttribute
}

// PartialAttribute is used inside SearchResultEntry and ModifyRequest;
// AttrVals may be empty.
type PartialAttribute struct {
	AttrType string
	AttrVals [][]byte
}

// Attribute is PartialAttribute with the additional invariant that
// AttrVals is non-empty; used by AddRequest.
type Attribute struct {
	AttrType string
	AttrVals [][]byte
}

// ChangeOperation is Change.Operation.
type ChangeOperation uint32

const (
	ChangeAdd     ChangeOperation = 0
	ChangeDelete  ChangeOperation = 1
	ChangeReplace ChangeOperation = 2
)

// Change is one element of ModifyRequest.Changes.
type Change struct {
	Operation    ChangeOperation
	Modification PartialAttribute
}

// ModifyRequest is [APPLICATION 6].
type ModifyRequest struct {
	Object  string
	Changes []Change
}

// AddRequest is [APPLICATION 8].
type AddRequest struct {
	Entry      string
	Attributes []Attribute
}

// ModDnRequest is [APPLICATION 12].
type ModDnRequest struct {
	Entry        string
	NewRDN       string
	DeleteOldRDN bool
	NewSuperior  string
	HasSuperior  bool
}

// AttributeValueAssertion pairs an attribute description with an opaque
// assertion value; used by several Filter arms and CompareRequest.
type AttributeValueAssertion struct {
	AttributeDesc  string
	AssertionValue []byte
}

// CompareRequest is [APPLICATION 14].
type CompareRequest struct {
	Entry string
	Ava   AttributeValueAssertion
}

// ExtendedRequest is [APPLICATION 23].
type ExtendedRequest struct {
	RequestName  string
	RequestValue []byte
	HasValue     bool
}

// ExtendedResponse is [APPLICATION 24].
type ExtendedResponse struct {
	Result           LdapResult
	ResponseName     string
	HasResponseName  bool
	ResponseValue    []byte
	HasResponseValue bool
}

// IntermediateResponse is [APPLICATION 25] (see SPEC_FULL.md §C.1).
type IntermediateResponse struct {
	ResponseName     string
	HasResponseName  bool
	ResponseValue    []byte
	HasResponseValue bool
}
