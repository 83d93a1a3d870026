package ldap

// decodeAbandonRequest decodes AbandonRequest ::= [APPLICATION 16]
// MessageID. The APPLICATION tag wraps the raw big-endian integer octets
// directly (spec.md §4.F), same as DelRequest does for its DN.
func decodeAbandonRequest(content []byte) (uint32, *Error) {
	return decodeBigEndianInt(content)
}
