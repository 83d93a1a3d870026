package ldap

// decodeDelRequest decodes DelRequest ::= [APPLICATION 10] LDAPDN. The
// APPLICATION tag wraps the raw DN octets directly (spec.md §4.F); there
// is no inner universal OCTET STRING to peel.
func decodeDelRequest(content []byte) (string, *Error) {
	return decodeLdapStringContent(content, ErrInvalidDN)
}
