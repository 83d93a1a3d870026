package ldap

// decodeCompareRequest decodes CompareRequest (RFC 4511 §4.10):
//
//	CompareRequest ::= [APPLICATION 14] SEQUENCE {
//	     entry           LDAPDN,
//	     ava             AttributeValueAssertion }
func decodeCompareRequest(content []byte) (CompareRequest, *Error) {
	entry, i, err := decodeLdapDN(content)
	if err != nil {
		return CompareRequest{}, err
	}
	ava, _, err := decodeAttributeValueAssertion(i)
	if err != nil {
		return CompareRequest{}, err
	}
	return CompareRequest{Entry: entry, Ava: ava}, nil
}
