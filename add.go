//
// https://tools.ietf.org/html/rfc4511
//
// AddRequest ::= [APPLICATION 8] SEQUENCE {
//      entry           LDAPDN,
//      attributes      AttributeList }
//
// AttributeList ::= SEQUENCE OF attribute Attribute

package ldap

// decodeAddRequest decodes AddRequest.
func decodeAddRequest(content []byte) (AddRequest, *Error) {
	entry, i, err := decodeLdapDN(content)
	if err != nil {
		return AddRequest{}, err
	}
	attrs, _, err := sequenceElements(i, 0, decodeAttribute)
	if err != nil {
		return AddRequest{}, err
	}
	return AddRequest{Entry: entry, Attributes: attrs}, nil
}

// decodeAttribute decodes Attribute ::= PartialAttribute(WITH COMPONENTS {
// ..., vals (SIZE(1..MAX))}).
func decodeAttribute(buf []byte) (Attribute, []byte, *Error) {
	content, rest, err := expectUniversal(buf, TagSequence, true)
	if err != nil {
		return Attribute{}, nil, err
	}
	attrType, i, err := decodeLdapString(content, ErrInvalidString)
	if err != nil {
		return Attribute{}, nil, err
	}
	vals, _, err := setElements(i, 1, decodeAssertionValue)
	if err != nil {
		return Attribute{}, nil, err
	}
	return Attribute{AttrType: attrType, AttrVals: vals}, rest, nil
}
