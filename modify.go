package ldap

// decodeModifyRequest decodes ModifyRequest (RFC 4511 §4.6):
//
//	ModifyRequest ::= [APPLICATION 6] SEQUENCE {
//	     object          LDAPDN,
//	     changes         SEQUENCE OF change SEQUENCE {
//	          operation       ENUMERATED { add (0), delete (1), replace (2) },
//	          modification    PartialAttribute } }
func decodeModifyRequest(content []byte) (ModifyRequest, *Error) {
	object, i, err := decodeLdapDN(content)
	if err != nil {
		return ModifyRequest{}, err
	}
	changes, _, err := sequenceElements(i, 1, decodeChange)
	if err != nil {
		return ModifyRequest{}, err
	}
	return ModifyRequest{Object: object, Changes: changes}, nil
}

func decodeChange(buf []byte) (Change, []byte, *Error) {
	content, rest, err := expectUniversal(buf, TagSequence, true)
	if err != nil {
		return Change{}, nil, err
	}
	operation, i, err := decodeEnumerated(content)
	if err != nil {
		return Change{}, nil, err
	}
	if operation > uint32(ChangeReplace) {
		return Change{}, nil, kindErrorf(ErrBER, "Change.operation out of range")
	}
	modification, _, err := decodePartialAttribute(i)
	if err != nil {
		return Change{}, nil, err
	}
	return Change{Operation: ChangeOperation(operation), Modification: modification}, rest, nil
}
