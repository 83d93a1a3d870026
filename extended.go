package ldap

// decodeExtendedRequest decodes ExtendedRequest (RFC 4511 §4.12):
//
//	ExtendedRequest ::= [APPLICATION 23] SEQUENCE {
//	     requestName      [0] LDAPOID,
//	     requestValue     [1] OCTET STRING OPTIONAL }
func decodeExtendedRequest(content []byte) (ExtendedRequest, *Error) {
	nameContent, i, nerr := expectTagged(content, ClassContext, 0)
	if nerr != nil {
		return ExtendedRequest{}, nerr
	}
	name, err := decodeLdapStringContent(nameContent, ErrInvalidString)
	if err != nil {
		return ExtendedRequest{}, err
	}

	req := ExtendedRequest{RequestName: name}

	valueContent, _, ok, terr := tryTagged(i, ClassContext, 1)
	if terr != nil {
		return ExtendedRequest{}, terr
	}
	if ok {
		req.RequestValue = valueContent
		req.HasValue = true
	}

	return req, nil
}

// decodeExtendedResponse decodes ExtendedResponse (RFC 4511 §4.12):
//
//	ExtendedResponse ::= [APPLICATION 24] SEQUENCE {
//	     COMPONENTS OF LDAPResult,
//	     responseName     [10] LDAPOID OPTIONAL,
//	     responseValue    [11] OCTET STRING OPTIONAL }
func decodeExtendedResponse(content []byte) (ExtendedResponse, *Error) {
	result, i, err := decodeLdapResultContent(content)
	if err != nil {
		return ExtendedResponse{}, err
	}
	resp := ExtendedResponse{Result: result}

	nameContent, rest, ok, terr := tryTagged(i, ClassContext, 10)
	if terr != nil {
		return ExtendedResponse{}, terr
	}
	if ok {
		name, serr := decodeLdapStringContent(nameContent, ErrInvalidString)
		if serr != nil {
			return ExtendedResponse{}, serr
		}
		resp.ResponseName = name
		resp.HasResponseName = true
		i = rest
	}

	valueContent, rest, ok, terr := tryTagged(i, ClassContext, 11)
	if terr != nil {
		return ExtendedResponse{}, terr
	}
	if ok {
		resp.ResponseValue = valueContent
		resp.HasResponseValue = true
		i = rest
	}

	return resp, nil
}

// decodeIntermediateResponse decodes IntermediateResponse (RFC 4511
// §4.13). The field layout is inferred by analogy to ExtendedResponse's
// [10]/[11] pair, scaled down to [0]/[1] since IntermediateResponse
// carries no LDAPResult prefix (SPEC_FULL.md §C.1):
//
//	IntermediateResponse ::= [APPLICATION 25] SEQUENCE {
//	     responseName     [0] LDAPOID OPTIONAL,
//	     responseValue    [1] OCTET STRING OPTIONAL }
func decodeIntermediateResponse(content []byte) (IntermediateResponse, *Error) {
	var resp IntermediateResponse
	i := content

	nameContent, rest, ok, terr := tryTagged(i, ClassContext, 0)
	if terr != nil {
		return IntermediateResponse{}, terr
	}
	if ok {
		name, serr := decodeLdapStringContent(nameContent, ErrInvalidString)
		if serr != nil {
			return IntermediateResponse{}, serr
		}
		resp.ResponseName = name
		resp.HasResponseName = true
		i = rest
	}

	valueContent, rest, ok, terr := tryTagged(i, ClassContext, 1)
	if terr != nil {
		return IntermediateResponse{}, terr
	}
	if ok {
		resp.ResponseValue = valueContent
		resp.HasResponseValue = true
		i = rest
	}

	return resp, nil
}
