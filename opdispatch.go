package ldap

// decodeProtocolOp decodes the APPLICATION-tagged ProtocolOp CHOICE that
// follows messageID inside an LDAPMessage (RFC 4511 §4.1.1, spec.md
// §4.E). Every arm is either a SEQUENCE (constructed) or a bare
// IMPLICIT-tagged primitive (DelRequest, AbandonRequest); the dispatcher
// only checks the class and leaves the constructed bit to each decoder,
// matching the per-operation grammar.
func decodeProtocolOp(buf []byte, opts DecodeOptions) (ProtocolOp, []byte, *Error) {
	h, content, rest, err := readTLV(buf)
	if err != nil {
		return ProtocolOp{}, nil, err
	}
	if h.class != ClassApplication {
		return ProtocolOp{}, nil, kindErrorf(ErrInvalidMessageType, "")
	}

	switch ProtocolOpTag(h.tag) {
	case OpBindRequest:
		v, derr := decodeBindRequest(content)
		if derr != nil {
			return ProtocolOp{}, nil, derr
		}
		return ProtocolOp{Tag: OpBindRequest, BindRequest: &v}, rest, nil

	case OpBindResponse:
		v, derr := decodeBindResponse(content)
		if derr != nil {
			return ProtocolOp{}, nil, derr
		}
		return ProtocolOp{Tag: OpBindResponse, BindResponse: &v}, rest, nil

	case OpUnbindRequest:
		if derr := decodeUnbindRequest(content); derr != nil {
			return ProtocolOp{}, nil, derr
		}
		return ProtocolOp{Tag: OpUnbindRequest}, rest, nil

	case OpSearchRequest:
		v, derr := decodeSearchRequest(content, opts)
		if derr != nil {
			return ProtocolOp{}, nil, derr
		}
		return ProtocolOp{Tag: OpSearchRequest, SearchRequest: &v}, rest, nil

	case OpSearchResultEntry:
		v, derr := decodeSearchResultEntry(content)
		if derr != nil {
			return ProtocolOp{}, nil, derr
		}
		return ProtocolOp{Tag: OpSearchResultEntry, SearchResultEntry: &v}, rest, nil

	case OpSearchResultDone:
		v, _, derr := decodeLdapResultContent(content)
		if derr != nil {
			return ProtocolOp{}, nil, derr
		}
		return ProtocolOp{Tag: OpSearchResultDone, SearchResultDone: &v}, rest, nil

	case OpModifyRequest:
		v, derr := decodeModifyRequest(content)
		if derr != nil {
			return ProtocolOp{}, nil, derr
		}
		return ProtocolOp{Tag: OpModifyRequest, ModifyRequest: &v}, rest, nil

	case OpModifyResponse:
		v, _, derr := decodeLdapResultContent(content)
		if derr != nil {
			return ProtocolOp{}, nil, derr
		}
		return ProtocolOp{Tag: OpModifyResponse, ModifyResponse: &v}, rest, nil

	case OpAddRequest:
		v, derr := decodeAddRequest(content)
		if derr != nil {
			return ProtocolOp{}, nil, derr
		}
		return ProtocolOp{Tag: OpAddRequest, AddRequest: &v}, rest, nil

	case OpAddResponse:
		v, _, derr := decodeLdapResultContent(content)
		if derr != nil {
			return ProtocolOp{}, nil, derr
		}
		return ProtocolOp{Tag: OpAddResponse, AddResponse: &v}, rest, nil

	case OpDelRequest:
		v, derr := decodeDelRequest(content)
		if derr != nil {
			return ProtocolOp{}, nil, derr
		}
		return ProtocolOp{Tag: OpDelRequest, DelRequest: v}, rest, nil

	case OpDelResponse:
		v, _, derr := decodeLdapResultContent(content)
		if derr != nil {
			return ProtocolOp{}, nil, derr
		}
		return ProtocolOp{Tag: OpDelResponse, DelResponse: &v}, rest, nil

	case OpModDnRequest:
		v, derr := decodeModDnRequest(content)
		if derr != nil {
			return ProtocolOp{}, nil, derr
		}
		return ProtocolOp{Tag: OpModDnRequest, ModDnRequest: &v}, rest, nil

	case OpModDnResponse:
		v, _, derr := decodeLdapResultContent(content)
		if derr != nil {
			return ProtocolOp{}, nil, derr
		}
		return ProtocolOp{Tag: OpModDnResponse, ModDnResponse: &v}, rest, nil

	case OpCompareRequest:
		v, derr := decodeCompareRequest(content)
		if derr != nil {
			return ProtocolOp{}, nil, derr
		}
		return ProtocolOp{Tag: OpCompareRequest, CompareRequest: &v}, rest, nil

	case OpCompareResponse:
		v, _, derr := decodeLdapResultContent(content)
		if derr != nil {
			return ProtocolOp{}, nil, derr
		}
		return ProtocolOp{Tag: OpCompareResponse, CompareResponse: &v}, rest, nil

	case OpAbandonRequest:
		v, derr := decodeAbandonRequest(content)
		if derr != nil {
			return ProtocolOp{}, nil, derr
		}
		return ProtocolOp{Tag: OpAbandonRequest, AbandonRequest: v}, rest, nil

	case OpSearchResultReference:
		v, derr := decodeSearchResultReference(content)
		if derr != nil {
			return ProtocolOp{}, nil, derr
		}
		return ProtocolOp{Tag: OpSearchResultReference, SearchResultReference: v}, rest, nil

	case OpExtendedRequest:
		v, derr := decodeExtendedRequest(content)
		if derr != nil {
			return ProtocolOp{}, nil, derr
		}
		return ProtocolOp{Tag: OpExtendedRequest, ExtendedRequest: &v}, rest, nil

	case OpExtendedResponse:
		v, derr := decodeExtendedResponse(content)
		if derr != nil {
			return ProtocolOp{}, nil, derr
		}
		return ProtocolOp{Tag: OpExtendedResponse, ExtendedResponse: &v}, rest, nil

	case OpIntermediateResponse:
		v, derr := decodeIntermediateResponse(content)
		if derr != nil {
			return ProtocolOp{}, nil, derr
		}
		return ProtocolOp{Tag: OpIntermediateResponse, IntermediateResponse: &v}, rest, nil

	default:
		return ProtocolOp{}, nil, kindErrorf(ErrInvalidMessageType, "")
	}
}
