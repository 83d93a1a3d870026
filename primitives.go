package ldap

// decodeInteger reads a Universal INTEGER TLV and returns its value plus
// whatever follows it. LDAP never carries an INTEGER outside the 0..2^32-1
// range used by this grammar (message IDs, sizeLimit, timeLimit, version,
// result codes), so the same decodeBigEndianInt bound used for ENUMERATED
// applies here too (spec.md §4.A).
func decodeInteger(buf []byte) (uint32, []byte, *Error) {
	content, rest, err := expectUniversal(buf, TagInteger, false)
	if err != nil {
		return 0, nil, err
	}
	n, err := decodeBigEndianInt(content)
	if err != nil {
		return 0, nil, err
	}
	return n, rest, nil
}

// decodeEnumerated reads a Universal ENUMERATED TLV.
func decodeEnumerated(buf []byte) (uint32, []byte, *Error) {
	content, rest, err := expectUniversal(buf, TagEnumerated, false)
	if err != nil {
		return 0, nil, err
	}
	n, err := decodeBigEndianInt(content)
	if err != nil {
		return 0, nil, err
	}
	return n, rest, nil
}

// decodeBool reads a Universal BOOLEAN TLV.
func decodeBool(buf []byte) (bool, []byte, *Error) {
	content, rest, err := expectUniversal(buf, TagBoolean, false)
	if err != nil {
		return false, nil, err
	}
	b, err := decodeBoolean(content)
	if err != nil {
		return false, nil, err
	}
	return b, rest, nil
}

// decodeLdapResultContent decodes the three fields every LDAPResult
// begins with (RFC 4511 §4.1.9): resultCode, matchedDN and
// diagnosticMessage. A trailing referral [3] is tolerated and skipped if
// present, per SPEC_FULL.md §C.3 (not surfaced as a field). The remaining
// bytes (if any, beyond a possible referral) are returned to the caller
// so operation-specific trailers (e.g. BindResponse's serverSaslCreds)
// can still be decoded.
func decodeLdapResultContent(content []byte) (LdapResult, []byte, *Error) {
	resultCode, i, err := decodeEnumerated(content)
	if err != nil {
		return LdapResult{}, nil, err
	}
	matchedDN, i, err := decodeLdapDN(i)
	if err != nil {
		return LdapResult{}, nil, err
	}
	diagnosticMessage, i, err := decodeLdapString(i, ErrInvalidString)
	if err != nil {
		return LdapResult{}, nil, err
	}

	referralContent, rest, ok, terr := tryTagged(i, ClassContext, 3)
	if terr != nil {
		return LdapResult{}, nil, terr
	}
	if ok {
		i = rest
		_ = referralContent
	}

	return LdapResult{
		ResultCode:        resultCode,
		MatchedDN:         matchedDN,
		DiagnosticMessage: diagnosticMessage,
	}, i, nil
}
