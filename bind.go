// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ldap

// decodeBindRequest decodes BindRequest ::= [APPLICATION 0] SEQUENCE (RFC
// 4511 §4.2).
func decodeBindRequest(content []byte) (BindRequest, *Error) {
	version, i, err := decodeInteger(content)
	if err != nil {
		return BindRequest{}, err
	}
	if version > 127 {
		return BindRequest{}, kindErrorf(ErrBER, "BindRequest version out of range")
	}

	name, i, err := decodeLdapDN(i)
	if err != nil {
		return BindRequest{}, err
	}

	auth, _, err := decodeAuthenticationChoice(i)
	if err != nil {
		return BindRequest{}, err
	}

	return BindRequest{Version: uint8(version), Name: name, Authentication: auth}, nil
}

func decodeAuthenticationChoice(buf []byte) (AuthenticationChoice, []byte, *Error) {
	h, err := readHeader(buf)
	if err != nil {
		return AuthenticationChoice{}, nil, err
	}
	if h.class != ClassContext {
		return AuthenticationChoice{}, nil, kindErrorf(ErrInvalidAuthenticationType, "")
	}

	switch h.tag {
	case uint64(AuthSimple):
		content, rest, terr := expectTagged(buf, ClassContext, uint64(AuthSimple))
		if terr != nil {
			return AuthenticationChoice{}, nil, terr
		}
		return AuthenticationChoice{Kind: AuthSimple, Simple: content}, rest, nil

	case uint64(AuthSasl):
		content, rest, terr := expectTagged(buf, ClassContext, uint64(AuthSasl))
		if terr != nil {
			return AuthenticationChoice{}, nil, terr
		}
		sasl, serr := decodeSaslCredentialsContent(content)
		if serr != nil {
			return AuthenticationChoice{}, nil, serr
		}
		return AuthenticationChoice{Kind: AuthSasl, Sasl: sasl}, rest, nil
	}
	return AuthenticationChoice{}, nil, kindErrorf(ErrInvalidAuthenticationType, "")
}

func decodeSaslCredentialsContent(content []byte) (SaslCredentials, *Error) {
	mechanism, rest, err := decodeLdapString(content, ErrInvalidString)
	if err != nil {
		return SaslCredentials{}, err
	}
	var sc SaslCredentials
	sc.Mechanism = mechanism
	if len(rest) > 0 {
		creds, _, cerr := decodeAssertionValue(rest)
		if cerr != nil {
			return SaslCredentials{}, cerr
		}
		sc.Credentials = creds
		sc.HasCreds = true
	}
	return sc, nil
}

// decodeBindResponse decodes BindResponse ::= [APPLICATION 1] SEQUENCE
// (RFC 4511 §4.2.2), which extends LDAPResult with an optional
// serverSaslCreds [7].
func decodeBindResponse(content []byte) (BindResponse, *Error) {
	result, i, err := decodeLdapResultContent(content)
	if err != nil {
		return BindResponse{}, err
	}
	resp := BindResponse{Result: result}

	saslContent, _, ok, terr := tryTagged(i, ClassContext, 7)
	if terr != nil {
		return BindResponse{}, terr
	}
	if ok {
		resp.ServerSaslCreds = saslContent
		resp.HasSaslCreds = true
	}
	return resp, nil
}
