// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ldap

// decodeSearchRequest decodes SearchRequest ::= [APPLICATION 3] SEQUENCE
// (RFC 4511 §4.5.1).
func decodeSearchRequest(content []byte, opts DecodeOptions) (SearchRequest, *Error) {
	baseObject, i, err := decodeLdapDN(content)
	if err != nil {
		return SearchRequest{}, err
	}
	scope, i, err := decodeEnumerated(i)
	if err != nil {
		return SearchRequest{}, err
	}
	derefAliases, i, err := decodeEnumerated(i)
	if err != nil {
		return SearchRequest{}, err
	}
	sizeLimit, i, err := decodeInteger(i)
	if err != nil {
		return SearchRequest{}, err
	}
	timeLimit, i, err := decodeInteger(i)
	if err != nil {
		return SearchRequest{}, err
	}
	typesOnly, i, err := decodeBool(i)
	if err != nil {
		return SearchRequest{}, err
	}
	filter, i, err := decodeFilter(i, 1, opts)
	if err != nil {
		return SearchRequest{}, err
	}
	attributes, _, err := sequenceElements(i, 0, func(b []byte) (string, []byte, *Error) {
		return decodeLdapString(b, ErrInvalidString)
	})
	if err != nil {
		return SearchRequest{}, err
	}

	return SearchRequest{
		BaseObject:   baseObject,
		Scope:        SearchScope(scope),
		DerefAliases: DerefAliases(derefAliases),
		SizeLimit:    sizeLimit,
		TimeLimit:    timeLimit,
		TypesOnly:    typesOnly,
		Filter:       filter,
		Attributes:   attributes,
	}, nil
}

// decodeSearchResultEntry decodes SearchResultEntry ::= [APPLICATION 4]
// SEQUENCE (RFC 4511 §4.5.2).
func decodeSearchResultEntry(content []byte) (SearchResultEntry, *Error) {
	objectName, i, err := decodeLdapDN(content)
	if err != nil {
		return SearchResultEntry{}, err
	}
	attrs, _, err := sequenceElements(i, 0, decodePartialAttribute)
	if err != nil {
		return SearchResultEntry{}, err
	}
	return SearchResultEntry{ObjectName: objectName, Attributes: attrs}, nil
}

// decodePartialAttribute decodes PartialAttribute ::= SEQUENCE { type
// AttributeDescription, vals SET OF AttributeValue } (RFC 4511 §4.1.7).
func decodePartialAttribute(buf []byte) (PartialAttribute, []byte, *Error) {
	content, rest, err := expectUniversal(buf, TagSequence, true)
	if err != nil {
		return PartialAttribute{}, nil, err
	}
	attrType, i, err := decodeLdapString(content, ErrInvalidString)
	if err != nil {
		return PartialAttribute{}, nil, err
	}
	vals, _, err := setElements(i, 0, decodeAssertionValue)
	if err != nil {
		return PartialAttribute{}, nil, err
	}
	return PartialAttribute{AttrType: attrType, AttrVals: vals}, rest, nil
}

// decodeSearchResultReference decodes SearchResultReference ::=
// [APPLICATION 19] SEQUENCE SIZE (1..MAX) OF uri URI, per SPEC_FULL.md
// §C.2 (the original's many1 combinator requires at least one URI).
func decodeSearchResultReference(content []byte) ([]string, *Error) {
	uris, err := repeatElements(content, 1, func(b []byte) (string, []byte, *Error) {
		return decodeLdapString(b, ErrInvalidString)
	})
	if err != nil {
		return nil, err
	}
	return uris, nil
}
