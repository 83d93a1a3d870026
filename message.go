// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ldap

// decodeMessage decodes one LDAPMessage (RFC 4511 §4.1.1, spec.md §4.G):
//
//	LDAPMessage ::= SEQUENCE {
//	     messageID       MessageID,
//	     protocolOp      CHOICE { ... },
//	     controls        [0] Controls OPTIONAL }
//
// Trailing bytes left over inside the outer SEQUENCE body, after
// protocolOp and an optional controls field have both been consumed, are
// tolerated rather than rejected (SPEC_FULL.md §C.4); this mirrors the
// original parser's envelope check, whose "extra bytes" branch is
// unreachable in practice.
func decodeMessage(buf []byte, opts DecodeOptions) (LdapMessage, []byte, *Error) {
	content, rest, err := expectUniversal(buf, TagSequence, true)
	if err != nil {
		return LdapMessage{}, nil, err
	}

	messageID, i, err := decodeInteger(content)
	if err != nil {
		return LdapMessage{}, nil, err
	}

	op, i, err := decodeProtocolOp(i, opts)
	if err != nil {
		return LdapMessage{}, nil, err
	}

	controls, _, _, err := decodeControls(i)
	if err != nil {
		return LdapMessage{}, nil, err
	}

	return LdapMessage{MessageID: messageID, ProtocolOp: op, Controls: controls}, rest, nil
}

// DecodeMessage decodes a single LDAPMessage from buf using the default
// DecodeOptions, returning the decoded message and whatever bytes follow
// it in buf.
func DecodeMessage(buf []byte) (LdapMessage, []byte, error) {
	return DecodeMessageWithOptions(buf, DecodeOptions{})
}

// DecodeMessageWithOptions is DecodeMessage with caller-supplied options
// (currently just the Filter recursion bound).
func DecodeMessageWithOptions(buf []byte, opts DecodeOptions) (LdapMessage, []byte, error) {
	msg, rest, err := decodeMessage(buf, opts)
	if err != nil {
		return LdapMessage{}, nil, err
	}
	return msg, rest, nil
}

// DecodeMessages decodes every LDAPMessage back-to-back in buf until the
// buffer is exhausted, per spec.md §6 ("decodes one-or-more") and §4.G
// ("a batch decoder decodes one-or-more messages", SPEC_FULL.md §C.6's
// "no artificial message-count cap" governs the upper bound only). An
// empty buf is a short-input error, not zero messages, matching the
// original parser's many1 combinator.
func DecodeMessages(buf []byte) ([]LdapMessage, error) {
	return DecodeMessagesWithOptions(buf, DecodeOptions{})
}

// DecodeMessagesWithOptions is DecodeMessages with caller-supplied
// options.
func DecodeMessagesWithOptions(buf []byte, opts DecodeOptions) ([]LdapMessage, error) {
	var messages []LdapMessage
	rem := buf
	for len(rem) > 0 {
		msg, rest, err := decodeMessage(rem, opts)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
		rem = rest
	}
	if len(messages) == 0 {
		return nil, shortInput(1)
	}
	return messages, nil
}
