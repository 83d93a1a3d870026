// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ldap

// decodeControl decodes one Control SEQUENCE (RFC 4511 §4.1.11):
//
//	Control ::= SEQUENCE {
//	     controlType             LDAPOID,
//	     criticality             BOOLEAN DEFAULT FALSE,
//	     controlValue            OCTET STRING OPTIONAL }
func decodeControl(buf []byte) (Control, []byte, *Error) {
	content, rest, err := expectUniversal(buf, TagSequence, true)
	if err != nil {
		return Control{}, nil, err
	}

	controlType, i, err := decodeLdapOID(content)
	if err != nil {
		return Control{}, nil, err
	}
	c := Control{ControlType: controlType}

	if len(i) > 0 {
		h, herr := readHeader(i)
		if herr != nil {
			return Control{}, nil, herr
		}
		if h.class == ClassUniversal && h.tag == TagBoolean {
			crit, berr := decodeBoolean(i[h.headerLen : h.headerLen+h.length])
			if berr != nil {
				return Control{}, nil, berr
			}
			c.Criticality = crit
			i = i[h.headerLen+h.length:]
		}
	}

	if len(i) > 0 {
		value, _, serr := decodeAssertionValue(i)
		if serr != nil {
			return Control{}, nil, serr
		}
		c.ControlValue = value
		c.HasValue = true
	}

	return c, rest, nil
}

// decodeControls decodes the optional [0] controls field carried by
// LDAPMessage (RFC 4511 §4.1.1).
func decodeControls(buf []byte) ([]Control, []byte, bool, *Error) {
	content, rest, ok, err := tryTagged(buf, ClassContext, 0)
	if err != nil {
		return nil, nil, false, err
	}
	if !ok {
		return nil, buf, false, nil
	}
	controls, err := repeatElements(content, 0, decodeControl)
	if err != nil {
		return nil, nil, false, err
	}
	return controls, rest, true, nil
}
