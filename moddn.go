// File contains ModifyDN decoding.
//
// https://tools.ietf.org/html/rfc4511
// ModifyDNRequest ::= [APPLICATION 12] SEQUENCE {
//      entry           LDAPDN,
//      newrdn          RelativeLDAPDN,
//      deleteoldrdn    BOOLEAN,
//      newSuperior     [0] LDAPDN OPTIONAL }

package ldap

// decodeModDnRequest decodes ModifyDNRequest.
func decodeModDnRequest(content []byte) (ModDnRequest, *Error) {
	entry, i, err := decodeLdapDN(content)
	if err != nil {
		return ModDnRequest{}, err
	}
	newRDN, i, err := decodeLdapString(i, ErrInvalidString)
	if err != nil {
		return ModDnRequest{}, err
	}
	deleteOldRDN, i, err := decodeBool(i)
	if err != nil {
		return ModDnRequest{}, err
	}

	req := ModDnRequest{Entry: entry, NewRDN: newRDN, DeleteOldRDN: deleteOldRDN}

	superiorContent, _, ok, terr := tryTagged(i, ClassContext, 0)
	if terr != nil {
		return ModDnRequest{}, terr
	}
	if ok {
		s, serr := decodeLdapStringContent(superiorContent, ErrInvalidDN)
		if serr != nil {
			return ModDnRequest{}, serr
		}
		req.NewSuperior = s
		req.HasSuperior = true
	}

	return req, nil
}
