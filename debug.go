package ldap

import (
	"fmt"

	ber "github.com/go-asn1-ber/asn1-ber"
)

// DebugMessage re-parses buf with go-asn1-ber/asn1-ber and prints a
// human-readable tag tree to stdout, the same way the teacher's
// Conn.Debug path ran every sent/received packet through ber.PrintPacket
// before this package existed. It is entirely separate from
// decodeMessage: a buffer this package rejects may still print here, and
// vice versa, since the two parsers enforce different things.
func DebugMessage(buf []byte) error {
	packet := ber.DecodePacket(buf)
	if packet == nil {
		return fmt.Errorf("ldap: debug decode failed")
	}
	ber.PrintPacket(packet)
	return nil
}
