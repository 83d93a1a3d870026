package ldap

import "testing"

// FuzzDecodeMessage is the panic-free guarantee's continuous check
// (spec.md §7, §8): for any byte sequence, decoding must terminate and
// either succeed or return a typed *Error, never panic.
func FuzzDecodeMessage(f *testing.F) {
	seeds := [][]byte{
		nil,
		{0x42, 0x00},
		{0x30, 0x05, 0x02, 0x01, 0x01, 0x42, 0x00},
		{0x61, 0x84, 0x00, 0x00, 0x00, 0x07, 0x0a, 0x01, 0x00, 0x04, 0x00, 0x04, 0x00},
		{0x30, 0x06, 0x02, 0x01, 0x06, 0x50, 0x01, 0x05},
		{0x30, 0x80},
		{0x30, 0xff},
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		_, _, _ = DecodeMessage(data)
	})
}

// FuzzDecodeMessages exercises the batch entry point the same way.
func FuzzDecodeMessages(f *testing.F) {
	f.Add([]byte{0x30, 0x05, 0x02, 0x01, 0x01, 0x42, 0x00})
	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = DecodeMessages(data)
	})
}
