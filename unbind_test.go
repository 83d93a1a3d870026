package ldap

import "testing"

func TestDecodeUnbindRequestEmptyContent(t *testing.T) {
	if err := decodeUnbindRequest(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodeUnbindRequestToleratesEmbeddedNull(t *testing.T) {
	// spec.md §4.F: non-empty content is tolerated only when it is
	// itself a well-formed NULL TLV (here: tag 5, length 0).
	content := []byte{0x05, 0x00}
	if err := decodeUnbindRequest(content); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodeUnbindRequestRejectsGarbageContent(t *testing.T) {
	content := []byte{0x04, 0x01, 0xff} // an OCTET STRING, not a NULL
	if err := decodeUnbindRequest(content); err == nil {
		t.Fatal("expected error for non-NULL embedded content")
	}
}

func TestDecodeUnbindRequestRejectsTrailingBytesAfterEmbeddedNull(t *testing.T) {
	content := []byte{0x05, 0x00, 0xaa}
	if err := decodeUnbindRequest(content); err == nil {
		t.Fatal("expected error for trailing bytes after the embedded NULL")
	}
}
