package ldap

import "testing"

func TestDecodeExtendedRequestNameOnly(t *testing.T) {
	nameTLV := encTLV(ClassContext, false, 0, []byte("1.3.6.1.4.1.1466.20037"))
	req, err := decodeExtendedRequest(nameTLV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.RequestName != "1.3.6.1.4.1.1466.20037" {
		t.Fatalf("unexpected request name: %q", req.RequestName)
	}
	if req.HasValue {
		t.Fatal("expected no request value")
	}
}

func TestDecodeExtendedRequestNameAndValue(t *testing.T) {
	nameTLV := encTLV(ClassContext, false, 0, []byte("1.3.6.1.4.1.1466.20037"))
	valueTLV := encTLV(ClassContext, false, 1, []byte("payload"))
	content := append(append([]byte{}, nameTLV...), valueTLV...)

	req, err := decodeExtendedRequest(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.RequestName != "1.3.6.1.4.1.1466.20037" {
		t.Fatalf("unexpected request name: %q", req.RequestName)
	}
	if !req.HasValue || string(req.RequestValue) != "payload" {
		t.Fatalf("unexpected request value: %+v", req)
	}
}

func TestDecodeExtendedRequestTrailingBytesAreTolerated(t *testing.T) {
	// SPEC_FULL.md §C.4 generalizes the envelope's tolerant-trailing-
	// bytes policy to every nested SEQUENCE body, ExtendedRequest's own
	// included: unrecognized bytes after requestValue are ignored rather
	// than rejected.
	nameTLV := encTLV(ClassContext, false, 0, []byte("1.2.3"))
	content := append(append([]byte{}, nameTLV...), 0xde, 0xad)

	req, err := decodeExtendedRequest(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.RequestName != "1.2.3" {
		t.Fatalf("unexpected request name: %q", req.RequestName)
	}
	if req.HasValue {
		t.Fatal("expected no request value")
	}
}

func TestDecodeProtocolOpExtendedRequest(t *testing.T) {
	nameTLV := encTLV(ClassContext, false, 0, []byte("1.2.3"))
	buf := encTLV(ClassApplication, true, 23, nameTLV)

	op, rest, err := decodeProtocolOp(buf, DecodeOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Tag != OpExtendedRequest {
		t.Fatalf("expected OpExtendedRequest, got %v", op.Tag)
	}
	if op.ExtendedRequest.RequestName != "1.2.3" {
		t.Fatalf("unexpected request name: %q", op.ExtendedRequest.RequestName)
	}
	if len(rest) != 0 {
		t.Fatalf("expected no remaining bytes, got %d", len(rest))
	}
}
