package ldap

import "testing"

// Hex vectors from spec.md §8.

func TestDecodeMessageUnbind(t *testing.T) {
	buf := []byte{0x42, 0x00}
	msg, rest, err := DecodeMessage(buf)
	if err == nil {
		t.Fatalf("expected an error, since %x alone is not a full LDAPMessage SEQUENCE", buf)
	}
	_ = msg
	_ = rest
}

func TestDecodeUnbindRequestOpDirectly(t *testing.T) {
	// §8 scenario 1 exercises the bare ProtocolOp, not a full envelope.
	op, rest, err := decodeProtocolOp([]byte{0x42, 0x00}, DecodeOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Tag != OpUnbindRequest {
		t.Fatalf("expected OpUnbindRequest, got %v", op.Tag)
	}
	if len(rest) != 0 {
		t.Fatalf("expected zero remaining bytes, got %d", len(rest))
	}
}

func TestDecodeBindResponseMinimal(t *testing.T) {
	// §8 scenario 2: 4-byte long-form length.
	buf := []byte{0x61, 0x84, 0x00, 0x00, 0x00, 0x07, 0x0a, 0x01, 0x00, 0x04, 0x00, 0x04, 0x00}
	op, rest, err := decodeProtocolOp(buf, DecodeOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Tag != OpBindResponse {
		t.Fatalf("expected OpBindResponse, got %v", op.Tag)
	}
	if op.BindResponse.Result.ResultCode != LDAPResultSuccess {
		t.Fatalf("expected success, got %d", op.BindResponse.Result.ResultCode)
	}
	if op.BindResponse.Result.MatchedDN != "" || op.BindResponse.Result.DiagnosticMessage != "" {
		t.Fatalf("expected empty DN/message, got %+v", op.BindResponse.Result)
	}
	if op.BindResponse.HasSaslCreds {
		t.Fatal("expected no sasl creds")
	}
	if len(rest) != 0 {
		t.Fatalf("expected zero remaining bytes, got %d", len(rest))
	}
}

func TestDecodeExtendedResponseMinimal(t *testing.T) {
	// §8 scenario 3.
	buf := []byte{0x78, 0x07, 0x0a, 0x01, 0x00, 0x04, 0x00, 0x04, 0x00}
	op, rest, err := decodeProtocolOp(buf, DecodeOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Tag != OpExtendedResponse {
		t.Fatalf("expected OpExtendedResponse, got %v", op.Tag)
	}
	if op.ExtendedResponse.Result.ResultCode != LDAPResultSuccess {
		t.Fatalf("expected success, got %d", op.ExtendedResponse.Result.ResultCode)
	}
	if op.ExtendedResponse.HasResponseName || op.ExtendedResponse.HasResponseValue {
		t.Fatal("expected no responseName/responseValue")
	}
	if len(rest) != 0 {
		t.Fatalf("expected zero remaining bytes, got %d", len(rest))
	}
}

func TestDecodeMessageAbandonViaEnvelope(t *testing.T) {
	// §8 scenario 4: AbandonRequest's body is an unwrapped INTEGER under
	// APPLICATION[16].
	buf := []byte{0x30, 0x06, 0x02, 0x01, 0x06, 0x50, 0x01, 0x05}
	msg, rest, err := DecodeMessage(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.MessageID != 6 {
		t.Fatalf("expected messageID 6, got %d", msg.MessageID)
	}
	if msg.ProtocolOp.Tag != OpAbandonRequest {
		t.Fatalf("expected OpAbandonRequest, got %v", msg.ProtocolOp.Tag)
	}
	if msg.ProtocolOp.AbandonRequest != 5 {
		t.Fatalf("expected AbandonRequest(5), got %d", msg.ProtocolOp.AbandonRequest)
	}
	if msg.Controls != nil {
		t.Fatalf("expected no controls, got %+v", msg.Controls)
	}
	if len(rest) != 0 {
		t.Fatalf("expected zero remaining bytes, got %d", len(rest))
	}
}

func TestDecodeMessageEmptyInput(t *testing.T) {
	// §8 scenario 5.
	_, _, err := DecodeMessage(nil)
	if err == nil {
		t.Fatal("expected an error for empty input")
	}
	var lerr *Error
	if !asLdapError(err, &lerr) || lerr.Kind != ErrShortInput {
		t.Fatalf("expected ErrShortInput, got %v", err)
	}
}

func TestDecodeMessageMalformedLength(t *testing.T) {
	// §8 scenario 6: declared length exceeds remaining input.
	buf := []byte{0x30, 0x7f, 0x02, 0x01, 0x01}
	_, _, err := DecodeMessage(buf)
	if err == nil {
		t.Fatal("expected an error for malformed length")
	}
	var lerr *Error
	if !asLdapError(err, &lerr) || lerr.Kind != ErrShortInput {
		t.Fatalf("expected ErrShortInput, got %v", err)
	}
	want := 0x7f - 3
	if lerr.Missing != want {
		t.Fatalf("expected %d missing bytes, got %d", want, lerr.Missing)
	}
}

func TestDecodeMessagesBatch(t *testing.T) {
	unbind := []byte{0x30, 0x05, 0x02, 0x01, 0x01, 0x42, 0x00}
	buf := append(append([]byte{}, unbind...), unbind...)
	messages, err := DecodeMessages(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	for _, m := range messages {
		if m.ProtocolOp.Tag != OpUnbindRequest {
			t.Fatalf("expected OpUnbindRequest, got %v", m.ProtocolOp.Tag)
		}
	}
}

func TestDecodeMessagesEmptyBufferIsAnError(t *testing.T) {
	// spec.md §6/§4.G: decode_messages decodes one-or-more; an empty
	// buffer has zero, so it's a short-input error, not an empty batch.
	messages, err := DecodeMessages(nil)
	if err == nil {
		t.Fatalf("expected an error for empty input, got %d messages", len(messages))
	}
	var lerr *Error
	if !asLdapError(err, &lerr) || lerr.Kind != ErrShortInput {
		t.Fatalf("expected ErrShortInput, got %v", err)
	}
}

func TestDecodeMessageTrailingBytesAfterEnvelopeAreTolerated(t *testing.T) {
	// One valid Unbind envelope followed by garbage that is NOT part of
	// the SEQUENCE (it's returned as "rest", per SPEC_FULL.md §C.4 this
	// only concerns bytes *inside* the envelope, not bytes after it).
	buf := []byte{0x30, 0x05, 0x02, 0x01, 0x01, 0x42, 0x00, 0xde, 0xad}
	msg, rest, err := DecodeMessage(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.MessageID != 1 {
		t.Fatalf("expected messageID 1, got %d", msg.MessageID)
	}
	if len(rest) != 2 {
		t.Fatalf("expected 2 trailing bytes, got %d", len(rest))
	}
}

// asLdapError is a small helper so tests can assert on *Error.Kind
// without importing errors.As boilerplate at every call site.
func asLdapError(err error, target **Error) bool {
	le, ok := err.(*Error)
	if !ok {
		return false
	}
	*target = le
	return true
}
