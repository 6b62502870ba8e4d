package passes

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func TestDecodeSubmittedPayloadBase64(t *testing.T) {
	original := []byte{0x89, 0x50, 0x4e, 0x47, 0x00, 0xff}
	payload := base64.StdEncoding.EncodeToString(original)

	got := decodeSubmittedPayload(payload)
	if got.Literal {
		t.Fatalf("valid base64 treated as literal text")
	}
	if !bytes.Equal(got.Data, original) {
		t.Fatalf("decoded bytes mismatch: got %v want %v", got.Data, original)
	}
}

func TestDecodeSubmittedPayloadLiteralFallback(t *testing.T) {
	payload := "definitely not base64!!!"

	got := decodeSubmittedPayload(payload)
	if !got.Literal {
		t.Fatalf("expected literal fallback for %q", payload)
	}
	if string(got.Data) != payload {
		t.Fatalf("literal bytes mismatch: got %q want %q", got.Data, payload)
	}
}

func TestDecodeStrictPayloadRejectsText(t *testing.T) {
	if _, err := decodeStrictPayload("definitely not base64!!!"); err == nil {
		t.Fatalf("strict decode accepted malformed payload")
	}
}

func TestEncodePayloadRoundTrip(t *testing.T) {
	original := []byte("summit ridge photo")
	enc := encodePayload(original)

	back, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		t.Fatalf("re-encoded payload is not base64: %v", err)
	}
	if !bytes.Equal(back, original) {
		t.Fatalf("round trip mismatch: got %q want %q", back, original)
	}
}

func TestEncodePayloadEmpty(t *testing.T) {
	if got := encodePayload(nil); got != "" {
		t.Fatalf("empty payload should encode to empty string, got %q", got)
	}
}
