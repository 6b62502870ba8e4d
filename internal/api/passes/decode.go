package passes

import "encoding/base64"

// decodedImage is the interpreted form of a submitted image payload.
type decodedImage struct {
	Data    []byte
	Literal bool // payload was not valid base64 and is stored as raw text
}

// decodeSubmittedPayload tries standard base64 first; anything that
// does not decode is kept as its literal UTF-8 bytes.
func decodeSubmittedPayload(payload string) decodedImage {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return decodedImage{Data: []byte(payload), Literal: true}
	}
	return decodedImage{Data: data}
}

// decodeStrictPayload accepts base64 only. The update path uses it so
// a malformed payload fails the whole transaction instead of silently
// storing text.
func decodeStrictPayload(payload string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(payload)
}

// encodePayload re-encodes stored bytes for a response view. An empty
// stored payload comes back as "".
func encodePayload(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}
