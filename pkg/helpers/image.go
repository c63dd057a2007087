package helpers

import (
	"encoding/base64"
	"strings"
)

// DecodeImage turns an image field from a JSON body into raw bytes.
// Clients send either a bare base64 string or a full data URI.
func DecodeImage(s string) ([]byte, error) {
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			s = s[i+1:]
		}
	}
	return base64.StdEncoding.DecodeString(s)
}

// EncodeDataURI re-encodes stored image bytes as a base64 data URI for
// JSON responses. Returns "" when no image is stored.
func EncodeDataURI(img []byte) string {
	if len(img) == 0 {
		return ""
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(img)
}
