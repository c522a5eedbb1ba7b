package client

import (
	"encoding/base64"
)

func encodeSASL(b []byte) string {
	if len(b) == 0 {
		return "="
	}
	return base64.StdEncoding.EncodeToString(b)
}

func decodeSASL(s string) ([]byte, error) {
	if s == "=" || s == "" {
		// go-sasl treats nil as no challenge, so return a non-nil empty
		// byte slice
		return []byte{}, nil
	}
	return base64.StdEncoding.DecodeString(s)
}
