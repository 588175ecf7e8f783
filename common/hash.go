package common

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

func HmacHash(str, secret string) string {
	key := []byte(secret)
	h := hmac.New(sha256.New, key)
	h.Write([]byte(str))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
