package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHmacHash(t *testing.T) {
	t.Run("known vector", func(t *testing.T) {
		sign := HmacHash("recv_window=5000&timestamp=1700000000000", "test-secret")
		assert.Equal(t, "KIdB2Cz/tEqRqb+XVELihE5rRnnJefh+B05jAP1m0lc=", sign)
	})

	t.Run("deterministic", func(t *testing.T) {
		first := HmacHash("timestamp=1&recv_window=5000", "secret")
		second := HmacHash("timestamp=1&recv_window=5000", "secret")
		assert.Equal(t, first, second)
	})

	t.Run("changing any input changes the signature", func(t *testing.T) {
		base := HmacHash("timestamp=1&recv_window=5000", "secret")
		assert.NotEqual(t, base, HmacHash("timestamp=2&recv_window=5000", "secret"))
		assert.NotEqual(t, base, HmacHash("timestamp=1&recv_window=5000", "other-secret"))
	})
}
