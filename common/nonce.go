package common

import (
	"sync"
	"time"
)

// NonceSource issues request nonces for signed calls: wall-clock
// milliseconds shifted by the drift measured against the venue clock,
// forced strictly increasing so concurrent callers never reuse a value.
type NonceSource struct {
	mut   sync.Mutex
	last  int64
	drift int64
}

func NewNonceSource() *NonceSource {
	return &NonceSource{}
}

func (n *NonceSource) Next() int64 {
	n.mut.Lock()
	defer n.mut.Unlock()

	nonce := time.Now().UnixMilli() - n.drift
	if nonce <= n.last {
		nonce = n.last + 1
	}
	n.last = nonce

	return nonce
}

// SetDrift stores localTime - venueTime in milliseconds.
func (n *NonceSource) SetDrift(drift int64) {
	n.mut.Lock()
	n.drift = drift
	n.mut.Unlock()
}

func (n *NonceSource) Drift() int64 {
	n.mut.Lock()
	defer n.mut.Unlock()

	return n.drift
}
