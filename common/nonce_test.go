package common

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNonceSourceStrictlyIncreasing(t *testing.T) {
	source := NewNonceSource()

	prev := source.Next()
	for i := 0; i < 1000; i++ {
		next := source.Next()
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestNonceSourceConcurrentCallersNeverCollide(t *testing.T) {
	source := NewNonceSource()

	const workers = 8
	const perWorker = 500

	var mut sync.Mutex
	seen := make(map[int64]bool, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				nonce := source.Next()

				mut.Lock()
				assert.False(t, seen[nonce], "nonce %d issued twice", nonce)
				seen[nonce] = true
				mut.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}

func TestNonceSourceAppliesDrift(t *testing.T) {
	source := NewNonceSource()
	source.SetDrift(5_000)

	nonce := source.Next()
	now := time.Now().UnixMilli()

	assert.LessOrEqual(t, nonce, now-5_000+50)
	assert.Equal(t, int64(5_000), source.Drift())
}
