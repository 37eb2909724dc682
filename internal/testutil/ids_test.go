package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequentialIDs(t *testing.T) {
	g := NewSequentialIDs("")
	assert.Equal(t, "run-0001", g.Generate())
	assert.Equal(t, "run-0002", g.Generate())
	assert.Equal(t, 2, g.Issued())

	h := NewSequentialIDs("audit")
	assert.Equal(t, "audit-0001", h.Generate())
}

func TestSequentialIDsConcurrent(t *testing.T) {
	g := NewSequentialIDs("run")

	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := g.Generate()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 50)
	assert.Equal(t, 50, g.Issued())
}

func TestFixedIDs(t *testing.T) {
	g := NewFixedIDs("a", "b")
	assert.Equal(t, "a", g.Generate())
	assert.Equal(t, "b", g.Generate())
	assert.PanicsWithValue(t, "FixedIDs: all ids exhausted", func() { g.Generate() })
}
