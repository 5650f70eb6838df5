package set

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSet(t *testing.T) {
	s := NewStringSet("gender", "ethnicity", "gender")
	assert.True(t, s.Contains("gender"))
	assert.True(t, s.Contains("gender", "ethnicity"))
	assert.False(t, s.Contains("age"))
	assert.False(t, s.Contains("gender", "age"))

	empty := NewStringSet()
	assert.False(t, empty.Contains("gender"))
}

func TestConcurrentReads(t *testing.T) {
	s := NewStringSet("a", "b", "c")
	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.True(t, s.Contains("a", "b", "c"))
			}
		}()
	}
	wg.Wait()
}
