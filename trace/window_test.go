package trace

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow_Fill(t *testing.T) {
	w := newWindow[string](3)
	assert.Zero(t, w.len())

	w.push("console")
	assert.Equal(t, []string{"console"}, w.last(1))

	w.push("request")
	w.push("response")

	assert.Equal(t, []string{"console", "request", "response"}, w.last(3))
	assert.Equal(t, []string{"request", "response"}, w.last(2))
	assert.Zero(t, w.dropped())
}

func TestWindow_Overwrite(t *testing.T) {
	w := newWindow[string](3)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		w.push(s)
	}

	assert.Equal(t, 3, w.len())
	assert.Equal(t, uint64(2), w.dropped())
	assert.Equal(t, []string{"c", "d", "e"}, w.last(3))
	assert.Equal(t, []string{"d", "e"}, w.last(2))
	assert.Equal(t, []string{"c", "d", "e"}, w.last(10))
}

func TestWindow_Empty(t *testing.T) {
	w := newWindow[int](3)
	assert.Empty(t, w.last(5))

	w.push(1)
	assert.Empty(t, w.last(0))
	assert.Empty(t, w.last(-1))
}

func TestWindow_MinimumSize(t *testing.T) {
	w := newWindow[string](0)
	w.push("a")
	w.push("b")

	assert.Equal(t, []string{"b"}, w.last(5))
	assert.Equal(t, uint64(1), w.dropped())
}

func TestWindow_ConcurrentPush(t *testing.T) {
	w := newWindow[int](100)

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				w.push(i)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, w.len())
	assert.Equal(t, uint64(900), w.dropped())
	assert.Len(t, w.last(100), 100)
}
