package hook

import (
	"sync"
	"testing"

	"github.com/iabdulin/pr-access-control/entity"
	"github.com/stretchr/testify/assert"
)

func TestPRLocksSerializeSameKey(t *testing.T) {
	var locks prLocks
	key := prKey(&entity.Repo{Owner: "foo", Name: "bar"}, 7)

	var (
		wg      sync.WaitGroup
		current int
		max     int
		mu      sync.Mutex
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.lock(key)
			defer unlock()

			mu.Lock()
			current++
			if current > max {
				max = current
			}
			mu.Unlock()

			mu.Lock()
			current--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, max, "at most one holder per key")
}

func TestPRLocksIndependentKeys(t *testing.T) {
	var locks prLocks

	unlockA := locks.lock(prKey(&entity.Repo{Owner: "foo", Name: "bar"}, 1))
	defer unlockA()

	// A different PR's lock is acquirable while the first is held.
	unlockB := locks.lock(prKey(&entity.Repo{Owner: "foo", Name: "bar"}, 2))
	unlockB()
}

func TestPRKey(t *testing.T) {
	assert.Equal(t, "foo/bar#7", prKey(&entity.Repo{Owner: "foo", Name: "bar"}, 7))
}
