package hook

import (
	"fmt"
	"sync"

	"github.com/iabdulin/pr-access-control/entity"
)

// prLocks serializes destructive workflows per pull request. Locks are
// created on first use and never evicted; the key space is bounded by
// the set of pull requests the bot has touched this process lifetime.
type prLocks struct {
	m sync.Map // string -> *sync.Mutex
}

func (l *prLocks) lock(key string) (unlock func()) {
	v, _ := l.m.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func prKey(repo *entity.Repo, number int) string {
	return fmt.Sprintf("%v#%v", repo, number)
}
