package usecase

import (
	"hash/fnv"
	"sync"
)

const lockStripes = 64

// keyLocker serialises work per key using a fixed set of mutexes, so memory does not grow with sessions.
type keyLocker struct {
	stripes [lockStripes]sync.Mutex
}

func (that *keyLocker) lock(key string) func() {
	mu := &that.stripes[stripeIndex(key)]
	mu.Lock()

	return mu.Unlock
}

func stripeIndex(key string) uint32 {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))

	return hash.Sum32() % lockStripes
}
