package ren

import (
	"runtime"
	"sync/atomic"
)

// spinlock is a busy-wait mutex for very short critical sections:
// a state copy or the screen buffer swap.
type spinlock struct {
	flag atomic.Bool
}

func (l *spinlock) Lock() {
	for !l.flag.CompareAndSwap(false, true) {
		runtime.Gosched()
	}
}

func (l *spinlock) TryLock() bool {
	return l.flag.CompareAndSwap(false, true)
}

func (l *spinlock) Unlock() {
	l.flag.Store(false)
}
