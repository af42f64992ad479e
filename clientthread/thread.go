// Package clientthread runs deferred work on the client's game loop.
//
// Anything that touches widgets or client state has to happen on the game
// loop goroutine. Other goroutines queue work with InvokeLater or Invoke,
// and the loop calls Drain once per tick.
package clientthread

import (
	"log"
	"runtime/debug"
	"sync"
)

type task struct {
	once  func()
	until func() bool
}

// Thread is a FIFO of tasks consumed by a single goroutine.
type Thread struct {
	mu    sync.Mutex
	queue []task
	ticks uint64
}

// New returns an empty Thread.
func New() *Thread {
	return &Thread{}
}

// InvokeLater queues fn to run once on the next Drain. Safe for concurrent use.
func (t *Thread) InvokeLater(fn func()) {
	if fn == nil {
		return
	}
	t.push(task{once: fn})
}

// Invoke queues fn and runs it on each Drain until it returns true.
func (t *Thread) Invoke(fn func() bool) {
	if fn == nil {
		return
	}
	t.push(task{until: fn})
}

func (t *Thread) push(tk task) {
	t.mu.Lock()
	t.queue = append(t.queue, tk)
	t.mu.Unlock()
}

// Pending returns the number of queued tasks.
func (t *Thread) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.queue)
}

// Ticks returns how many times Drain has run.
func (t *Thread) Ticks() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ticks
}

// Drain runs every task queued before the call, in order, on the calling
// goroutine. Tasks queued while draining wait for the next Drain. It must
// only be called from the game loop.
func (t *Thread) Drain() int {
	t.mu.Lock()
	tasks := t.queue
	t.queue = nil
	t.ticks++
	t.mu.Unlock()

	var retry []task
	for _, tk := range tasks {
		if tk.once != nil {
			run(func() bool { tk.once(); return true })
			continue
		}
		if !run(tk.until) {
			retry = append(retry, tk)
		}
	}
	if len(retry) > 0 {
		t.mu.Lock()
		t.queue = append(retry, t.queue...)
		t.mu.Unlock()
	}
	return len(tasks)
}

// run calls fn, treating a panic as done so it is not retried forever.
func run(fn func() bool) (done bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[client thread] task panic: %v\n%s", r, debug.Stack())
			done = true
		}
	}()
	return fn()
}
