// Package loop provides a deferred task queue bound to a single owning
// goroutine, typically the goroutine running a display's frame loop.
package loop

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
)

// Runner queues functions for execution on its owning goroutine. Post from
// the owner runs synchronously; Post from anywhere else defers the function
// until the owner's next Drain.
type Runner struct {
	owner atomic.Uint64

	mu    sync.Mutex
	tasks []func()
}

// Bind records the calling goroutine as the owner. It must be called from
// the goroutine that will call Drain, before any Post.
func (r *Runner) Bind() {
	r.owner.Store(goroutineID())
}

// OnOwner reports whether the calling goroutine is the bound owner.
func (r *Runner) OnOwner() bool {
	id := r.owner.Load()
	return id != 0 && id == goroutineID()
}

// Post runs fn synchronously when called from the owning goroutine, and
// otherwise appends it to the deferred queue. It reports whether fn was
// deferred.
func (r *Runner) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	if r.OnOwner() {
		fn()
		return false
	}
	r.mu.Lock()
	r.tasks = append(r.tasks, fn)
	r.mu.Unlock()
	return true
}

// Drain runs every deferred function in FIFO order and returns the number
// executed. It must be called from the owning goroutine. Functions posted
// while draining run synchronously rather than being re-queued.
func (r *Runner) Drain() int {
	r.mu.Lock()
	tasks := r.tasks
	r.tasks = nil
	r.mu.Unlock()

	for _, fn := range tasks {
		fn()
	}
	return len(tasks)
}

// Pending returns the number of deferred functions currently queued.
func (r *Runner) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}

var stackPrefix = []byte("goroutine ")

// goroutineID extracts the numeric ID from the first line of the calling
// goroutine's stack. The runtime does not expose this directly.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := bytes.TrimPrefix(buf[:n], stackPrefix)
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	id, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
