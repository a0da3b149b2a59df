package editfield

// Scheduler defers a function to run on the host UI loop once the current
// event finishes. Implementations must not introduce threads of their own;
// the controller relies on everything running on the one loop.
type Scheduler interface {
	Defer(fn func())
}

// immediate runs deferred work synchronously. It is the fallback for hosts
// that never installed a real scheduler; with it the committing window
// collapses to zero ticks.
type immediate struct{}

func (immediate) Defer(fn func()) { fn() }

// Queue is a FIFO scheduler for hosts that tick explicitly, such as the
// terminal demo and tests. The host drains it once per loop iteration.
type Queue struct {
	tasks []func()
}

// Defer appends fn to the queue.
func (q *Queue) Defer(fn func()) {
	q.tasks = append(q.tasks, fn)
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int {
	return len(q.tasks)
}

// Drain runs the tasks queued so far. Tasks deferred while draining run on
// the next drain, which is what gives deferred steps one-tick granularity.
func (q *Queue) Drain() {
	tasks := q.tasks
	q.tasks = nil
	for _, fn := range tasks {
		fn()
	}
}
