// Package eventloop provides the cooperative scheduler of a single UI thread:
// a microtask queue and an after-render queue, each drained in FIFO order by
// whoever hosts the surface.
package eventloop

import "sync"

// Task is a unit of deferred work.
type Task func()

// Loop manages deferred tasks for a single surface.
// Microtasks run before any after-render task; after-render tasks run one per
// iteration, in the order they were queued.
type Loop struct {
	mu          sync.Mutex
	microtasks  []Task
	renderTasks []Task
}

// New creates a new event loop.
func New() *Loop {
	return &Loop{
		microtasks:  make([]Task, 0),
		renderTasks: make([]Task, 0),
	}
}

// QueueMicrotask adds a microtask to the queue.
// Microtasks are executed before the next after-render task.
func (l *Loop) QueueMicrotask(t Task) {
	if t == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.microtasks = append(l.microtasks, t)
}

// QueueAfterRender queues a task to run after the current render pass.
// Tasks from successive events execute in event arrival order; they are never
// coalesced or reordered.
func (l *Loop) QueueAfterRender(t Task) {
	if t == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.renderTasks = append(l.renderTasks, t)
}

// RunOnce processes one iteration of the loop: it drains all microtasks, then
// executes one after-render task. Returns true if tasks remain afterwards.
func (l *Loop) RunOnce() bool {
	for {
		l.mu.Lock()
		if len(l.microtasks) == 0 {
			l.mu.Unlock()
			break
		}
		t := l.microtasks[0]
		l.microtasks = l.microtasks[1:]
		l.mu.Unlock()

		t()
	}

	l.mu.Lock()
	if len(l.renderTasks) > 0 {
		t := l.renderTasks[0]
		l.renderTasks = l.renderTasks[1:]
		l.mu.Unlock()

		t()
		return l.HasPending()
	}
	l.mu.Unlock()

	return false
}

// Flush runs the loop until no tasks remain, including tasks queued while
// flushing.
func (l *Loop) Flush() {
	for l.RunOnce() {
	}
	// RunOnce returns false on an empty iteration, but a microtask drained in
	// that iteration may have queued more work.
	for l.HasPending() {
		for l.RunOnce() {
		}
	}
}

// HasPending returns true if there are any pending tasks.
func (l *Loop) HasPending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.microtasks) > 0 || len(l.renderTasks) > 0
}

// Clear removes all pending tasks.
func (l *Loop) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.microtasks = l.microtasks[:0]
	l.renderTasks = l.renderTasks[:0]
}
