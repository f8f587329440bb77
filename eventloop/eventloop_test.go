package eventloop

import (
	"testing"
)

func TestMicrotasksRunBeforeRenderTasks(t *testing.T) {
	loop := New()
	var order []string

	loop.QueueAfterRender(func() { order = append(order, "render") })
	loop.QueueMicrotask(func() { order = append(order, "micro1") })
	loop.QueueMicrotask(func() { order = append(order, "micro2") })

	loop.RunOnce()

	if len(order) != 3 {
		t.Fatalf("Expected 3 tasks to run, got %d", len(order))
	}
	if order[0] != "micro1" || order[1] != "micro2" || order[2] != "render" {
		t.Errorf("Microtasks should drain before the render task, got %v", order)
	}
}

func TestRenderTasksRunInArrivalOrder(t *testing.T) {
	loop := New()
	var order []int

	for i := 1; i <= 3; i++ {
		i := i
		loop.QueueAfterRender(func() { order = append(order, i) })
	}

	loop.Flush()

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("Render tasks should run FIFO, got %v", order)
	}
}

func TestRunOnceExecutesOneRenderTask(t *testing.T) {
	loop := New()
	ran := 0
	loop.QueueAfterRender(func() { ran++ })
	loop.QueueAfterRender(func() { ran++ })

	more := loop.RunOnce()

	if ran != 1 {
		t.Errorf("RunOnce should execute exactly one render task, got %d", ran)
	}
	if !more {
		t.Error("RunOnce should report that a task remains")
	}
}

func TestFlushRunsTasksQueuedWhileFlushing(t *testing.T) {
	loop := New()
	var order []string

	loop.QueueAfterRender(func() {
		order = append(order, "first")
		loop.QueueAfterRender(func() { order = append(order, "nested") })
		loop.QueueMicrotask(func() { order = append(order, "micro") })
	})

	loop.Flush()

	if loop.HasPending() {
		t.Error("Flush should leave no pending tasks")
	}
	if len(order) != 3 || order[0] != "first" || order[1] != "micro" || order[2] != "nested" {
		t.Errorf("Nested tasks should run within the same flush, got %v", order)
	}
}

func TestNilTasksAreIgnored(t *testing.T) {
	loop := New()
	loop.QueueMicrotask(nil)
	loop.QueueAfterRender(nil)

	if loop.HasPending() {
		t.Error("Nil tasks should not be queued")
	}
}

func TestClear(t *testing.T) {
	loop := New()
	loop.QueueMicrotask(func() { t.Error("Cleared microtask ran") })
	loop.QueueAfterRender(func() { t.Error("Cleared render task ran") })

	loop.Clear()

	if loop.HasPending() {
		t.Error("Clear should remove all pending tasks")
	}
	loop.Flush()
}
