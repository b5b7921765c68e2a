package scene

import (
	"github.com/strokelab/airsketch/parameter"
)

// Mutator serializes scene-graph mutations onto a single goroutine.
// Renderers traverse the scene graph concurrently with the frame loop, so
// every node attach/detach must funnel through here; nothing else in the
// core touches the scene graph
type Mutator struct {
	jobs chan func()
	done chan struct{}
}

func NewMutator() *Mutator {
	m := &Mutator{
		jobs: make(chan func(), parameter.MutatorQueueDepth),
		done: make(chan struct{}),
	}
	go m.run()
	return m
}

func (m *Mutator) run() {
	for job := range m.jobs {
		job()
	}
	close(m.done)
}

// Submit enqueues fn for execution on the mutation goroutine, in submission
// order. Fire-and-forget; blocks only when the queue is full.
// Must not be called after Close
func (m *Mutator) Submit(fn func()) {
	m.jobs <- fn
}

// Close drains pending mutations and stops the goroutine
func (m *Mutator) Close() {
	close(m.jobs)
	<-m.done
}
