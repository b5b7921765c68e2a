package scene

import (
	"testing"
)

func TestMutatorRunsJobsInOrder(t *testing.T) {
	m := NewMutator()

	var order []int
	for i := 0; i < 10; i++ {
		i := i
		m.Submit(func() {
			order = append(order, i)
		})
	}
	m.Close()

	if len(order) != 10 {
		t.Fatalf("expected 10 jobs executed, got %d", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Errorf("job %d ran out of order (got %d)", i, v)
		}
	}
}

func TestMutatorCloseDrainsPending(t *testing.T) {
	m := NewMutator()

	ran := 0
	for i := 0; i < 5; i++ {
		m.Submit(func() { ran++ })
	}
	m.Close()

	if ran != 5 {
		t.Errorf("expected all pending jobs drained on close, ran %d", ran)
	}
}
