package event

import (
	"sync"
	"testing"

	"github.com/strokelab/airsketch/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()

	for i := 0; i < 5; i++ {
		q.Push(Event{Type: EventPointAdded, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Frame != int64(i) {
			t.Errorf("event %d has frame %d, want %d", i, ev.Frame, i)
		}
	}

	if more := q.Consume(); more != nil {
		t.Errorf("expected empty queue after consume, got %d events", len(more))
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewQueue()

	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(Event{Type: EventTrackingUpdate, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) == 0 {
		t.Fatal("expected events after overflow")
	}
	last := events[len(events)-1]
	if last.Frame != int64(total-1) {
		t.Errorf("newest event frame = %d, want %d", last.Frame, total-1)
	}
	first := events[0]
	if first.Frame < 10 {
		t.Errorf("oldest surviving frame = %d, expected overwritten events dropped", first.Frame)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()

	var wg sync.WaitGroup
	producers := 4
	perProducer := 20

	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(Event{Type: EventTrackingUpdate})
			}
		}()
	}
	wg.Wait()

	events := q.Consume()
	if len(events) != producers*perProducer {
		t.Errorf("got %d events, want %d", len(events), producers*perProducer)
	}
}
