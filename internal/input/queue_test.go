package input

import (
	"sync"
	"testing"
)

func TestQueueOrder(t *testing.T) {
	var q Queue
	q.Push(Pressed(1, 2), Moved(3, 4))
	q.Push(Released(5, 6))

	got := q.Drain()
	want := []Event{Pressed(1, 2), Moved(3, 4), Released(5, 6)}
	if len(got) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Event %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue after drain, got %d", q.Len())
	}
	if len(q.Drain()) != 0 {
		t.Error("Expected second drain to be empty")
	}
}

func TestQueueDrainIsolation(t *testing.T) {
	var q Queue
	q.Push(Pressed(1, 1))
	first := q.Drain()
	q.Push(QuitEvent())
	if first[0] != Pressed(1, 1) {
		t.Errorf("Expected drained batch to be unaffected by later pushes, got %+v", first[0])
	}
	second := q.Drain()
	if len(second) != 1 || second[0].Kind != Quit {
		t.Errorf("Expected single quit event, got %+v", second)
	}
}

func TestQueueConcurrentPush(t *testing.T) {
	var q Queue
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Push(Moved(j, j))
			}
		}()
	}
	wg.Wait()
	if n := len(q.Drain()); n != 800 {
		t.Errorf("Expected 800 events, got %d", n)
	}
}

func TestKindString(t *testing.T) {
	if PointerMoved.String() != "moved" || Quit.String() != "quit" {
		t.Errorf("Unexpected kind names: %s, %s", PointerMoved, Quit)
	}
	if Kind(9).String() != "Kind(9)" {
		t.Errorf("Unexpected unknown kind name: %s", Kind(9))
	}
}
