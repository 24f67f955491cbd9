package evaluator

import (
	"testing"
)

func TestWriteAssignsGaplessTicks(t *testing.T) {
	store := NewStore()
	for i := 0; i < 5; i++ {
		tick := store.Write("x", &Integer{Value: int64(i)})
		if tick != i {
			t.Fatalf("write %d: expected tick %d, got %d", i, i, tick)
		}
	}

	history := store.History("x")
	if len(history) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(history))
	}
	for i, entry := range history {
		if entry.Tick != i {
			t.Errorf("entry %d has tick %d", i, entry.Tick)
		}
	}
}

func TestPerNameCountersAreIndependent(t *testing.T) {
	store := NewStore()
	store.Write("x", &Integer{Value: 1})
	store.Write("x", &Integer{Value: 2})
	if tick := store.Write("y", &Integer{Value: 10}); tick != 0 {
		t.Fatalf("first write to y should be tick 0, got %d", tick)
	}
}

func TestReadReturnsLatest(t *testing.T) {
	store := NewStore()
	store.Write("x", &Integer{Value: 1})
	store.Write("x", &Integer{Value: 2})

	value, err := store.Read("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value.(*Integer).Value != 2 {
		t.Fatalf("expected 2, got %s", value.Inspect())
	}
}

func TestReadUnbound(t *testing.T) {
	store := NewStore()
	_, err := store.Read("ghost")
	if err == nil || err.Kind != UnboundVariable {
		t.Fatalf("expected UnboundVariable, got %v", err)
	}
	_, err = store.ReadAt("ghost", 3)
	if err == nil || err.Kind != UnboundVariable {
		t.Fatalf("expected UnboundVariable from ReadAt, got %v", err)
	}
}

func TestReadAtBetweenWrites(t *testing.T) {
	store := NewStore()
	store.Write("x", &Integer{Value: 10}) // tick 0
	store.Write("x", &Integer{Value: 20}) // tick 1

	tests := []struct {
		tick     int
		expected int64
	}{
		{0, 10},
		{1, 20},
		{7, 20}, // after the last write: latest value, no phantom states
	}
	for _, tt := range tests {
		value, err := store.ReadAt("x", tt.tick)
		if err != nil {
			t.Fatalf("ReadAt(x, %d): %v", tt.tick, err)
		}
		if value.(*Integer).Value != tt.expected {
			t.Errorf("ReadAt(x, %d) = %s, expected %d", tt.tick, value.Inspect(), tt.expected)
		}
	}

	if _, err := store.ReadAt("x", -1); err == nil {
		t.Error("expected error for negative tick")
	}
}

func TestHistoryIsACopy(t *testing.T) {
	store := NewStore()
	store.Write("x", &Integer{Value: 1})
	history := store.History("x")
	history[0].Value = &Integer{Value: 99}

	value, _ := store.Read("x")
	if value.(*Integer).Value != 1 {
		t.Fatal("mutating a History copy must not affect the store")
	}
}

func TestObserverSeesEveryWrite(t *testing.T) {
	store := NewStore()
	var seen []Entry
	store.SetObserver(func(name string, tick int, value Object) {
		seen = append(seen, Entry{Name: name, Tick: tick, Value: value})
	})

	store.Write("x", &Integer{Value: 1})
	store.Write("y", &Integer{Value: 2})
	store.Write("x", &Integer{Value: 3})

	if len(seen) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(seen))
	}
	if seen[2].Name != "x" || seen[2].Tick != 1 {
		t.Fatalf("unexpected last notification: %+v", seen[2])
	}
}
