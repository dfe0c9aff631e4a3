package history

import (
	"testing"
	"time"

	"github.com/irctrakz/netwatch/pkg/core"
)

func sampleWithValue(v float64) core.RateSample {
	return core.RateSample{SentPerSec: v, RecvPerSec: v, Timestamp: time.Unix(int64(v), 0)}
}

// TestCapacityBound pushes capacity+k samples and checks the buffer holds
// exactly the last capacity values in order.
func TestCapacityBound(t *testing.T) {
	buf := New(60)
	for i := 1; i <= 65; i++ {
		buf.Push(sampleWithValue(float64(i)))
	}

	if buf.Len() != 60 {
		t.Fatalf("Expected length 60 after 65 pushes, got %d", buf.Len())
	}
	got := buf.Snapshot()
	if len(got) != 60 {
		t.Fatalf("Expected snapshot length 60, got %d", len(got))
	}
	for i, s := range got {
		want := float64(i + 6) // values 6..65 survive
		if s.SentPerSec != want {
			t.Errorf("Index %d: expected value %v, got %v", i, want, s.SentPerSec)
		}
	}
}

// TestPartialFill checks chronological order before the buffer wraps.
func TestPartialFill(t *testing.T) {
	buf := New(10)
	for i := 1; i <= 3; i++ {
		buf.Push(sampleWithValue(float64(i)))
	}
	if buf.Len() != 3 {
		t.Fatalf("Expected length 3, got %d", buf.Len())
	}
	if buf.Capacity() != 10 {
		t.Errorf("Expected capacity 10, got %d", buf.Capacity())
	}
	for i, s := range buf.Snapshot() {
		if s.SentPerSec != float64(i+1) {
			t.Errorf("Index %d: expected %v, got %v", i, float64(i+1), s.SentPerSec)
		}
	}
}

// TestSnapshotIsCopy checks copy-on-read: a push after Snapshot must not
// mutate the returned slice.
func TestSnapshotIsCopy(t *testing.T) {
	buf := New(2)
	buf.Push(sampleWithValue(1))
	buf.Push(sampleWithValue(2))

	snap := buf.Snapshot()
	buf.Push(sampleWithValue(3))

	if snap[0].SentPerSec != 1 || snap[1].SentPerSec != 2 {
		t.Errorf("Snapshot changed after push: %+v", snap)
	}
}

func TestLast(t *testing.T) {
	buf := New(3)
	if _, ok := buf.Last(); ok {
		t.Error("Expected Last to report false on an empty buffer")
	}
	for i := 1; i <= 5; i++ {
		buf.Push(sampleWithValue(float64(i)))
		last, ok := buf.Last()
		if !ok {
			t.Fatalf("Expected Last to report true after push %d", i)
		}
		if last.SentPerSec != float64(i) {
			t.Errorf("Push %d: expected last value %v, got %v", i, float64(i), last.SentPerSec)
		}
	}
}

func TestDefaultCapacity(t *testing.T) {
	if got := New(0).Capacity(); got != DefaultCapacity {
		t.Errorf("Expected fallback capacity %d, got %d", DefaultCapacity, got)
	}
	if got := New(-5).Capacity(); got != DefaultCapacity {
		t.Errorf("Expected fallback capacity %d, got %d", DefaultCapacity, got)
	}
}
