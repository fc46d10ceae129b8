package core

import "testing"

func TestSampleBufferAppend(t *testing.T) {
	buf := NewSampleBuffer(3)

	if buf.Cap() != 3 {
		t.Errorf("Expected capacity 3, got %d", buf.Cap())
	}
	if buf.Count() != 0 {
		t.Errorf("Expected empty buffer, got count %d", buf.Count())
	}

	for i, v := range []float32{1.0, 2.0, 3.0} {
		if !buf.Append(v) {
			t.Fatalf("Append %d failed below capacity", i)
		}
	}

	if !buf.Full() {
		t.Error("Buffer should be full after 3 appends")
	}

	// Appending past capacity must be rejected, never overflow.
	if buf.Append(4.0) {
		t.Error("Append succeeded on a full buffer")
	}
	if buf.Count() != 3 {
		t.Errorf("Count changed after rejected append: %d", buf.Count())
	}

	if buf.At(0) != 1.0 || buf.At(2) != 3.0 {
		t.Errorf("Samples stored out of order: %v, %v", buf.At(0), buf.At(2))
	}
}

func TestSampleBufferReset(t *testing.T) {
	buf := NewSampleBuffer(5)
	buf.Append(1.5)
	buf.Append(2.5)

	buf.Reset()

	if buf.Count() != 0 {
		t.Errorf("Expected count 0 after reset, got %d", buf.Count())
	}
	if buf.Full() {
		t.Error("Buffer reported full after reset")
	}

	// Reset must not shrink capacity.
	if buf.Cap() != 5 {
		t.Errorf("Capacity changed after reset: %d", buf.Cap())
	}
}

func TestSampleBufferStats(t *testing.T) {
	buf := NewSampleBuffer(10)
	for _, v := range []float32{1.0, 3.0, 2.0} {
		buf.Append(v)
	}

	min, max, avg := buf.Stats()
	if min != 1.0 {
		t.Errorf("Expected min 1.0, got %v", min)
	}
	if max != 3.0 {
		t.Errorf("Expected max 3.0, got %v", max)
	}
	if avg != 2.0 {
		t.Errorf("Expected avg 2.0, got %v", avg)
	}
}

func TestSampleBufferStatsIgnoresStale(t *testing.T) {
	buf := NewSampleBuffer(4)
	buf.Append(9.0)
	buf.Append(9.0)
	buf.Reset()

	// Stale entries beyond count must never influence results.
	buf.Append(1.0)

	min, max, _ := buf.Stats()
	if min != 1.0 || max != 1.0 {
		t.Errorf("Stats read stale entries: min=%v max=%v", min, max)
	}
}
