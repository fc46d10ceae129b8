package core

// SampleBuffer is a fixed-capacity record of voltage samples. The backing
// array is allocated once at startup and never resized; Count marks the
// valid prefix and everything past it is stale.
type SampleBuffer struct {
	samples []float32
	count   int
}

// NewSampleBuffer allocates a buffer for the given number of samples.
func NewSampleBuffer(capacity int) *SampleBuffer {
	return &SampleBuffer{samples: make([]float32, capacity)}
}

// Cap returns the fixed capacity.
func (b *SampleBuffer) Cap() int {
	return len(b.samples)
}

// Count returns the number of valid samples.
func (b *SampleBuffer) Count() int {
	return b.count
}

// Full reports whether the valid prefix has reached capacity.
func (b *SampleBuffer) Full() bool {
	return b.count == len(b.samples)
}

// Append stores one sample at the current write position. Returns false
// when the buffer is already full; the sample is dropped in that case.
func (b *SampleBuffer) Append(v float32) bool {
	if b.count >= len(b.samples) {
		return false
	}
	b.samples[b.count] = v
	b.count++
	return true
}

// At returns the sample at index i. i must be below Count.
func (b *SampleBuffer) At(i int) float32 {
	return b.samples[i]
}

// Reset discards the valid prefix without touching the backing array.
func (b *SampleBuffer) Reset() {
	b.count = 0
}

// Stats returns min, max and average over the valid prefix.
// Only call when Count is positive.
func (b *SampleBuffer) Stats() (min, max, avg float32) {
	min = b.samples[0]
	max = b.samples[0]
	var sum float32
	for i := 0; i < b.count; i++ {
		v := b.samples[i]
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	return min, max, sum / float32(b.count)
}
