package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterIsCached(t *testing.T) {
	r := NewRegistry()
	c := r.Counter(MetricFrames)
	c.Add(3)

	assert.Same(t, c, r.Counter(MetricFrames))
	assert.Equal(t, int64(3), r.Counter(MetricFrames).Load())
	assert.Equal(t, 1, r.Len())
}

func TestGaugeMax(t *testing.T) {
	var f AtomicFloat
	assert.Equal(t, 0.0, f.Get())
	assert.Equal(t, 2.5, f.Max(2.5))
	assert.Equal(t, 2.5, f.Max(1.0))
	f.Set(-1)
	assert.Equal(t, -1.0, f.Get())
}

func TestFieldsSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Counter(MetricSessions).Add(2)
	r.Counter(MetricBestScore).Store(17)
	r.Gauge(MetricFrameMsMax).Max(4.25)

	fields := r.Fields()
	assert.Len(t, fields, 3)
	assert.Equal(t, int64(2), fields[MetricSessions])
	assert.Equal(t, int64(17), fields[MetricBestScore])
	assert.Equal(t, 4.25, fields[MetricFrameMsMax])
}

func TestConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				r.Counter(MetricFrames).Add(1)
				r.Gauge(MetricFrameMsMax).Max(float64(i*1000 + j))
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(8000), r.Counter(MetricFrames).Load())
	assert.Equal(t, 7999.0, r.Gauge(MetricFrameMsMax).Get())
}
