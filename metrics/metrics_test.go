package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollector_GaugesReflectLastSetValue(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.SetKeyCount(42)
	c.SetBytesUsed(1024)

	assert.Equal(t, float64(42), testutil.ToFloat64(c.keyCount))
	assert.Equal(t, float64(1024), testutil.ToFloat64(c.bytesUsed))
}

func TestCollector_CountersAccumulate(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.IncOps()
	c.IncOps()
	c.IncHit()
	c.IncMiss()
	c.IncMiss()
	c.IncEviction("memory")
	c.IncEviction("capacity")
	c.IncEviction("capacity")

	assert.Equal(t, float64(2), testutil.ToFloat64(c.ops))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.results.WithLabelValues("hit")))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.results.WithLabelValues("miss")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.evictions.WithLabelValues("memory")))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.evictions.WithLabelValues("capacity")))
}
