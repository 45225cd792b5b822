// Copyright 2025 Leon Aquitaine
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCounter(t *testing.T) {
	registry := prometheus.NewRegistry()
	c := NewCounter(registry, "test_total", "A test counter")

	c.Inc()
	c.Add(2)

	assert.Equal(t, 3.0, testutil.ToFloat64(c))
	assert.Equal(t, 1, testutil.CollectAndCount(c, "test_total"))
}

func TestNewGauge(t *testing.T) {
	registry := prometheus.NewRegistry()
	g := NewGauge(registry, "test_entries", "A test gauge")

	g.Set(42)
	assert.Equal(t, 42.0, testutil.ToFloat64(g))

	g.Dec()
	assert.Equal(t, 41.0, testutil.ToFloat64(g))
}

func TestNewHistogram(t *testing.T) {
	registry := prometheus.NewRegistry()
	h := NewHistogram(registry, "test_duration_seconds", "A test histogram")

	h.Observe(0.25)
	h.Observe(1.5)

	assert.Equal(t, 1, testutil.CollectAndCount(h, "test_duration_seconds"))
}

func TestNewHistogramWithBuckets(t *testing.T) {
	registry := prometheus.NewRegistry()
	h := NewHistogramWithBuckets(registry, "test_bytes", "A test histogram", []float64{10, 100, 1000})

	h.Observe(50)
	assert.Equal(t, 1, testutil.CollectAndCount(h, "test_bytes"))
}

func TestRegistryScoping(t *testing.T) {
	// Two registries hold independent instruments under the same name.
	a := prometheus.NewRegistry()
	b := prometheus.NewRegistry()

	ca := NewCounter(a, "scoped_total", "Scoped counter")
	cb := NewCounter(b, "scoped_total", "Scoped counter")

	ca.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(ca))
	assert.Equal(t, 0.0, testutil.ToFloat64(cb))
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	registry := prometheus.NewRegistry()
	NewCounter(registry, "dup_total", "First registration")

	require.Panics(t, func() {
		NewCounter(registry, "dup_total", "Second registration")
	})
}
