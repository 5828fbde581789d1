// Copyright 2017 Google Inc. All Rights Reserved.
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

// Package monitoring provides a small metrics abstraction so library code
// can export counters without depending on a particular backend.
package monitoring

import "sync"

// MetricFactory allows the creation of Counter objects.
type MetricFactory interface {
	NewCounter(name, help string) Counter
}

// Counter is a metric class for numbers that only ever increase.
type Counter interface {
	// Inc adds 1 to the counter.
	Inc()
	// Add adds the given (non-negative) amount to the counter.
	Add(val float64)
	// Value returns the current amount of the counter.
	Value() float64
}

// InertMetricFactory creates inert metrics for testing.
type InertMetricFactory struct{}

// NewCounter creates an inert Counter.
func (imf InertMetricFactory) NewCounter(_, _ string) Counter {
	return &InertFloat{}
}

// InertFloat is an internal-only implementation of both the Counter
// interface and a plain float value guarded by a mutex.
type InertFloat struct {
	mu  sync.Mutex
	val float64
}

// Inc adds 1 to the value.
func (m *InertFloat) Inc() {
	m.Add(1.0)
}

// Add adds the given amount to the value.
func (m *InertFloat) Add(val float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.val += val
}

// Value returns the current value.
func (m *InertFloat) Value() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.val
}
