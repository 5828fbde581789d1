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

// Package prometheus provides a Prometheus-based implementation of the
// MetricFactory abstraction.
package prometheus

import (
	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/TymurKhr/smt/monitoring"
)

// MetricFactory allows the creation of Prometheus-based metrics. Each
// metric is registered with the default registerer under Prefix+name.
type MetricFactory struct {
	Prefix string
}

// NewCounter creates a new Counter object backed by Prometheus.
func (pmf MetricFactory) NewCounter(name, help string) monitoring.Counter {
	counter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: pmf.Prefix + name,
			Help: help,
		})
	prometheus.MustRegister(counter)
	return &Counter{single: counter}
}

// Counter is a wrapper around a Prometheus Counter object.
type Counter struct {
	single prometheus.Counter
}

// Inc adds 1 to the counter.
func (c *Counter) Inc() {
	c.single.Inc()
}

// Add adds the given amount to the counter.
func (c *Counter) Add(val float64) {
	c.single.Add(val)
}

// Value returns the current amount of the counter.
func (c *Counter) Value() float64 {
	var metric dto.Metric
	if err := c.single.Write(&metric); err != nil {
		glog.Errorf("failed to read counter value: %v", err)
		return 0.0
	}
	return metric.GetCounter().GetValue()
}
