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

package monitoring

import "testing"

func TestInertCounter(t *testing.T) {
	c := InertMetricFactory{}.NewCounter("test_counter", "help")
	if got := c.Value(); got != 0 {
		t.Errorf("fresh counter Value()=%v, want 0", got)
	}
	c.Inc()
	c.Add(2.5)
	if got, want := c.Value(), 3.5; got != want {
		t.Errorf("Value()=%v, want %v", got, want)
	}
}
