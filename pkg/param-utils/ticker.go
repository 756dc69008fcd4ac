/*
Copyright 2022 The Knative Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package paramutils

import (
	"fmt"
	"time"
)

// MinimumInterval is used by tickers not created with NewTicker
var MinimumInterval = 5 * time.Second

// Ticker drives periodic preset flushing
// Intervals shorter than the ticker minimum are raised to the minimum on Start
type Ticker struct {
	interval time.Duration
	minimum  time.Duration
	ticker   *time.Ticker
}

func NewTicker(minimum time.Duration) *Ticker {
	return &Ticker{minimum: minimum}
}

func (t *Ticker) min() time.Duration {
	if t.minimum > 0 {
		return t.minimum
	}
	return MinimumInterval
}

// Parse sets the interval from a duration string such as "30s"
// On an empty or illegal string the default interval is used
func (t *Ticker) Parse(intervalStr string, defaultInterval time.Duration) error {
	t.interval = defaultInterval
	if intervalStr == "" {
		return nil
	}

	d, err := time.ParseDuration(intervalStr)
	if err != nil {
		return fmt.Errorf("interval illegal value %s - using default value instead (err: %w)", intervalStr, err)
	}
	t.interval = d
	return nil
}

func (t *Ticker) Interval() time.Duration {
	return t.interval
}

func (t *Ticker) Start() {
	if t.interval < t.min() {
		t.interval = t.min()
	}
	if t.ticker != nil {
		t.ticker.Reset(t.interval)
		return
	}
	t.ticker = time.NewTicker(t.interval)
}

func (t *Ticker) Stop() {
	if t.ticker != nil {
		t.ticker.Stop()
	}
}

// Ch never returns nil; before Start it returns a channel that does not fire
func (t *Ticker) Ch() <-chan time.Time {
	if t.ticker == nil {
		t.ticker = time.NewTicker(t.min())
		t.ticker.Stop()
	}
	return t.ticker.C
}
