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

package pluginterfaces

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Any logger of this interface can be used by the parameter core and all filter plugs
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Sync() error
}

// The logger for the parameter core and all filter plugs
var Log Logger

// LogOnce reports each distinct message a single time per level
// Used where the same problem repeats every time a saved script is applied
var LogOnce Logger

func init() {
	logger, _ := zap.NewDevelopment()
	Log = logger.Sugar()

	LogOnce = newLogOnce()
}

// SetLogger replaces Log and forgets the messages LogOnce already reported
func SetLogger(logger Logger) {
	Log = logger
	LogOnce = newLogOnce()
}

type logOnce struct {
	known []map[string]uint
	mutex sync.Mutex
}

func newLogOnce() *logOnce {
	lo := new(logOnce)
	lo.known = make([]map[string]uint, 4)
	for level := 0; level < 4; level++ {
		lo.known[level] = make(map[string]uint)
	}
	return lo
}

func (lo *logOnce) Debugf(format string, args ...interface{}) {
	str := fmt.Sprintf(format, args...)
	if lo.once(0, str) {
		Log.Debugf(str)
	}
}

func (lo *logOnce) Infof(format string, args ...interface{}) {
	str := fmt.Sprintf(format, args...)
	if lo.once(1, str) {
		Log.Infof(str)
	}
}

func (lo *logOnce) Warnf(format string, args ...interface{}) {
	str := fmt.Sprintf(format, args...)
	if lo.once(2, str) {
		Log.Warnf(str)
	}
}

func (lo *logOnce) Errorf(format string, args ...interface{}) {
	str := fmt.Sprintf(format, args...)
	if lo.once(3, str) {
		Log.Errorf(str)
	}
}

func (lo *logOnce) Sync() error {
	return Log.Sync()
}

// Count returns how many times str was reported at level, including suppressed repeats
func (lo *logOnce) Count(level int, str string) uint {
	lo.mutex.Lock()
	defer lo.mutex.Unlock()
	return lo.known[level][str]
}

func (lo *logOnce) once(level int, str string) (firstTime bool) {
	lo.mutex.Lock()
	defer lo.mutex.Unlock()
	if _, ok := lo.known[level][str]; !ok {
		lo.known[level][str] = 0
		firstTime = true
	}
	lo.known[level][str]++
	return
}
