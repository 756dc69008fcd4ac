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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	pi "knative.dev/richparam/pkg/pluginterfaces"
)

var atomicLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// CreateLogger builds a production logger at the given level ("debug", "info", ...)
// and installs it as the logger of the parameter core
// An empty or unknown level keeps the info level
func CreateLogger(logLevel string) *zap.SugaredLogger {
	SetLogLevel(logLevel)

	cfg := zap.NewProductionConfig()
	cfg.Level = atomicLevel
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewExample()
	}
	sugar := logger.Sugar()
	pi.SetLogger(sugar)
	return sugar
}

// SetLogLevel changes the level of the logger created by CreateLogger
func SetLogLevel(logLevel string) {
	if logLevel == "" {
		return
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return
	}
	atomicLevel.SetLevel(level)
}

func SyncLogger() {
	pi.Log.Sync()
}
