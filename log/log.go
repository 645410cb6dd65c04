// Copyright © 2016 Abcum Ltd
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

// Package log is the process-wide logger every nexus subsystem logs
// through: level, output and format are configured once by the CLI
// (see cli.mainCmd's PersistentPreRun), and every other package only
// ever calls WithPrefix/WithField to build an entry.
package log

import (
	"io/ioutil"
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Hook adds an additional output sink to the logger instance, beyond
// its primary SetOutput destination.
func Hook(hook logrus.Hook) {
	log.AddHook(hook)
}

// SetLevel sets the logging level of the logger instance. An
// unrecognized level leaves the current level unchanged.
func SetLevel(v string) {
	if lvl, err := logrus.ParseLevel(v); err == nil {
		log.SetLevel(lvl)
	}
}

// SetOutput sets the logging output of the logger instance.
func SetOutput(v string) {
	switch v {
	case "none":
		log.SetOutput(ioutil.Discard)
	case "stdout":
		log.SetOutput(os.Stdout)
	case "stderr":
		log.SetOutput(os.Stderr)
	}
}

// SetFormat sets the logging format of the logger instance.
func SetFormat(v string) {
	switch v {
	case "json":
		log.SetFormatter(&JSONFormatter{})
	case "text":
		log.SetFormatter(&TextFormatter{})
	}
}

// Error logs a message at level Error on the standard logger.
func Error(v ...interface{}) {
	log.Error(v...)
}

// WithPrefix prepares a log entry tagged with a subsystem name.
func WithPrefix(value interface{}) *logrus.Entry {
	return log.WithField("prefix", value)
}

// WithField prepares a log entry with a single data field.
func WithField(key string, value interface{}) *logrus.Entry {
	return log.WithField(key, value)
}
