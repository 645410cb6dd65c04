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

package log

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultHook mirrors log entries to a second writer, independent of
// the primary logger's SetOutput destination — used for the optional
// --log-file sink alongside stdout/stderr.
type DefaultHook struct {
	w      io.Writer
	levels []logrus.Level
	f      logrus.Formatter
}

func (h *DefaultHook) Levels() []logrus.Level {
	return h.levels
}

func (h *DefaultHook) Fire(entry *logrus.Entry) error {
	bit, err := h.f.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.w.Write(bit)
	return err
}

// SetLevel restricts the hook to firing at v and more severe levels.
// An unrecognized level leaves the hook silent.
func (h *DefaultHook) SetLevel(v string) {
	lvl, err := logrus.ParseLevel(v)
	if err != nil {
		return
	}
	h.levels = nil
	for _, l := range logrus.AllLevels {
		if l <= lvl {
			h.levels = append(h.levels, l)
		}
	}
}

// SetOutput sets the hook's output the same way the primary logger's is.
func (h *DefaultHook) SetOutput(v string) {
	switch v {
	case "none":
		h.w = ioutil.Discard
	case "stdout":
		h.w = os.Stdout
	case "stderr":
		h.w = os.Stderr
	}
}

// SetFile directs the hook's output at a file, appending to it if it
// already exists and creating it if it does not.
func (h *DefaultHook) SetFile(path string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	h.w = f
	return nil
}

// SetFormat sets the hook's output format.
func (h *DefaultHook) SetFormat(v string) {
	switch v {
	case "json":
		h.f = &JSONFormatter{}
	case "text":
		h.f = &TextFormatter{}
	}
}
