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

// Package logfile wraps a single append-only `.nexus` log file: header
// emission on creation, line-at-a-time append, and sequential read of
// operations in file order.
package logfile

import (
	"bufio"
	"io"
	"os"

	"github.com/ironfroggy/nexus/log"
	"github.com/ironfroggy/nexus/logline"
	"github.com/ironfroggy/nexus/util/uuid"
)

// EndOfRecords is returned by Next once every line in the file has
// been consumed.
var EndOfRecords = io.EOF

// DeviceId derives this host's device id the way a version-1 UUID
// derives its node segment: generate one seeded off the host's MAC
// address, then take its trailing 12 hex characters.
func DeviceId() string {
	id := uuid.NewV1()
	return id[len(id)-12:]
}

// NewFileId returns a fresh random file id for a log file header.
func NewFileId() string {
	return uuid.NewV4()
}

// headerLines are emitted, in order, on every freshly created log file.
func headerLines(device, fileid string) []logline.Operation {
	pairs := [][2]string{
		{"format", "nexus"},
		{"encoding", "utf8"},
		{"version", "0"},
		{"revision", "0"},
		{"device", device},
		{"fileid", fileid},
	}
	ops := make([]logline.Operation, len(pairs))
	for i, p := range pairs {
		ops[i] = logline.Operation{Op: logline.OpMeta, Meta: p[0] + "=" + p[1]}
	}
	return ops
}

// File is a single open `.nexus` log file.
type File struct {
	Path   string
	Device string

	w *bufio.Writer
	f *os.File

	r  *bufio.Reader
	rf *os.File
}

// Create opens path for append, writing the mandatory meta header
// first if the file does not already exist.
func Create(path, device string) (*File, error) {
	entry := log.WithPrefix("logfile")

	_, err := os.Stat(path)
	isNew := os.IsNotExist(err)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		entry.WithField("path", path).Error("failed to open log file for append")
		return nil, err
	}

	lf := &File{Path: path, Device: device, f: f, w: bufio.NewWriter(f)}

	if isNew {
		entry.WithField("path", path).WithField("device", device).Info("initializing new log file")
		for _, op := range headerLines(device, NewFileId()) {
			if err := lf.writeRaw(op); err != nil {
				return nil, err
			}
		}
		if err := lf.Flush(); err != nil {
			return nil, err
		}
	}

	return lf, nil
}

// Open opens path for sequential read.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &File{Path: path, rf: f, r: bufio.NewReader(f)}, nil
}

// WriteLine encodes op and appends it, unflushed, to the file.
func (lf *File) WriteLine(op logline.Operation) error {
	return lf.writeRaw(op)
}

func (lf *File) writeRaw(op logline.Operation) error {
	line, err := logline.Encode(op)
	if err != nil {
		return err
	}
	_, err = lf.w.WriteString(line + "\n")
	return err
}

// Flush forces buffered writes to the underlying file.
func (lf *File) Flush() error {
	if lf.w == nil {
		return nil
	}
	return lf.w.Flush()
}

// Close flushes and closes the file, whichever direction it was
// opened in.
func (lf *File) Close() error {
	if lf.w != nil {
		if err := lf.w.Flush(); err != nil {
			return err
		}
	}
	if lf.f != nil {
		return lf.f.Close()
	}
	if lf.rf != nil {
		return lf.rf.Close()
	}
	return nil
}

// Next reads and decodes the next line, returning EndOfRecords at the
// end of the file.
func (lf *File) Next() (logline.Operation, error) {
	line, err := lf.r.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return logline.Operation{}, EndOfRecords
		}
		return logline.Operation{}, err
	}
	return logline.Decode(line)
}
