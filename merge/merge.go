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

// Package merge implements the N-way timestamp-ordered merge read
// across every log file in a database directory.
package merge

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/ironfroggy/nexus/log"
	"github.com/ironfroggy/nexus/logfile"
	"github.com/ironfroggy/nexus/logline"
	"github.com/ironfroggy/nexus/record"
	"github.com/ironfroggy/nexus/replay"
)

// cursor tracks one open log file's next unconsumed operation.
type cursor struct {
	lf   *logfile.File
	next logline.Operation
	done bool
}

func (c *cursor) advance() error {
	op, err := c.lf.Next()
	if err == logfile.EndOfRecords {
		c.done = true
		return nil
	}
	if err != nil {
		return err
	}
	c.next = op
	return nil
}

// ReadAll opens every log file in dir, merges their operations by
// timestamp (ties broken by file order, then intra-file order, per
// the placement of device first below), and returns the resulting
// record table.
//
// This performs a linear scan over the open cursors on every step,
// rather than a min-heap, matching the straightforward approach of
// the original implementation; acceptable because a nexus database
// directory holds one file per device and K is expected to stay
// small.
func ReadAll(dir, device string) (record.Table, error) {
	entry := log.WithPrefix("merge")

	paths, err := orderedPaths(dir, device)
	if err != nil {
		return nil, err
	}

	cursors := make([]*cursor, 0, len(paths))
	for _, p := range paths {
		lf, err := logfile.Open(p)
		if err != nil {
			entry.WithField("path", p).Error("failed to open log file for read")
			return nil, err
		}
		defer lf.Close()

		c := &cursor{lf: lf}
		if err := c.advance(); err != nil {
			return nil, err
		}
		cursors = append(cursors, c)
	}

	table := record.NewTable()

	for {
		idx := -1
		for i, c := range cursors {
			if c.done {
				continue
			}
			if idx == -1 || c.next.Ts < cursors[idx].next.Ts {
				idx = i
			}
		}
		if idx == -1 {
			break
		}

		replay.Apply(cursors[idx].next, table)

		if err := cursors[idx].advance(); err != nil {
			return nil, err
		}
	}

	return table, nil
}

// orderedPaths returns every regular file in dir, with the
// device-owned file first and the rest in lexical order. Every
// regular file is treated as a log, not just those ending in .nexus —
// this mirrors the original implementation's directory scan, which
// made no extension check of its own.
func orderedPaths(dir, device string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var rest []string
	var owned string

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		full := filepath.Join(dir, name)
		if name == device+".nexus" {
			owned = full
			continue
		}
		rest = append(rest, full)
	}

	sort.Strings(rest)

	if owned != "" {
		return append([]string{owned}, rest...), nil
	}
	return rest, nil
}
