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

// Package db presents the get/set/inc/dec/delete/find facade over a
// nexus database directory, pairing the merge reader (for reads) with
// a single device-owned writer log.
package db

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ironfroggy/nexus/log"
	"github.com/ironfroggy/nexus/logfile"
	"github.com/ironfroggy/nexus/logline"
	"github.com/ironfroggy/nexus/merge"
	"github.com/ironfroggy/nexus/query"
	"github.com/ironfroggy/nexus/record"
)

// Database is the facade over one nexus database directory.
type Database struct {
	Dir    string
	Device string

	table record.Table
	read  bool
}

// Setup opens (creating if necessary) a database directory and
// returns a Database ready for reads and writes. device, when empty,
// is derived from the host.
func Setup(dir, device string) (*Database, error) {
	entry := log.WithPrefix("db")

	if device == "" {
		device = logfile.DeviceId()
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		entry.WithField("dir", dir).Error("failed to create database directory")
		return nil, err
	}

	entry.WithField("dir", dir).WithField("device", device).Info("database opened")

	return &Database{Dir: dir, Device: device, table: record.NewTable()}, nil
}

// Exit releases the database's in-memory state. There is no shared
// file handle to close: every read and write opens and closes its own
// file within its own method.
func (d *Database) Exit() {
	d.table = nil
}

func (d *Database) writerPath() string {
	return filepath.Join(d.Dir, d.Device+".nexus")
}

func now() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// ReadAll re-reads every log file in the directory and materializes
// the record table. Get reflects this table as of the most recent
// call.
func (d *Database) ReadAll() error {
	table, err := merge.ReadAll(d.Dir, d.Device)
	if err != nil {
		return err
	}
	d.table = table
	d.read = true
	return nil
}

// Get returns the record at id from the currently materialized table.
// If key is non-empty, only that single value is returned. Callers
// are expected to have called ReadAll first; calling Get beforehand
// returns NotReadError.
func (d *Database) Get(id, key string) (interface{}, error) {
	if !d.read {
		return nil, &NotReadError{}
	}
	r, ok := d.table[id]
	if !ok {
		return nil, &LookupError{RecordId: id}
	}
	if key == "" {
		return r, nil
	}
	v, ok := r.Get(key)
	if !ok {
		return nil, &LookupError{RecordId: id, Key: key}
	}
	return v, nil
}

func (d *Database) append(op logline.Operation) error {
	lf, err := logfile.Create(d.writerPath(), d.Device)
	if err != nil {
		return err
	}
	defer lf.Close()
	return lf.WriteLine(op)
}

// Set writes an N operation assigning every field in payload.
func (d *Database) Set(id string, payload map[string]interface{}) error {
	return d.append(logline.Operation{
		Op: logline.OpNew, Ts: now(), RecordId: id, Fields: toFields(payload),
	})
}

// Create writes an empty N operation, establishing a record with no
// fields if it does not already exist.
func (d *Database) Create(id string) error {
	return d.Set(id, nil)
}

// Inc writes an I operation incrementing every field in payload by
// its given delta.
func (d *Database) Inc(id string, payload map[string]int64) error {
	fields := make([]logline.KV, 0, len(payload))
	for k, v := range payload {
		fields = append(fields, logline.KV{Key: k, Value: v})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })
	return d.append(logline.Operation{Op: logline.OpIncrement, Ts: now(), RecordId: id, Fields: fields})
}

// Dec writes a D operation decrementing every field in payload by its
// given delta.
func (d *Database) Dec(id string, payload map[string]int64) error {
	fields := make([]logline.KV, 0, len(payload))
	for k, v := range payload {
		fields = append(fields, logline.KV{Key: k, Value: v})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })
	return d.append(logline.Operation{Op: logline.OpDecrement, Ts: now(), RecordId: id, Fields: fields})
}

// Delete writes an X operation. An empty keys slice deletes the whole
// record; a non-empty one removes only those keys.
func (d *Database) Delete(id string, keys []string) error {
	return d.append(logline.Operation{Op: logline.OpDelete, Ts: now(), RecordId: id, Keys: keys})
}

// GetRecordIds re-reads all files and returns the set of ids seen.
func (d *Database) GetRecordIds() ([]string, error) {
	if err := d.ReadAll(); err != nil {
		return nil, err
	}
	ids := d.table.Ids()
	sort.Strings(ids)
	return ids, nil
}

// Find re-reads all files, then for each record id starting with
// prefix that satisfies every filter, returns either the record id
// (when fields is empty) or a tab-separated row of the requested
// field values.
func (d *Database) Find(prefix string, filters []query.Filter, fields []string) ([]string, error) {
	if err := d.ReadAll(); err != nil {
		return nil, err
	}

	ids := d.table.Ids()
	sort.Strings(ids)

	var rows []string
	for _, id := range ids {
		if !strings.HasPrefix(id, prefix) {
			continue
		}

		r := d.table[id]
		ok, err := query.Match(filters, r)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		if len(fields) == 0 {
			rows = append(rows, id)
			continue
		}

		cols := make([]string, len(fields))
		for i, f := range fields {
			v, _ := r.Get(f)
			cols[i] = toDisplay(v)
		}
		rows = append(rows, strings.Join(cols, "\t"))
	}

	return rows, nil
}

func toFields(payload map[string]interface{}) []logline.KV {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]logline.KV, len(keys))
	for i, k := range keys {
		fields[i] = logline.KV{Key: k, Value: payload[k]}
	}
	return fields
}

func toDisplay(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	}
	return ""
}
