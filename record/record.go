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

// Package record defines the in-memory record table materialized by
// replaying a nexus database's operation logs.
package record

// Record carries its id alongside its key/value map, rather than
// reusing a generic map's in-band storage for the id — the id is not a
// field a writer can delete or overwrite through the operation format.
type Record struct {
	Id     string
	Fields map[string]interface{}
}

// New returns an empty record for id.
func New(id string) *Record {
	return &Record{Id: id, Fields: make(map[string]interface{})}
}

// Get returns the value stored at key, and whether it was present.
func (r *Record) Get(key string) (interface{}, bool) {
	v, ok := r.Fields[key]
	return v, ok
}

// Set assigns value to key, overwriting any previous value.
func (r *Record) Set(key string, value interface{}) {
	r.Fields[key] = value
}

// Delete removes key from the record, if present.
func (r *Record) Delete(key string) {
	delete(r.Fields, key)
}

// Copy returns a shallow duplicate of the record.
func (r *Record) Copy() *Record {
	out := New(r.Id)
	for k, v := range r.Fields {
		out.Fields[k] = v
	}
	return out
}

// Table is the mapping from record id to Record materialized by replay.
type Table map[string]*Record

// NewTable returns an empty record table.
func NewTable() Table {
	return make(Table)
}

// GetOrCreate returns the record at id, creating an empty one first if
// it does not already exist.
func (t Table) GetOrCreate(id string) *Record {
	r, ok := t[id]
	if !ok {
		r = New(id)
		t[id] = r
	}
	return r
}

// Ids returns the set of record ids currently in the table.
func (t Table) Ids() []string {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	return ids
}
