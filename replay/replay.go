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

// Package replay applies decoded operations to an in-memory record
// table. It is deliberately free of any third-party dependency: the
// table mutation is pure, in-process arithmetic and string assignment,
// and nothing here can fail except on host integer overflow for I/D,
// which follows ordinary Go numeric semantics.
package replay

import "github.com/ironfroggy/nexus/logline"
import "github.com/ironfroggy/nexus/record"

// Apply mutates table according to op, per operation kind:
//
//	N, U  ensure the record exists, merge payload in by per-key overwrite
//	I, D  ensure the record exists, add (or subtract) payload deltas,
//	      treating an absent key as zero
//	X     with no keys, removes the record entirely; with keys, removes
//	      only those keys and keeps the (possibly now-empty) record
//	*     no effect
func Apply(op logline.Operation, table record.Table) {
	switch op.Op {
	case logline.OpNew, logline.OpUpdate:
		applyMerge(op, table)
	case logline.OpIncrement:
		applyDelta(op, table, 1)
	case logline.OpDecrement:
		applyDelta(op, table, -1)
	case logline.OpDelete:
		applyDelete(op, table)
	case logline.OpMeta:
		// no record effect
	}
}

func applyMerge(op logline.Operation, table record.Table) {
	r := table.GetOrCreate(op.RecordId)
	for _, kv := range op.Fields {
		r.Set(kv.Key, kv.Value)
	}
}

func applyDelta(op logline.Operation, table record.Table, sign int64) {
	r := table.GetOrCreate(op.RecordId)
	for _, kv := range op.Fields {
		delta, ok := kv.Value.(int64)
		if !ok {
			continue
		}
		prev, _ := r.Get(kv.Key)
		base, _ := prev.(int64)
		r.Set(kv.Key, base+sign*delta)
	}
}

func applyDelete(op logline.Operation, table record.Table) {
	if len(op.Keys) == 0 {
		delete(table, op.RecordId)
		return
	}
	r, ok := table[op.RecordId]
	if !ok {
		return
	}
	for _, key := range op.Keys {
		r.Delete(key)
	}
}
