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

package logline

import (
	"strconv"
	"strings"

	"github.com/ironfroggy/nexus/token"
)

// Encode renders an operation as a single line, without its trailing
// newline. Only integer (int64 or int) and string values can be
// written; anything else
// — notably float64, which the data model otherwise allows on read —
// fails with an EncodingError, matching the write path's original,
// narrower restriction.
func Encode(op Operation) (string, error) {
	switch op.Op {
	case OpMeta:
		return "* " + op.Meta, nil
	case OpNew, OpUpdate, OpIncrement, OpDecrement:
		return encodeFields(op)
	case OpDelete:
		return encodeDelete(op)
	}
	return "", &EncodingError{Key: "", Value: op.Op}
}

func encodeFields(op Operation) (string, error) {
	var b strings.Builder
	b.WriteString(op.Op.String())
	b.WriteByte(' ')
	b.WriteString(strconv.FormatInt(op.Ts, 10))
	b.WriteByte(' ')
	b.WriteString(op.RecordId)

	for _, kv := range op.Fields {
		b.WriteByte(' ')
		b.WriteString(kv.Key)
		b.WriteByte('=')
		lit, err := encodeValue(kv.Value)
		if err != nil {
			return "", &EncodingError{Key: kv.Key, Value: kv.Value}
		}
		b.WriteString(lit)
	}

	return b.String(), nil
}

func encodeDelete(op Operation) (string, error) {
	var b strings.Builder
	b.WriteString(op.Op.String())
	b.WriteByte(' ')
	b.WriteString(strconv.FormatInt(op.Ts, 10))
	b.WriteByte(' ')
	b.WriteString(op.RecordId)

	for _, key := range op.Keys {
		b.WriteByte(' ')
		b.WriteString(key)
	}

	return b.String(), nil
}

func encodeValue(v interface{}) (string, error) {
	switch val := v.(type) {
	case int64:
		return strconv.FormatInt(val, 10), nil
	case int:
		return strconv.FormatInt(int64(val), 10), nil
	case string:
		return token.EncodeString(val), nil
	}
	return "", &EncodingError{Value: v}
}

// Decode parses a single line, without its trailing newline, into an
// Operation. Blank lines decode to the zero Operation with a nil error
// and an Op of 0, so callers can skip them.
func Decode(line string) (Operation, error) {
	trimmed := strings.TrimRight(line, "\r\n")
	if trimmed == "" {
		return Operation{}, nil
	}

	if trimmed[0] == byte(OpMeta) {
		return decodeMeta(trimmed)
	}

	return decodeOp(trimmed)
}

// decodeMeta accepts both the modern `* key=value` form and the legacy
// `* <ts> key=value` form; the legacy timestamp, when present, is
// discarded — meta lines always sort as if timestamped zero.
func decodeMeta(line string) (Operation, error) {
	rest := strings.TrimSpace(line[1:])
	fields := strings.Fields(rest)

	switch len(fields) {
	case 0:
		return Operation{}, &ParseError{Line: line, Reason: "empty meta line"}
	case 1:
		return Operation{Op: OpMeta, Meta: fields[0]}, nil
	default:
		if _, err := strconv.ParseInt(fields[0], 10, 64); err == nil {
			return Operation{Op: OpMeta, Meta: strings.Join(fields[1:], " ")}, nil
		}
		return Operation{Op: OpMeta, Meta: strings.Join(fields, " ")}, nil
	}
}

// decodeOp splits off exactly three leading whitespace-delimited
// fields — op, ts, recordId, none of which can contain whitespace —
// and leaves the remainder untouched, so a quoted string value
// containing spaces is not shredded the way a blanket strings.Fields
// over the whole line would shred it.
func decodeOp(line string) (Operation, error) {
	head, rest, ok := cutField(line)
	if !ok {
		return Operation{}, &ParseError{Line: line, Reason: "missing op code"}
	}
	code := Op(head[0])

	tsField, rest, ok := cutField(rest)
	if !ok {
		return Operation{}, &ParseError{Line: line, Reason: "missing timestamp"}
	}
	ts, err := strconv.ParseInt(tsField, 10, 64)
	if err != nil {
		return Operation{}, &ParseError{Line: line, Reason: "bad timestamp"}
	}

	recordId, payload, ok := cutField(rest)
	if !ok {
		return Operation{}, &ParseError{Line: line, Reason: "missing record id"}
	}

	op := Operation{Op: code, Ts: ts, RecordId: recordId}

	switch code {
	case OpNew, OpUpdate, OpIncrement, OpDecrement:
		kvs, err := decodeFields(payload)
		if err != nil {
			return Operation{}, err
		}
		op.Fields = kvs
	case OpDelete:
		if keys := strings.Fields(payload); len(keys) > 0 {
			op.Keys = keys
		}
	case OpMove:
		return Operation{}, &ParseError{Line: line, Reason: "M operation is reserved"}
	default:
		return Operation{}, &ParseError{Line: line, Reason: "unknown op code"}
	}

	return op, nil
}

// cutField trims leading whitespace from s, then splits off the next
// run of non-whitespace characters, returning it along with whatever
// (whitespace-trimmed) remains. ok is false if s had no field to cut.
func cutField(s string) (field, rest string, ok bool) {
	s = strings.TrimLeft(s, " \t")
	if s == "" {
		return "", "", false
	}
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, "", true
	}
	return s[:i], strings.TrimLeft(s[i:], " \t"), true
}

// decodeFields scans a sequence of `key=value` pairs using the shared
// tokenizer, preserving the order they appear in.
func decodeFields(payload string) ([]KV, error) {
	if strings.TrimSpace(payload) == "" {
		return nil, nil
	}

	s := token.NewScanner(payload)
	var kvs []KV

	for {
		tok, lit, _, err := s.Scan(token.KEY, token.LINEEND)
		if err != nil {
			return nil, &ParseError{Line: payload, Reason: err.Error()}
		}
		if tok == token.LINEEND || tok == token.EOF {
			break
		}

		key := lit

		eqTok, _, _, err := s.Scan(token.OP_EQ)
		if err != nil || eqTok != token.OP_EQ {
			return nil, &ParseError{Line: payload, Reason: "expected = after key " + key}
		}

		valTok, _, val, err := s.Scan(token.NUMBER, token.STRING)
		if err != nil {
			return nil, &ParseError{Line: payload, Reason: "expected value after " + key + "="}
		}
		_ = valTok

		kvs = append(kvs, KV{Key: key, Value: val})
	}

	return kvs, nil
}
