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

// Package query compiles and evaluates the flat predicate arguments
// accepted by the `find` operation: either a bare field name or a
// `KEY OP LITERAL` triple.
package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ironfroggy/nexus/record"
	"github.com/ironfroggy/nexus/token"
)

// evalTokens is the set of evaluator tokens: KEY plus every comparison
// operator. Compile does not consult it; it reads the first token of
// an argument as a KEY only.
var evalTokens = []token.Token{
	token.KEY, token.OP_EQ, token.OP_NE, token.OP_LT, token.OP_GT,
	token.OP_PRE, token.OP_POST, token.OP_IN,
}

var opTokens = []token.Token{
	token.OP_EQ, token.OP_NE, token.OP_LT, token.OP_GT,
	token.OP_PRE, token.OP_POST, token.OP_IN,
}

// Filter is a compiled find predicate: Key is always present; Op and
// Literal are unset for a bare field reference.
type Filter struct {
	Key     string
	HasOp   bool
	Op      token.Token
	Literal interface{}
}

// Compile parses one find argument, already split on whitespace by
// the caller, into a Filter. A bare field name produces a Filter with
// HasOp false.
func Compile(arg string) (Filter, error) {
	s := token.NewScanner(arg)

	tok, lit, _, err := s.Scan(token.KEY)
	if err != nil {
		return Filter{}, err
	}
	if tok != token.KEY {
		return Filter{}, &token.ParseError{Pos: s.Pos(), Snippet: arg}
	}
	key := lit

	opTok, _, _, err := s.Scan(append(opTokens, token.LINEEND)...)
	if err != nil {
		return Filter{}, err
	}
	if opTok == token.LINEEND || opTok == token.EOF {
		return Filter{Key: key}, nil
	}

	_, vlit, val, err := s.Scan(token.NUMBER, token.STRING, token.ID)
	if err != nil {
		return Filter{}, err
	}
	if val == nil {
		// An ID literal carries no decoded value; compare against its text.
		val = vlit
	}

	return Filter{Key: key, HasOp: true, Op: opTok, Literal: val}, nil
}

// Match reports whether r satisfies f. Numeric operators on a key
// absent from the record are a comparison failure, surfaced as an
// error rather than a false match.
func (f Filter) Match(r *record.Record) (bool, error) {
	if !f.HasOp {
		_, ok := r.Get(f.Key)
		return ok, nil
	}

	v, present := r.Get(f.Key)

	switch f.Op {
	case token.OP_EQ:
		return asString(v, present) == asString(f.Literal, true), nil
	case token.OP_NE:
		return asString(v, present) != asString(f.Literal, true), nil
	case token.OP_IN:
		return strings.Contains(asString(v, present), asString(f.Literal, true)), nil
	case token.OP_PRE:
		return strings.HasPrefix(asString(v, present), asString(f.Literal, true)), nil
	case token.OP_POST:
		return strings.HasSuffix(asString(v, present), asString(f.Literal, true)), nil
	case token.OP_LT, token.OP_GT:
		if !present {
			return false, fmt.Errorf("cannot compare missing key %q numerically", f.Key)
		}
		lv, err := asFloat(v)
		if err != nil {
			return false, err
		}
		rv, err := asFloat(f.Literal)
		if err != nil {
			return false, err
		}
		if f.Op == token.OP_LT {
			return lv < rv, nil
		}
		return lv > rv, nil
	}

	return false, fmt.Errorf("unsupported filter operator %v", f.Op)
}

// Match reports whether every filter matches r.
func Match(filters []Filter, r *record.Record) (bool, error) {
	for _, f := range filters {
		ok, err := f.Match(r)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func asString(v interface{}, present bool) string {
	if !present || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}

func asFloat(v interface{}) (float64, error) {
	switch val := v.(type) {
	case int64:
		return float64(val), nil
	case float64:
		return val, nil
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not numeric", val)
		}
		return f, nil
	}
	return 0, fmt.Errorf("value %v is not numeric", v)
}
