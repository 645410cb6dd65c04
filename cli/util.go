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

package cli

import "strings"

// parseFields splits trailing `key=value` CLI arguments into a map. A
// bare key with no `=` is shorthand for `key="true"`, since the
// on-disk format has no boolean value type.
func parseFields(args []string) map[string]interface{} {
	out := make(map[string]interface{})
	for _, arg := range args {
		key, value := splitField(arg)
		out[key] = value
	}
	return out
}

// parseIntFields is parseFields restricted to inc/dec payloads, whose
// values are always deltas.
func parseIntFields(args []string) map[string]int64 {
	out := make(map[string]int64)
	for _, arg := range args {
		key, value := splitField(arg)
		switch v := value.(type) {
		case int64:
			out[key] = v
		default:
			out[key] = 1
		}
	}
	return out
}

func splitField(arg string) (string, interface{}) {
	if i := strings.IndexByte(arg, '='); i >= 0 {
		key := arg[:i]
		val := arg[i+1:]
		if n, ok := parseIntLiteral(val); ok {
			return key, n
		}
		return key, val
	}
	return arg, "true"
}

func parseIntLiteral(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	var n int64
	neg := false
	i := 0
	if s[0] == '-' {
		neg = true
		i = 1
	}
	if i == len(s) {
		return 0, false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int64(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}
