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

package token

import "fmt"

const snippetLimit = 20

// ParseError represents a failure to match any accepted token at the
// scanner's current cursor position.
type ParseError struct {
	Pos     int
	Snippet string
}

// Error returns the string representation of the error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("no token found at %d (%q)", e.Pos, e.Snippet)
}

func snippet(s string) string {
	r := []rune(s)
	if len(r) > snippetLimit {
		return string(r[:snippetLimit]) + "..."
	}
	return string(r)
}
