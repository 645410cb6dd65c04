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

import "fmt"

// ParseError describes a line that could not be decoded as an
// operation.
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed log line %q: %s", e.Line, e.Reason)
}

// EncodingError describes a value that Encode refuses to write.
type EncodingError struct {
	Key   string
	Value interface{}
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("cannot encode value %v for key %q: only int64 and string are supported", e.Value, e.Key)
}
