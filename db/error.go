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

package db

import "fmt"

// LookupError signals a get against a missing record id or key.
type LookupError struct {
	RecordId string
	Key      string
}

func (e *LookupError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("no record found with id %q", e.RecordId)
	}
	return fmt.Sprintf("record %q has no key %q", e.RecordId, e.Key)
}

// NotReadError signals a get() against a database that has never had
// readAll() invoked on it.
type NotReadError struct{}

func (e *NotReadError) Error() string {
	return "database has not been read; call ReadAll before Get"
}
