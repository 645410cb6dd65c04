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

// Package uuid wraps the two satori/go.uuid constructors nexus
// actually needs: a version-1 UUID to derive a device id from, and a
// version-4 UUID for a log file's random fileid.
package uuid

import (
	"github.com/satori/go.uuid"
)

// NewV1 returns a new UUID (Version 1) based on current timestamp and MAC address.
func NewV1() string {
	return uuid.NewV1().String()
}

// NewV4 returns a new UUID (Version 4) using 16 random bytes or panics.
func NewV4() string {
	return uuid.NewV4().String()
}
