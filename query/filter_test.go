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

package query

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ironfroggy/nexus/record"
)

func TestBareFieldFilter(t *testing.T) {
	Convey("a bare field name matches when the key is present", t, func() {
		f, err := Compile("name")
		So(err, ShouldBeNil)
		So(f.HasOp, ShouldBeFalse)

		r := record.New("1")
		r.Set("name", "Ted")

		ok, err := f.Match(r)
		So(err, ShouldBeNil)
		So(ok, ShouldBeTrue)
	})
}

func TestEqualityFilter(t *testing.T) {
	Convey(`name="Ted" matches a record whose name is "Ted"`, t, func() {
		f, err := Compile(`name="Ted"`)
		So(err, ShouldBeNil)

		r := record.New("1")
		r.Set("name", "Ted")

		ok, err := f.Match(r)
		So(err, ShouldBeNil)
		So(ok, ShouldBeTrue)
	})
}

func TestNumericFilterMissingKeyFails(t *testing.T) {
	Convey("a numeric comparison against a missing key is an error", t, func() {
		f, err := Compile("age>10")
		So(err, ShouldBeNil)

		r := record.New("1")

		_, err = f.Match(r)
		So(err, ShouldNotBeNil)
	})
}

func TestTextualFilterMissingKeyIsEmptyString(t *testing.T) {
	Convey("a textual comparison against a missing key compares as empty", t, func() {
		f, err := Compile(`name=""`)
		So(err, ShouldBeNil)

		r := record.New("1")

		ok, err := f.Match(r)
		So(err, ShouldBeNil)
		So(ok, ShouldBeTrue)
	})
}

func TestSubstringAndPrefix(t *testing.T) {
	r := record.New("1")
	r.Set("name", "Hello, World!")

	Convey("~ matches substrings", t, func() {
		f, _ := Compile(`name~"World"`)
		ok, err := f.Match(r)
		So(err, ShouldBeNil)
		So(ok, ShouldBeTrue)
	})

	Convey("~= matches prefixes", t, func() {
		f, _ := Compile(`name~="Hello"`)
		ok, err := f.Match(r)
		So(err, ShouldBeNil)
		So(ok, ShouldBeTrue)
	})
}
