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

package merge

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestSingleFileRead(t *testing.T) {
	Convey("S1: a single N line materializes its field", t, func() {
		dir := t.TempDir()
		writeFile(t, dir, "a.nexus", `N 0 1 foo="Hello, World!"`+"\n")

		table, err := ReadAll(dir, "nodevice")
		So(err, ShouldBeNil)

		v, ok := table["1"].Get("foo")
		So(ok, ShouldBeTrue)
		So(v, ShouldEqual, "Hello, World!")
	})
}

func TestCrossFileMergeOrdering(t *testing.T) {
	Convey("S2: the later timestamp across files wins", t, func() {
		dir := t.TempDir()
		writeFile(t, dir, "a.nexus",
			`N 100 1 foo="Hello, World!"`+"\n"+
				`N 200 1 foo="Hey, World!"`+"\n")
		writeFile(t, dir, "b.nexus",
			`N 150 1 foo="Goodbye, World!"`+"\n")

		table, err := ReadAll(dir, "nodevice")
		So(err, ShouldBeNil)

		v, _ := table["1"].Get("foo")
		So(v, ShouldEqual, "Hey, World!")
	})
}

func TestTieBreakByFileOrder(t *testing.T) {
	Convey("equal timestamps are broken by the device-owned file first", t, func() {
		dir := t.TempDir()
		writeFile(t, dir, "owned.nexus", `N 100 1 x="from-owned"`+"\n")
		writeFile(t, dir, "other.nexus", `N 100 1 x="from-other"`+"\n")

		table, err := ReadAll(dir, "owned")
		So(err, ShouldBeNil)

		v, _ := table["1"].Get("x")
		So(v, ShouldEqual, "from-other")
	})
}

func TestDisjointTimestampsConvergeRegardlessOfFileOrder(t *testing.T) {
	Convey("disjoint timestamps converge the same regardless of file order", t, func() {
		dirA := t.TempDir()
		writeFile(t, dirA, "a.nexus", `N 1 r foo=1`+"\n")
		writeFile(t, dirA, "b.nexus", `N 2 r bar=2`+"\n")

		dirB := t.TempDir()
		writeFile(t, dirB, "z.nexus", `N 2 r bar=2`+"\n")
		writeFile(t, dirB, "y.nexus", `N 1 r foo=1`+"\n")

		tableA, err := ReadAll(dirA, "nodevice")
		So(err, ShouldBeNil)
		tableB, err := ReadAll(dirB, "nodevice")
		So(err, ShouldBeNil)

		fooA, _ := tableA["r"].Get("foo")
		fooB, _ := tableB["r"].Get("foo")
		barA, _ := tableA["r"].Get("bar")
		barB, _ := tableB["r"].Get("bar")

		So(fooA, ShouldEqual, fooB)
		So(barA, ShouldEqual, barB)
	})
}
