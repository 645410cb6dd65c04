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

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ironfroggy/nexus/query"
	"github.com/ironfroggy/nexus/record"
)

func TestSetThenIncrement(t *testing.T) {
	Convey("S3: set then inc converges to the summed value", t, func() {
		dir := t.TempDir()
		d, err := Setup(dir, "dev1")
		So(err, ShouldBeNil)

		So(d.Set("42", map[string]interface{}{"x": int64(42)}), ShouldBeNil)
		So(d.Inc("42", map[string]int64{"x": 1}), ShouldBeNil)
		So(d.ReadAll(), ShouldBeNil)

		v, err := d.Get("42", "x")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, int64(43))
	})
}

func TestSetThenDecrementNewKey(t *testing.T) {
	Convey("S4: dec on a missing key treats the prior value as zero", t, func() {
		dir := t.TempDir()
		d, err := Setup(dir, "dev1")
		So(err, ShouldBeNil)

		So(d.Set("42", map[string]interface{}{"x": int64(42)}), ShouldBeNil)
		So(d.Dec("42", map[string]int64{"z": 1}), ShouldBeNil)
		So(d.ReadAll(), ShouldBeNil)

		x, err := d.Get("42", "x")
		So(err, ShouldBeNil)
		So(x, ShouldEqual, int64(42))

		z, err := d.Get("42", "z")
		So(err, ShouldBeNil)
		So(z, ShouldEqual, int64(-1))
	})
}

func TestDeleteKeyKeepsRecord(t *testing.T) {
	Convey("S5: deleting a key keeps the record", t, func() {
		dir := t.TempDir()
		d, err := Setup(dir, "dev1")
		So(err, ShouldBeNil)

		So(d.Set("42", map[string]interface{}{"x": int64(42), "z": int64(10)}), ShouldBeNil)
		So(d.Delete("42", []string{"x"}), ShouldBeNil)
		So(d.ReadAll(), ShouldBeNil)

		rec, err := d.Get("42", "")
		So(err, ShouldBeNil)
		r := rec.(*record.Record)

		_, ok := r.Get("x")
		So(ok, ShouldBeFalse)

		z, ok := r.Get("z")
		So(ok, ShouldBeTrue)
		So(z, ShouldEqual, int64(10))
	})
}

func TestGetBeforeReadAll(t *testing.T) {
	Convey("Get before ReadAll returns NotReadError", t, func() {
		dir := t.TempDir()
		d, err := Setup(dir, "dev1")
		So(err, ShouldBeNil)

		_, err = d.Get("42", "")
		So(err, ShouldHaveSameTypeAs, &NotReadError{})
	})
}

func TestGetRecordIdsListsEveryRecordSorted(t *testing.T) {
	Convey("GetRecordIds returns every record id in sorted order", t, func() {
		dir := t.TempDir()
		d, err := Setup(dir, "dev1")
		So(err, ShouldBeNil)

		So(d.Set("user.1", map[string]interface{}{"name": "Ted"}), ShouldBeNil)
		So(d.Set("user.2", map[string]interface{}{"name": "Sam"}), ShouldBeNil)
		So(d.Set("order.1", map[string]interface{}{"name": "Ted"}), ShouldBeNil)

		rows, err := d.GetRecordIds()
		So(err, ShouldBeNil)
		So(rows, ShouldResemble, []string{"order.1", "user.1", "user.2"})
	})
}

func TestFindWithoutFieldsReturnsRecordIds(t *testing.T) {
	Convey("find with no --fields returns matching record ids, not values", t, func() {
		dir := t.TempDir()
		d, err := Setup(dir, "dev1")
		So(err, ShouldBeNil)

		So(d.Set("user.1", map[string]interface{}{"name": "Ted"}), ShouldBeNil)
		So(d.Set("user.2", map[string]interface{}{"name": "Sam"}), ShouldBeNil)
		So(d.Set("order.1", map[string]interface{}{"name": "Ted"}), ShouldBeNil)

		f, err := query.Compile("name=Ted")
		So(err, ShouldBeNil)

		rows, err := d.Find("user.", []query.Filter{f}, nil)
		So(err, ShouldBeNil)
		So(rows, ShouldResemble, []string{"user.1"})
	})
}

func TestFindWithFieldsReturnsValueRows(t *testing.T) {
	Convey("find with --fields returns tab-separated field values per matching record", t, func() {
		dir := t.TempDir()
		d, err := Setup(dir, "dev1")
		So(err, ShouldBeNil)

		So(d.Set("user.1", map[string]interface{}{"name": "Ted", "age": int64(41)}), ShouldBeNil)
		So(d.Set("user.2", map[string]interface{}{"name": "Sam", "age": int64(30)}), ShouldBeNil)
		So(d.Set("order.1", map[string]interface{}{"name": "Ted", "age": int64(41)}), ShouldBeNil)

		f, err := query.Compile("age>35")
		So(err, ShouldBeNil)

		rows, err := d.Find("user.", []query.Filter{f}, []string{"name", "age"})
		So(err, ShouldBeNil)
		So(rows, ShouldResemble, []string{"Ted\t41"})
	})
}
