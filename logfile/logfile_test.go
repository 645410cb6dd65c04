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

package logfile

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ironfroggy/nexus/logline"
)

func TestHeaderEmission(t *testing.T) {
	Convey("creating a new log file writes the mandatory meta header", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "abc123456789.nexus")

		lf, err := Create(path, "abc123456789")
		So(err, ShouldBeNil)
		So(lf.Close(), ShouldBeNil)

		rf, err := Open(path)
		So(err, ShouldBeNil)
		defer rf.Close()

		var metas []string
		for {
			op, err := rf.Next()
			if err == EndOfRecords {
				break
			}
			So(err, ShouldBeNil)
			So(op.Op, ShouldEqual, logline.OpMeta)
			metas = append(metas, op.Meta)
		}

		So(metas, ShouldResemble, []string{
			"format=nexus",
			"encoding=utf8",
			"version=0",
			"revision=0",
			"device=abc123456789",
			"fileid=" + metas[5][len("fileid="):],
		})
	})

	Convey("reopening an existing log file does not rewrite its header", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "abc123456789.nexus")

		lf, err := Create(path, "abc123456789")
		So(err, ShouldBeNil)
		So(lf.Close(), ShouldBeNil)

		lf2, err := Create(path, "abc123456789")
		So(err, ShouldBeNil)
		So(lf2.WriteLine(logline.Operation{Op: logline.OpNew, Ts: 1, RecordId: "1", Fields: []logline.KV{{Key: "x", Value: int64(1)}}}), ShouldBeNil)
		So(lf2.Close(), ShouldBeNil)

		rf, err := Open(path)
		So(err, ShouldBeNil)
		defer rf.Close()

		var lines int
		for {
			_, err := rf.Next()
			if err == EndOfRecords {
				break
			}
			So(err, ShouldBeNil)
			lines++
		}
		So(lines, ShouldEqual, 7)
	})
}

func TestDeviceId(t *testing.T) {
	Convey("DeviceId returns a 12 hex character node segment", t, func() {
		id := DeviceId()
		So(len(id), ShouldEqual, 12)
	})
}
