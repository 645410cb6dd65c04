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

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ironfroggy/nexus/record"
)

var getCmd = &cobra.Command{
	Use:   "get <id> [key]",
	Short: "Print a record, or a single key of a record",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {

		d, err := open()
		if err != nil {
			return err
		}
		defer d.Exit()

		if err := d.ReadAll(); err != nil {
			return err
		}

		id := args[0]

		if len(args) == 2 {
			v, err := d.Get(id, args[1])
			if err != nil {
				return err
			}
			fmt.Println(v)
			return nil
		}

		v, err := d.Get(id, "")
		if err != nil {
			return err
		}

		r := v.(*record.Record)
		keys := make([]string, 0, len(r.Fields))
		for k := range r.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			fmt.Printf("%s = %v\n", k, r.Fields[k])
		}

		return nil
	},
}
