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

	"github.com/spf13/cobra"

	"github.com/ironfroggy/nexus/query"
)

var findFields []string

var findCmd = &cobra.Command{
	Use:   "find <prefix> [filter ...]",
	Short: "List record ids (or field values) matching a prefix and filters",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		d, err := open()
		if err != nil {
			return err
		}
		defer d.Exit()

		filters := make([]query.Filter, 0, len(args)-1)
		for _, arg := range args[1:] {
			f, err := query.Compile(arg)
			if err != nil {
				return err
			}
			filters = append(filters, f)
		}

		rows, err := d.Find(args[0], filters, findFields)
		if err != nil {
			return err
		}

		for _, row := range rows {
			fmt.Println(row)
		}

		return nil
	},
}

func init() {
	findCmd.Flags().StringSliceVarP(&findFields, "fields", "f", nil, "Comma-separated fields to print per matching record")
}
