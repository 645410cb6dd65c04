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
	"github.com/spf13/cobra"
)

// createCmd establishes a record with no fields — equivalent to set
// with an empty payload — so that the record id appears in
// getRecordIds/find before any field is ever assigned to it.
var createCmd = &cobra.Command{
	Use:   "create <id>",
	Short: "Create an empty record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		d, err := open()
		if err != nil {
			return err
		}
		defer d.Exit()

		return d.Create(args[0])
	},
}
