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

// Package cli implements the nexus command-line front-end: one cobra
// subcommand per operation, with a shared database directory flag and
// trailing `key=value` arguments for mutations.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ironfroggy/nexus/cnf"
	"github.com/ironfroggy/nexus/log"
)

var mainCmd = &cobra.Command{
	Use:   "nexus",
	Short: "An embedded, append-only, multi-writer record store",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetLevel(cnf.Settings.Logging.Level)
		log.SetOutput(cnf.Settings.Logging.Output)
		log.SetFormat(cnf.Settings.Logging.Format)

		if cnf.Settings.Logging.File != "" {
			hook := &log.DefaultHook{}
			hook.SetLevel(cnf.Settings.Logging.Level)
			hook.SetFormat(cnf.Settings.Logging.Format)
			if err := hook.SetFile(cnf.Settings.Logging.File); err != nil {
				log.WithField("path", cnf.Settings.Logging.File).Error("failed to open log file")
			} else {
				log.Hook(hook)
			}
		}
	},
}

func init() {

	mainCmd.AddCommand(
		getCmd,
		setCmd,
		incCmd,
		decCmd,
		deleteCmd,
		createCmd,
		findCmd,
		versionCmd,
	)

	mainCmd.PersistentFlags().StringVarP(&cnf.Settings.DB.Dir, "dir", "d", ".", "Directory holding the database's *.nexus log files")
	mainCmd.PersistentFlags().StringVarP(&cnf.Settings.DB.Device, "device", "", "", "Device id override; empty derives one from this host")
	mainCmd.PersistentFlags().StringVarP(&cnf.Settings.Logging.Level, "log", "l", "info", "Logging level: debug, info, warn, error")
	mainCmd.PersistentFlags().StringVarP(&cnf.Settings.Logging.Output, "log-output", "", "stderr", "Logging output: stdout, stderr, none")
	mainCmd.PersistentFlags().StringVarP(&cnf.Settings.Logging.Format, "log-format", "", "text", "Logging format: text, json")
	mainCmd.PersistentFlags().StringVarP(&cnf.Settings.Logging.File, "log-file", "", "", "Optional path to additionally mirror logs to")

}

// Run runs the cli app.
func Run() {
	if err := mainCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
