// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var coeffCmd = &cobra.Command{
	Use:   "coeff [flags] expr n",
	Short: "print a single exact coefficient of a series.",
	Long: `Parse an s-expression denoting a series and print the exact
	rational coefficient of z^n, where n may be negative.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		n, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Printf("invalid index %q\n", args[1])
			os.Exit(2)
		}
		//
		s := parseSeries(args[0])
		//
		fmt.Println(s.Coefficient(n).RatString())
	},
}

func init() {
	rootCmd.AddCommand(coeffCmd)
}
