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

	"github.com/consensys/go-laurent/pkg/series"
	"github.com/consensys/go-laurent/pkg/series/modular"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var reduceCmd = &cobra.Command{
	Use:   "reduce [flags] expr",
	Short: "reduce series coefficients into the BLS12-377 scalar field.",
	Long: `Parse an s-expression denoting a series and print a window of its
	coefficients reduced into the BLS12-377 scalar field, mapping each
	rational p/q to p·q⁻¹ modulo the field order.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		terms := GetUint(cmd, "terms")
		from := GetInt(cmd, "from")
		//
		s := parseSeries(args[0])
		// Unless a window start was given, begin at the valuation.
		if !cmd.Flags().Changed("from") {
			from = s.Order().UnwrapOr(0)
		}
		//
		elements, err := modular.Reduce(s, from, terms)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		for i, elem := range elements {
			fmt.Printf("z^%d: %s\n", from+i, elem.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(reduceCmd)
	reduceCmd.Flags().Uint("terms", series.DefaultLength, "number of coefficients to reduce")
	reduceCmd.Flags().Int("from", 0, "index at which the window starts")
}
