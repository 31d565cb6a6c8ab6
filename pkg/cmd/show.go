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

	"github.com/consensys/go-laurent/pkg/parser"
	"github.com/consensys/go-laurent/pkg/series"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [flags] expr",
	Short: "render the leading terms of a series.",
	Long: `Parse an s-expression denoting a series, such as
	"(* (sin 1) (sin 1))", and render its leading terms.`,
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
		zeros := GetFlag(cmd, "zeros")
		//
		s := parseSeries(args[0])
		//
		fmt.Println(s.Render(terms, zeros))
	},
}

// parseSeries parses the given expression, exiting with a domain message on
// failure.
func parseSeries(expr string) *series.Series {
	s, err := parser.Parse(expr)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	if s.IsZero() {
		log.Debug("series classified as zero")
	} else {
		log.Debugf("series has order %d", s.Order().Unwrap())
	}
	//
	return s
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Uint("terms", series.DefaultLength, "number of terms to render")
	showCmd.Flags().Bool("zeros", false, "include terms with zero coefficient")
}
