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
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-laurent/pkg/teach"
	"github.com/consensys/go-laurent/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var teachCmd = &cobra.Command{
	Use:   "teach [flags] mul|inv expr [expr]",
	Short: "walk through a product or inverse computation step by step.",
	Long: `Expand, degree by degree, how the coefficients of a product or a
	formal inverse arise.  When stdout is a terminal each degree waits for a
	keypress (space or enter advances, q or escape quits); otherwise all
	steps are printed at once.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		degree := GetUint(cmd, "degree")
		//
		switch {
		case len(args) == 3 && args[0] == "mul":
			teachMul(args[1], args[2], degree)
		case len(args) == 2 && args[0] == "inv":
			teachInv(args[1], degree)
		default:
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
	},
}

// teachMul steps through the product coefficients degree by degree.
func teachMul(lhs, rhs string, degree uint) {
	var (
		a = parseSeries(lhs)
		b = parseSeries(rhs)
	)
	// Walk from the product's valuation, where the first term arises.
	start := 0
	//
	if !a.IsZero() && !b.IsZero() {
		start = a.Order().Unwrap() + b.Order().Unwrap()
	}
	//
	for i := 0; i <= int(degree); i++ {
		var buf bytes.Buffer
		//
		teach.Multiplication(&buf, a, b, start+i)
		//
		if !pause(buf.String()) {
			return
		}
	}
}

// teachInv runs the reciprocal recurrence walkthrough, then paces it.
func teachInv(expr string, degree uint) {
	var (
		s   = parseSeries(expr)
		buf bytes.Buffer
	)
	//
	if err := teach.Inversion(&buf, s, int(degree)); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	for _, line := range strings.SplitAfter(buf.String(), "\n") {
		if line == "" {
			continue
		}
		if !pause(line) {
			return
		}
	}
}

// pause prints a chunk of the walkthrough and, when stdout is a terminal,
// waits for a keypress.  It reports whether the walkthrough should continue.
func pause(chunk string) bool {
	terminal, err := termio.NewTerminal()
	if err != nil {
		// Not interactive, just stream.
		fmt.Print(chunk)
		return true
	}
	//
	defer func() {
		if err := terminal.Restore(); err != nil {
			log.Debugf("restoring terminal: %v", err)
		}
	}()
	// Raw mode needs explicit carriage returns.
	fmt.Print(strings.ReplaceAll(chunk, "\n", "\r\n"))
	//
	for {
		key, err := terminal.ReadKey()
		if err != nil {
			return false
		}
		//
		switch key {
		case termio.SPACE, termio.CARRIAGE_RETURN:
			return true
		case termio.ESC, 'q':
			fmt.Print("\r\n")
			return false
		}
	}
}

func init() {
	rootCmd.AddCommand(teachCmd)
	teachCmd.Flags().Uint("degree", 5, "highest degree to walk through")
}
