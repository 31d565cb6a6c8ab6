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
package parser

import (
	"errors"
	"math/big"
	"testing"

	"github.com/consensys/go-laurent/pkg/series"
)

func Test_Parse_01(t *testing.T) {
	checkCoefficients(t, "(geo)", 0, "1", "1", "1", "1")
}

func Test_Parse_02(t *testing.T) {
	// Constant literals.
	checkCoefficients(t, "3/4", 0, "3/4", "0")
	checkCoefficients(t, "-2", 0, "-2", "0")
}

func Test_Parse_03(t *testing.T) {
	checkCoefficients(t, "(* (geo) (geo))", 0, "1", "2", "3", "4")
}

func Test_Parse_04(t *testing.T) {
	checkCoefficients(t, "(inv (geo))", 0, "1", "-1", "0", "0")
}

func Test_Parse_05(t *testing.T) {
	checkCoefficients(t, "(+ (sin 1) 2)", 0, "2", "1", "0", "-1/6")
}

func Test_Parse_06(t *testing.T) {
	checkCoefficients(t, "(/ (geo) (geo))", 0, "1", "0", "0")
}

func Test_Parse_07(t *testing.T) {
	checkCoefficients(t, "(mono -2 3)", -2, "3", "0", "0")
}

func Test_Parse_08(t *testing.T) {
	checkCoefficients(t, "(poly 1/2 0 3)", 0, "1/2", "0", "3", "0")
}

func Test_Parse_09(t *testing.T) {
	// Negation and subtraction.
	checkCoefficients(t, "(- (geo))", 0, "-1", "-1")
	checkCoefficients(t, "(- (geo) (mono 1 1))", 0, "1", "0", "1")
}

func Test_Parse_10(t *testing.T) {
	// Addition and multiplication fold over their arguments.
	checkCoefficients(t, "(+ 1 2 3)", 0, "6")
	checkCoefficients(t, "(* (geo) (geo) (geo))", 0, "1", "3", "6")
}

func Test_Parse_11(t *testing.T) {
	// Constructor arguments default to one.
	checkCoefficients(t, "(exp)", 0, "1", "1", "1/2", "1/6")
	checkCoefficients(t, "(cosh 1)", 0, "1", "0", "1/2")
}

func Test_Parse_Errors_01(t *testing.T) {
	checkSyntaxError(t, "(foo)")
	checkSyntaxError(t, "(geo")
	checkSyntaxError(t, "(geo) x")
	checkSyntaxError(t, "(/ (geo))")
	checkSyntaxError(t, "(mono 1)")
	checkSyntaxError(t, "(poly)")
	checkSyntaxError(t, "(sin z)")
	checkSyntaxError(t, "1.5")
	checkSyntaxError(t, "")
}

func Test_Parse_Errors_02(t *testing.T) {
	// Division by the zero series surfaces the core's error.
	if _, err := Parse("(/ (geo) (- (geo) (geo)))"); !errors.Is(err, series.ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}
}

// checkCoefficients parses the input and compares coefficients from the given
// starting index against the expected rationals.
func checkCoefficients(t *testing.T, input string, start int, expected ...string) {
	t.Helper()
	//
	p, err := Parse(input)
	if err != nil {
		t.Fatal(err)
	}
	//
	for i, e := range expected {
		var rat big.Rat
		//
		if _, ok := rat.SetString(e); !ok {
			t.Fatalf("malformed expectation %q", e)
		}
		//
		if actual := p.Coefficient(start + i); actual.Cmp(&rat) != 0 {
			t.Errorf("%s: coefficient of z^%d was %s, expected %s",
				input, start+i, actual.RatString(), e)
		}
	}
}

func checkSyntaxError(t *testing.T, input string) {
	t.Helper()
	//
	var syntax *SyntaxError
	//
	if _, err := Parse(input); err == nil {
		t.Errorf("%q: expected syntax error", input)
	} else if !errors.As(err, &syntax) {
		t.Errorf("%q: expected syntax error, got %v", input, err)
	}
}
