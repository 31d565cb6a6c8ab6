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

// Package teach writes step-by-step expansions of series computations, for
// walking a reader through how a product or inverse coefficient arises.  It
// consumes only the documented accessors of the core (coefficients and
// rendering); interactive pacing is left to callers.
package teach

import (
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/go-laurent/pkg/series"
)

// Multiplication writes the convolution terms contributing to the
// coefficient of z^n in a·b, followed by their sum.
func Multiplication(w io.Writer, a, b *series.Series, n int) {
	fmt.Fprintf(w, "coefficient of z^%d in (%s)·(%s)\n", n, a, b)
	//
	if a.IsZero() || b.IsZero() {
		fmt.Fprintf(w, "  one factor is the zero series, so the coefficient is 0\n")
		return
	}
	//
	var (
		lo  = a.Order().Unwrap()
		hi  = n - b.Order().Unwrap()
		sum = new(big.Rat)
	)
	//
	if lo > hi {
		fmt.Fprintf(w, "  no overlapping terms below degree %d, so the coefficient is 0\n", n)
		return
	}
	//
	for i := lo; i <= hi; i++ {
		ai := a.Coefficient(i)
		bi := b.Coefficient(n - i)
		term := new(big.Rat).Mul(ai, bi)
		sum.Add(sum, term)
		//
		fmt.Fprintf(w, "  a(%d)·b(%d) = %s · %s = %s\n",
			i, n-i, ai.RatString(), bi.RatString(), term.RatString())
	}
	//
	fmt.Fprintf(w, "  sum = %s\n", sum.RatString())
}

// Inversion writes the reciprocal recurrence for the invertible factor of a,
// step by step, up to the coefficient of z^n.  It fails with
// series.ErrDivisionByZero for the zero series.
func Inversion(w io.Writer, a *series.Series, n int) error {
	unit, err := a.InvertibleFactor()
	if err != nil {
		return err
	}
	//
	order := a.Order().Unwrap()
	// Guard against a conservative order whose leading coefficient is zero.
	if unit.Coefficient(0).Sign() == 0 {
		return series.ErrDivisionByZero
	}
	//
	fmt.Fprintf(w, "inverting %s\n", a)
	//
	if order != 0 {
		fmt.Fprintf(w, "  factor out z^%d, leaving the unit %s\n", order, unit)
	}
	//
	c0 := unit.Coefficient(0)
	//
	// r(k) computed bottom-up so each step builds on those already shown.
	r := []*big.Rat{new(big.Rat).Inv(c0)}
	//
	fmt.Fprintf(w, "  r(0) = 1/c(0) = %s\n", r[0].RatString())
	//
	for k := 1; k <= n; k++ {
		sum := new(big.Rat)
		//
		fmt.Fprintf(w, "  r(%d) = -(1/c(0)) · [", k)
		//
		for i := 0; i < k; i++ {
			if i != 0 {
				fmt.Fprintf(w, " + ")
			}
			//
			term := new(big.Rat).Mul(r[i], unit.Coefficient(k-i))
			sum.Add(sum, term)
			//
			fmt.Fprintf(w, "r(%d)·c(%d)", i, k-i)
		}
		//
		sum.Quo(sum, c0)
		sum.Neg(sum)
		r = append(r, sum)
		//
		fmt.Fprintf(w, "] = %s\n", sum.RatString())
	}
	//
	if order != 0 {
		fmt.Fprintf(w, "  reattach the valuation: multiply by z^%d\n", -order)
	}
	//
	return nil
}
