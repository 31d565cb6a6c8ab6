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

// Package series implements formal Laurent power series with exact rational
// coefficients.  A series Σ c_n·z^n is represented by its coefficient
// function n -> c_n together with its order (valuation) at zero.  All
// arithmetic is lazy: derived series close over their operands and evaluate
// coefficients on demand, so an infinite object is never materialised.
package series

import (
	"math/big"

	"github.com/consensys/go-laurent/pkg/util"
)

// DefaultLookahead determines how many leading indices are sampled when
// inferring the order of a freshly constructed series.  A series whose first
// nonzero coefficient sits at or beyond this window is classified as the zero
// series unless the caller supplies an explicit order.  This is a known
// approximation carried over deliberately; widening the window would change
// observable behaviour.
const DefaultLookahead uint = 11

// DefaultLength determines how many terms are rendered by String.
const DefaultLength uint = 5

// Formula defines the coefficients of a series, mapping an index n (which may
// be negative) to the coefficient of z^n.  Formulae must be pure and must not
// retain or mutate the values they return.
type Formula func(n int) *big.Rat

// Series represents a formal Laurent power series with rational coefficients.
// A Series is immutable once constructed, except for the number of displayed
// terms which has no algebraic significance.
type Series struct {
	// Coefficient formula n -> c_n.
	formula Formula
	// Order (valuation) at zero.  The empty option denotes the zero series,
	// which has no well-defined order.
	order util.Option[int]
	// Number of terms rendered by String.
	length uint
}

// New constructs a series from the given coefficient formula, inferring its
// order by forward sampling from index zero.
func New(formula Formula) *Series {
	return NewSeries(formula, util.Some(0), DefaultLookahead)
}

// NewWithOrder constructs a series whose order is asserted by the caller.  A
// negative order is trusted verbatim, since sampling only probes non-negative
// indices.  A non-negative order is treated as a lower bound and refined by
// sampling, exactly as for New.
func NewWithOrder(formula Formula, order int) *Series {
	return NewSeries(formula, util.Some(order), DefaultLookahead)
}

// NewSeries is the general constructor, taking an order hint and an explicit
// sampling window.  Unless the hint is a negative integer, the order is
// determined by sampling indices 0 .. lookahead-1 of the hint-clamped
// coefficient function; if every sample is zero the series is classified as
// the zero series.
func NewSeries(formula Formula, hint util.Option[int], lookahead uint) *Series {
	p := &Series{formula, hint, DefaultLength}
	//
	if hint.IsEmpty() || hint.Unwrap() >= 0 {
		p.order = p.scanOrder(lookahead)
	}
	//
	return p
}

// Zero returns the additive identity, whose every coefficient is zero.
func Zero() *Series {
	return &Series{
		formula: func(int) *big.Rat { return new(big.Rat) },
		order:   util.None[int](),
		length:  DefaultLength,
	}
}

// derive constructs a series whose order is trusted verbatim.  Used
// internally for the results of arithmetic, where the order is already
// determined by the operands.
func derive(formula Formula, order util.Option[int]) *Series {
	return &Series{formula, order, DefaultLength}
}

// scanOrder samples leading coefficients to locate the first nonzero index.
func (p *Series) scanOrder(lookahead uint) util.Option[int] {
	for i := 0; i < int(lookahead); i++ {
		if p.Coefficient(i).Sign() != 0 {
			return util.Some(i)
		}
	}
	//
	return util.None[int]()
}

// Coefficient returns the coefficient of z^n.  This is total over all
// integers: indices below the order (or every index, for the zero series)
// yield exact zero without consulting the formula.
func (p *Series) Coefficient(n int) *big.Rat {
	if p.order.IsEmpty() || n < p.order.Unwrap() {
		return new(big.Rat)
	}
	// Copy the formula's result, so callers can never alias its internals.
	return new(big.Rat).Set(p.formula(n))
}

// Order returns the order (valuation) of this series, or the empty option for
// the zero series.
func (p *Series) Order() util.Option[int] {
	return p.order
}

// IsZero indicates whether this series is (classified as) the zero series.
func (p *Series) IsZero() bool {
	return p.order.IsEmpty()
}

// Length returns the number of terms rendered by String.
func (p *Series) Length() uint {
	return p.length
}

// SetLength sets the number of terms rendered by String.  This has no
// algebraic effect.
func (p *Series) SetLength(n uint) {
	p.length = n
}
