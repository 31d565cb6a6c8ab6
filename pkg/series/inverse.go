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
package series

import (
	"errors"
	"math/big"

	"github.com/consensys/go-laurent/pkg/util"
)

// ErrDivisionByZero is returned when inverting or dividing by the zero
// series.
var ErrDivisionByZero = errors.New("division by zero series")

// shift returns the monomial z^degree, i.e. the series whose only nonzero
// coefficient is 1 at the given degree.
func shift(degree int) *Series {
	return derive(func(n int) *big.Rat {
		if n == degree {
			return big.NewRat(1, 1)
		}
		//
		return new(big.Rat)
	}, util.Some(degree))
}

// InvertibleFactor returns this series with the leading power of z factored
// out: a series of order exactly zero whose constant term is nonzero.  This
// is the unit part of the preparation factorisation p = unit · z^order.
func (p *Series) InvertibleFactor() (*Series, error) {
	if p.order.IsEmpty() {
		return nil, ErrDivisionByZero
	}
	//
	return p.Mul(shift(-p.order.Unwrap())), nil
}

// reciprocal computes the nth coefficient of the reciprocal of a unit (a
// series of order zero with nonzero constant term), by the recurrence
//
//	r(0) = 1/c(0)
//	r(n) = -(1/c(0)) · Σ_{i<n} r(i)·c(n-i)
//
// which is the unique order-by-order solution of unit × reciprocal = 1.  The
// recursion is deliberately naive: computing r(n) re-derives r(0..n-1) from
// the top, costing time exponential in n.  This is the semantic reference;
// InverseMemoized provides the bottom-up variant with identical outputs.
func reciprocal(unit *Series, n int) *big.Rat {
	c0 := unit.Coefficient(0)
	//
	if n == 0 {
		return new(big.Rat).Inv(c0)
	}
	//
	sum := new(big.Rat)
	//
	for i := 0; i < n; i++ {
		term := new(big.Rat).Mul(reciprocal(unit, i), unit.Coefficient(n-i))
		sum.Add(sum, term)
	}
	//
	sum.Quo(sum, c0)
	//
	return sum.Neg(sum)
}

// Inverse returns the formal multiplicative inverse of this series, or
// ErrDivisionByZero for the zero series.  The inverse is composed from two
// pure steps: the reciprocal of the invertible factor, re-scaled by z^-order
// to reattach the valuation.
func (p *Series) Inverse() (*Series, error) {
	unit, err := p.InvertibleFactor()
	if err != nil {
		return nil, err
	}
	// A derived order is a conservative bound, so the constant term of the
	// unit can still turn out zero (e.g. when the operand arose from a sum
	// whose leading terms cancelled).
	if unit.Coefficient(0).Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	//
	recip := derive(func(n int) *big.Rat {
		return reciprocal(unit, n)
	}, util.Some(0))
	//
	return recip.Mul(shift(-p.order.Unwrap())), nil
}

// InverseMemoized returns a series with coefficients identical to those of
// Inverse, computed bottom-up with the reciprocal coefficients cached.  This
// tames the exponential call count of the reference recursion and is the
// variant to use when large indices will be queried.  Not safe for concurrent
// use.
func (p *Series) InverseMemoized() (*Series, error) {
	unit, err := p.InvertibleFactor()
	if err != nil {
		return nil, err
	}
	//
	var (
		c0    = unit.Coefficient(0)
		cache []*big.Rat
	)
	//
	if c0.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	//
	recip := derive(func(n int) *big.Rat {
		for len(cache) <= n {
			k := len(cache)
			//
			if k == 0 {
				cache = append(cache, new(big.Rat).Inv(c0))
				continue
			}
			//
			sum := new(big.Rat)
			//
			for i := 0; i < k; i++ {
				term := new(big.Rat).Mul(cache[i], unit.Coefficient(k-i))
				sum.Add(sum, term)
			}
			//
			sum.Quo(sum, c0)
			cache = append(cache, sum.Neg(sum))
		}
		//
		return cache[n]
	}, util.Some(0))
	//
	return recip.Mul(shift(-p.order.Unwrap())), nil
}

// Div returns this series divided by another, or ErrDivisionByZero when the
// divisor is the zero series.
func (p *Series) Div(q *Series) (*Series, error) {
	inv, err := q.Inverse()
	if err != nil {
		return nil, err
	}
	//
	return p.Mul(inv), nil
}
