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
	"math/big"

	"github.com/consensys/go-laurent/pkg/util"
)

// Neg returns the additive inverse of this series.  The order is unchanged.
func (p *Series) Neg() *Series {
	return derive(func(n int) *big.Rat {
		return new(big.Rat).Neg(p.Coefficient(n))
	}, p.order)
}

// Add returns the sum of this series and another.  The resulting order is the
// minimum of the operand orders, with the zero series acting as identity.
// Observe this is a conservative lower bound on the true valuation: it is
// never re-verified, and can be too low when leading terms cancel.
func (p *Series) Add(q *Series) *Series {
	var order util.Option[int]
	//
	switch {
	case p.order.IsEmpty():
		order = q.order
	case q.order.IsEmpty():
		order = p.order
	default:
		order = util.Some(min(p.order.Unwrap(), q.order.Unwrap()))
	}
	//
	return derive(func(n int) *big.Rat {
		return new(big.Rat).Add(p.Coefficient(n), q.Coefficient(n))
	}, order)
}

// Sub returns the difference of this series and another.
func (p *Series) Sub(q *Series) *Series {
	return p.Add(q.Neg())
}

// Mul returns the Cauchy product of this series and another.  The resulting
// order is the sum of the operand orders, which (unlike addition) is exact:
// leading coefficients of nonzero series cannot cancel over a field.  Each
// requested coefficient re-sums its convolution range from scratch; see
// Memoize for taming this on nested products.
func (p *Series) Mul(q *Series) *Series {
	if p.order.IsEmpty() || q.order.IsEmpty() {
		return Zero()
	}
	//
	order := p.order.Unwrap() + q.order.Unwrap()
	//
	return derive(func(n int) *big.Rat {
		return p.convolve(q, n)
	}, util.Some(order))
}

// convolve computes the coefficient of z^n in p*q as the convolution sum over
// the window in which both operands can contribute.
func (p *Series) convolve(q *Series, n int) *big.Rat {
	sum := new(big.Rat)
	//
	if p.order.IsEmpty() || q.order.IsEmpty() {
		return sum
	}
	//
	for i := p.order.Unwrap(); i <= n-q.order.Unwrap(); i++ {
		term := new(big.Rat).Mul(p.Coefficient(i), q.Coefficient(n-i))
		sum.Add(sum, term)
	}
	//
	return sum
}
