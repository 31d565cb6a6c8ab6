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

// Package catalog provides constructors for the classical named series.  Each
// is a thin mapping from parameters to a closed-form coefficient formula,
// handed to the core with the appropriate order hint.
package catalog

import (
	"math/big"

	"github.com/consensys/go-laurent/pkg/series"
)

// Zero returns the zero series.
func Zero() *series.Series {
	return series.Zero()
}

// Constant returns the series whose only term is the given constant.
func Constant(c *big.Rat) *series.Series {
	if c.Sign() == 0 {
		return series.Zero()
	}
	//
	val := new(big.Rat).Set(c)
	//
	return series.NewWithOrder(func(n int) *big.Rat {
		if n == 0 {
			return val
		}
		//
		return new(big.Rat)
	}, 0)
}

// Geometric returns the series Σ z^n, whose every coefficient is one.
func Geometric() *series.Series {
	return series.New(func(n int) *big.Rat {
		return big.NewRat(1, 1)
	})
}

// Exp returns the exponential series of az, with coefficients aⁿ/n!.
func Exp(a int64) *series.Series {
	return series.New(func(n int) *big.Rat {
		return new(big.Rat).SetFrac(pow(a, n), factorial(n))
	})
}

// Sin returns the sine series of az: aⁿ/n! with the sign pattern
// 0, +, 0, -, repeating.
func Sin(a int64) *series.Series {
	return series.NewWithOrder(func(n int) *big.Rat {
		switch n % 4 {
		case 1:
			return new(big.Rat).SetFrac(pow(a, n), factorial(n))
		case 3:
			return new(big.Rat).Neg(new(big.Rat).SetFrac(pow(a, n), factorial(n)))
		default:
			return new(big.Rat)
		}
	}, 1)
}

// Cos returns the cosine series of az: aⁿ/n! with the sign pattern
// +, 0, -, 0, repeating.
func Cos(a int64) *series.Series {
	return series.New(func(n int) *big.Rat {
		switch n % 4 {
		case 0:
			return new(big.Rat).SetFrac(pow(a, n), factorial(n))
		case 2:
			return new(big.Rat).Neg(new(big.Rat).SetFrac(pow(a, n), factorial(n)))
		default:
			return new(big.Rat)
		}
	})
}

// Sinh returns the hyperbolic sine series of az: aⁿ/n! at odd indices.
func Sinh(a int64) *series.Series {
	return series.NewWithOrder(func(n int) *big.Rat {
		if n%2 == 1 {
			return new(big.Rat).SetFrac(pow(a, n), factorial(n))
		}
		//
		return new(big.Rat)
	}, 1)
}

// Cosh returns the hyperbolic cosine series of az: aⁿ/n! at even indices.
func Cosh(a int64) *series.Series {
	return series.New(func(n int) *big.Rat {
		if n%2 == 0 {
			return new(big.Rat).SetFrac(pow(a, n), factorial(n))
		}
		//
		return new(big.Rat)
	})
}

// Monomial returns the series coef·z^degree.  The degree may be negative, in
// which case the order is (necessarily) asserted rather than inferred.  A
// zero coefficient yields the zero series.
func Monomial(degree int, coef int64) *series.Series {
	if coef == 0 {
		return series.Zero()
	}
	//
	return series.NewWithOrder(func(n int) *big.Rat {
		if n == degree {
			return big.NewRat(coef, 1)
		}
		//
		return new(big.Rat)
	}, degree)
}

// Polynomial returns the series with the given coefficients at indices
// 0, 1, 2, ... and zero everywhere beyond.  The order is inferred from the
// first nonzero coefficient.
func Polynomial(coeffs ...*big.Rat) *series.Series {
	fixed := make([]*big.Rat, len(coeffs))
	//
	for i, c := range coeffs {
		fixed[i] = new(big.Rat).Set(c)
	}
	//
	return series.New(func(n int) *big.Rat {
		if n >= 0 && n < len(fixed) {
			return fixed[n]
		}
		//
		return new(big.Rat)
	})
}

// pow computes aⁿ exactly for n >= 0.
func pow(a int64, n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(a), big.NewInt(int64(n)), nil)
}

// factorial computes n! exactly for n >= 0.
func factorial(n int) *big.Int {
	return new(big.Int).MulRange(1, int64(n))
}
