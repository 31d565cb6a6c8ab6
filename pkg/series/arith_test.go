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
	"testing"
)

func Test_Add_01(t *testing.T) {
	// A + (-A) vanishes everywhere.
	p := New(onesFrom(2))
	sum := p.Add(p.Neg())
	//
	for n := -2; n < 10; n++ {
		checkCoefficient(t, sum, n, new(big.Rat))
	}
}

func Test_Add_02(t *testing.T) {
	// Sum order is the minimum of the operand orders.
	sum := New(onesFrom(2)).Add(New(onesFrom(5)))
	//
	checkOrder(t, sum, 2)
	checkCoefficient(t, sum, 2, big.NewRat(1, 1))
	checkCoefficient(t, sum, 5, big.NewRat(2, 1))
}

func Test_Add_03(t *testing.T) {
	// The zero series is the identity for order bookkeeping.
	p := New(onesFrom(3))
	//
	checkOrder(t, Zero().Add(p), 3)
	checkOrder(t, p.Add(Zero()), 3)
	//
	if !Zero().Add(Zero()).IsZero() {
		t.Errorf("sum of zero series not classified as zero")
	}
}

func Test_Add_04(t *testing.T) {
	// When leading terms cancel, the order is a conservative bound: it stays
	// at the minimum, and the coefficient there simply reads zero.
	p := New(ones)
	q := p.Neg().Add(New(onesFrom(1)))
	sum := p.Add(q)
	//
	checkOrder(t, sum, 0)
	checkCoefficient(t, sum, 0, new(big.Rat))
	checkCoefficient(t, sum, 1, big.NewRat(1, 1))
}

func Test_Sub_01(t *testing.T) {
	p := New(ones)
	diff := p.Sub(New(onesFrom(1)))
	// 1 at index zero, vanishing beyond.
	checkCoefficient(t, diff, 0, big.NewRat(1, 1))
	//
	for n := 1; n < 6; n++ {
		checkCoefficient(t, diff, n, new(big.Rat))
	}
}

func Test_Neg_01(t *testing.T) {
	p := NewWithOrder(onesFrom(-1), -1)
	neg := p.Neg()
	//
	checkOrder(t, neg, -1)
	checkCoefficient(t, neg, -1, big.NewRat(-1, 1))
	checkCoefficient(t, neg, 3, big.NewRat(-1, 1))
}

func Test_Mul_01(t *testing.T) {
	// The square of the geometric series counts: coefficient of z^n is n+1.
	p := New(ones)
	sq := p.Mul(p)
	//
	for n := 0; n < 8; n++ {
		checkCoefficient(t, sq, n, big.NewRat(int64(n)+1, 1))
	}
}

func Test_Mul_02(t *testing.T) {
	// Order is additive under multiplication, exactly.
	prod := New(onesFrom(2)).Mul(New(onesFrom(3)))
	//
	checkOrder(t, prod, 5)
	checkCoefficient(t, prod, 4, new(big.Rat))
	checkCoefficient(t, prod, 5, big.NewRat(1, 1))
}

func Test_Mul_03(t *testing.T) {
	// Additivity holds for negative orders too.
	prod := NewWithOrder(onesFrom(-2), -2).Mul(New(onesFrom(3)))
	//
	checkOrder(t, prod, 1)
	checkCoefficient(t, prod, 1, big.NewRat(1, 1))
	checkCoefficient(t, prod, 2, big.NewRat(2, 1))
}

func Test_Mul_04(t *testing.T) {
	// Anything times the zero series is the zero series.
	if !New(ones).Mul(Zero()).IsZero() {
		t.Errorf("product with zero series not classified as zero")
	}
	//
	if !Zero().Mul(New(ones)).IsZero() {
		t.Errorf("product with zero series not classified as zero")
	}
}

func Test_Mul_05(t *testing.T) {
	// Convolution matches the definition directly.
	p := New(onesFrom(1))
	q := New(ones)
	prod := p.Mul(q)
	//
	for n := 0; n < 8; n++ {
		expected := new(big.Rat)
		//
		for i := -2; i <= n+2; i++ {
			term := new(big.Rat).Mul(p.Coefficient(i), q.Coefficient(n-i))
			expected.Add(expected, term)
		}
		//
		checkCoefficient(t, prod, n, expected)
	}
}
