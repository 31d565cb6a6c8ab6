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

// sparse has coefficients 2, 0, 5, 0, 7, 0, 9, ... at indices 0, 1, 2, ...
func sparse(n int) *big.Rat {
	if n%2 == 1 {
		return new(big.Rat)
	}
	//
	return big.NewRat(int64(n)+2, 1)
}

func Test_Render_01(t *testing.T) {
	checkRender(t, New(sparse).Render(3, false), "2 + (5)z^2")
}

func Test_Render_02(t *testing.T) {
	checkRender(t, New(sparse).Render(3, true), "2 + (0)z + (5)z^2")
}

func Test_Render_03(t *testing.T) {
	// The zero series renders as "0" regardless of length.
	checkRender(t, Zero().Render(10, false), "0")
	checkRender(t, Zero().Render(10, true), "0")
}

func Test_Render_04(t *testing.T) {
	// An entirely empty window renders as "0".  Here the (trusted) order is
	// a lie, so every rendered term is zero.
	p := NewWithOrder(func(int) *big.Rat { return new(big.Rat) }, -3)
	//
	checkRender(t, p.Render(2, false), "0")
	checkRender(t, p.Render(2, true), "(0)z^-3 + (0)z^-2")
}

func Test_Render_05(t *testing.T) {
	// Negative degrees render with their sign.
	p := NewWithOrder(func(n int) *big.Rat {
		if n == -2 {
			return big.NewRat(3, 1)
		}
		//
		return new(big.Rat)
	}, -2)
	//
	checkRender(t, p.Render(1, false), "(3)z^-2")
}

func Test_Render_06(t *testing.T) {
	// Rational coefficients render in fractional form.
	p := New(func(n int) *big.Rat {
		return big.NewRat(1, int64(n)+2)
	})
	//
	checkRender(t, p.Render(2, false), "1/2 + (1/3)z")
}

func Test_String_01(t *testing.T) {
	p := New(ones)
	// Default display length.
	checkRender(t, p.String(), "1 + (1)z + (1)z^2 + (1)z^3 + (1)z^4")
	// Display length is mutable, without algebraic effect.
	p.SetLength(2)
	//
	checkRender(t, p.String(), "1 + (1)z")
	checkOrder(t, p, 0)
}

func checkRender(t *testing.T, actual string, expected string) {
	t.Helper()
	//
	if actual != expected {
		t.Errorf("rendered %q, expected %q", actual, expected)
	}
}
