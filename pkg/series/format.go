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
	"fmt"
	"math/big"
	"strings"
)

// Render produces the textual sum of the terms at indices order .. order +
// length - 1.  Terms with coefficient exactly zero are omitted unless
// includeZeroTerms is set.  An empty result, and the zero series regardless
// of length, renders as "0".  Rendering is purely presentational and has no
// algebraic effect.
func (p *Series) Render(length uint, includeZeroTerms bool) string {
	if p.order.IsEmpty() {
		return "0"
	}
	//
	var (
		terms []string
		order = p.order.Unwrap()
	)
	//
	for i := 0; i < int(length); i++ {
		n := order + i
		c := p.Coefficient(n)
		//
		if c.Sign() == 0 && !includeZeroTerms {
			continue
		}
		//
		terms = append(terms, term(c, n))
	}
	//
	if len(terms) == 0 {
		return "0"
	}
	//
	return strings.Join(terms, " + ")
}

// String renders the first terms of this series, as configured by SetLength.
func (p *Series) String() string {
	return p.Render(p.length, false)
}

// term renders the monomial (c)z^n, eliding the power for degrees zero and
// one.
func term(c *big.Rat, n int) string {
	switch n {
	case 0:
		return c.RatString()
	case 1:
		return fmt.Sprintf("(%s)z", c.RatString())
	default:
		return fmt.Sprintf("(%s)z^%d", c.RatString(), n)
	}
}
