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

import "math/big"

// Memoize returns a series algebraically identical to the given one, whose
// coefficients are cached by index on first evaluation.  This is an opt-in
// performance wrapper: coefficient evaluation otherwise recomputes from
// scratch on every query, which compounds badly under nested products.  The
// returned series is not safe for concurrent use.
func Memoize(p *Series) *Series {
	cache := make(map[int]*big.Rat)
	//
	q := derive(func(n int) *big.Rat {
		if c, ok := cache[n]; ok {
			return c
		}
		//
		c := p.Coefficient(n)
		cache[n] = c
		//
		return c
	}, p.order)
	//
	q.length = p.length
	//
	return q
}
