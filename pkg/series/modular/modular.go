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

// Package modular reduces the exact rational coefficients of a series into
// the BLS12-377 scalar field, mapping p/q to p·q⁻¹ (mod r).  This is how
// rational series are consumed by field-based backends, where exact division
// becomes multiplication by a modular inverse.
package modular

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-laurent/pkg/series"
)

// ErrNotReducible is returned when a coefficient has no image in the scalar
// field, i.e. its denominator is a multiple of the field modulus.
var ErrNotReducible = errors.New("coefficient denominator vanishes modulo the field")

// ReduceCoefficient maps a single rational p/q to p·q⁻¹ in the BLS12-377
// scalar field.
func ReduceCoefficient(c *big.Rat) (fr.Element, error) {
	var num, den fr.Element
	//
	num.SetBigInt(c.Num())
	den.SetBigInt(c.Denom())
	//
	if den.IsZero() {
		return fr.Element{}, ErrNotReducible
	}
	//
	den.Inverse(&den)
	num.Mul(&num, &den)
	//
	return num, nil
}

// Reduce maps the coefficients of a series at indices from .. from+count-1
// into the scalar field.
func Reduce(p *series.Series, from int, count uint) ([]fr.Element, error) {
	elements := make([]fr.Element, count)
	//
	for i := range elements {
		elem, err := ReduceCoefficient(p.Coefficient(from + i))
		if err != nil {
			return nil, err
		}
		//
		elements[i] = elem
	}
	//
	return elements, nil
}
