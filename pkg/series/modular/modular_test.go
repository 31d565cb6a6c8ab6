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
package modular

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-laurent/pkg/series"
)

func Test_ReduceCoefficient_01(t *testing.T) {
	// Integers map to themselves.
	elem, err := ReduceCoefficient(big.NewRat(7, 1))
	if err != nil {
		t.Fatal(err)
	}
	//
	var expected fr.Element
	expected.SetUint64(7)
	//
	if !elem.Equal(&expected) {
		t.Errorf("reduced 7 to %s", elem.String())
	}
}

func Test_ReduceCoefficient_02(t *testing.T) {
	// The image of 1/2, doubled, is one.
	elem, err := ReduceCoefficient(big.NewRat(1, 2))
	if err != nil {
		t.Fatal(err)
	}
	//
	var two fr.Element
	two.SetUint64(2)
	elem.Mul(&elem, &two)
	//
	if !elem.IsOne() {
		t.Errorf("2 · image(1/2) != 1")
	}
}

func Test_ReduceCoefficient_03(t *testing.T) {
	// The image of -1 is the additive inverse of one.
	elem, err := ReduceCoefficient(big.NewRat(-1, 1))
	if err != nil {
		t.Fatal(err)
	}
	//
	var one fr.Element
	one.SetOne()
	elem.Add(&elem, &one)
	//
	if !elem.IsZero() {
		t.Errorf("image(-1) + 1 != 0")
	}
}

func Test_Reduce_01(t *testing.T) {
	// Reducing the geometric series yields a window of ones.
	p := series.New(func(int) *big.Rat {
		return big.NewRat(1, 1)
	})
	//
	elements, err := Reduce(p, 0, 4)
	if err != nil {
		t.Fatal(err)
	}
	//
	if len(elements) != 4 {
		t.Fatalf("expected 4 elements, got %d", len(elements))
	}
	//
	for i, elem := range elements {
		if !elem.IsOne() {
			t.Errorf("element %d was %s, expected 1", i, elem.String())
		}
	}
}

func Test_Reduce_02(t *testing.T) {
	// The zero series reduces to zeros at every index.
	elements, err := Reduce(series.Zero(), -2, 3)
	if err != nil {
		t.Fatal(err)
	}
	//
	for i, elem := range elements {
		if !elem.IsZero() {
			t.Errorf("element %d was %s, expected 0", i, elem.String())
		}
	}
}
