// Copyright Trident Contributors
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
package target

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// FieldElement wraps fr.Element, the one fixed-modulus prime field
// available across the retrieved pack's crypto stack, so constant folding
// and literal parsing share one arithmetic implementation rather than a
// hand-rolled big.Int field.
type FieldElement struct {
	fr.Element
}

// Prime returns the field's modulus.
func Prime() *big.Int {
	return fr.Modulus()
}

// FieldFromUint64 constructs a FieldElement from a small unsigned value.
func FieldFromUint64(v uint64) FieldElement {
	var e FieldElement

	e.Element.SetUint64(v)

	return e
}

// FieldFromDecimal parses a decimal-digit string into a FieldElement,
// reducing modulo the field prime. ok is false if digits is not a valid
// base-10 integer literal.
func FieldFromDecimal(digits string) (FieldElement, bool) {
	var bi big.Int

	if _, ok := bi.SetString(digits, 10); !ok {
		return FieldElement{}, false
	}

	var e FieldElement

	e.Element.SetBigInt(&bi)

	return e, true
}

// Add returns x + y.
func (x FieldElement) Add(y FieldElement) FieldElement {
	var res fr.Element

	res.Add(&x.Element, &y.Element)

	return FieldElement{res}
}

// Mul returns x * y.
func (x FieldElement) Mul(y FieldElement) FieldElement {
	var res fr.Element

	res.Mul(&x.Element, &y.Element)

	return FieldElement{res}
}

// Neg returns -x, the additive inverse of x.
func (x FieldElement) Neg() FieldElement {
	var res fr.Element

	res.Neg(&x.Element)

	return FieldElement{res}
}

// Equal reports whether x and y represent the same field element.
func (x FieldElement) Equal(y FieldElement) bool {
	return x.Element.Equal(&y.Element)
}

// IsZero reports whether x is the additive identity.
func (x FieldElement) IsZero() bool {
	return x.Element.IsZero()
}

// ToUint32 returns x's value as a uint32, panicking if it does not fit.
func (x FieldElement) ToUint32() uint32 {
	var bi big.Int

	x.Element.BigInt(&bi)

	if bi.BitLen() > 32 {
		panic("field element does not fit in uint32")
	}

	return uint32(bi.Uint64())
}

// String renders x in decimal.
func (x FieldElement) String() string {
	return x.Element.String()
}
