// Copyright © 2024 The ElectionGuard-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package group

import "math/big"

// ElementModP is an immutable residue mod P, tied to the Context that
// produced it. Its zero value is not useful; always obtain one through a
// Context factory or an arithmetic operation on an existing element.
type ElementModP struct {
	residue *big.Int
	context *Context
	radix   *powRadix
}

// Context returns the GroupContext this element belongs to.
func (e *ElementModP) Context() *Context {
	return e.context
}

// BigInt returns a copy of the element's residue. The internal *big.Int
// is never handed out by reference, so callers cannot mutate an element
// through the returned value.
func (e *ElementModP) BigInt() *big.Int {
	return new(big.Int).Set(e.residue)
}

func (c *Context) newElementModP(residue *big.Int) *ElementModP {
	return &ElementModP{residue: residue, context: c}
}

// InBounds reports whether the residue lies in [0, P).
func (e *ElementModP) InBounds() bool {
	return e.residue.Sign() >= 0 && e.residue.Cmp(e.context.params.P) < 0
}

// InBoundsNoZero reports whether the residue lies in [1, P).
func (e *ElementModP) InBoundsNoZero() bool {
	return e.residue.Sign() > 0 && e.InBounds()
}

// IsValidResidue reports whether e is in bounds and in the order-Q
// subgroup of Z/P*, i.e. e^Q mod P == 1.
func (e *ElementModP) IsValidResidue() bool {
	if !e.InBounds() {
		return false
	}
	check := new(big.Int).Exp(e.residue, e.context.params.Q, e.context.params.P)
	return check.Cmp(big1) == 0
}

// Equal reports whether e and o have the same residue and compatible
// contexts.
func (e *ElementModP) Equal(o *ElementModP) bool {
	if err := e.context.assertCompatible(o.context); err != nil {
		return false
	}
	return e.residue.Cmp(o.residue) == 0
}

// Cmp compares the numeric residues of e and o.
func (e *ElementModP) Cmp(o *ElementModP) int {
	return e.residue.Cmp(o.residue)
}

// Add returns (e + o) mod P.
func (e *ElementModP) Add(o *ElementModP) (*ElementModP, error) {
	if err := e.context.assertCompatible(o.context); err != nil {
		return nil, err
	}
	return e.context.newElementModP(addMod(e.residue, o.residue, e.context.params.P)), nil
}

// Sub returns (e - o) mod P, using Euclidean (always nonnegative) semantics.
func (e *ElementModP) Sub(o *ElementModP) (*ElementModP, error) {
	if err := e.context.assertCompatible(o.context); err != nil {
		return nil, err
	}
	return e.context.newElementModP(subMod(e.residue, o.residue, e.context.params.P)), nil
}

// Mul returns (e * o) mod P.
func (e *ElementModP) Mul(o *ElementModP) (*ElementModP, error) {
	if err := e.context.assertCompatible(o.context); err != nil {
		return nil, err
	}
	return e.context.newElementModP(mulMod(e.residue, o.residue, e.context.params.P)), nil
}

// Negate returns (P - e) mod P.
func (e *ElementModP) Negate() *ElementModP {
	return e.context.newElementModP(negMod(e.residue, e.context.params.P))
}

// MultInv returns e^-1 mod P. Fails with ErrDomain iff e is zero.
func (e *ElementModP) MultInv() (*ElementModP, error) {
	inv, err := invMod(e.residue, e.context.params.P)
	if err != nil {
		return nil, err
	}
	return e.context.newElementModP(inv), nil
}

// Div returns (e / o) mod P, i.e. e * o^-1.
func (e *ElementModP) Div(o *ElementModP) (*ElementModP, error) {
	if err := e.context.assertCompatible(o.context); err != nil {
		return nil, err
	}
	inv, err := invMod(o.residue, e.context.params.P)
	if err != nil {
		return nil, err
	}
	return e.context.newElementModP(mulMod(e.residue, inv, e.context.params.P)), nil
}

// PowP returns e^exp mod P. If e was produced by AcceleratePow, the
// lookup-table radix is used; otherwise this falls back to math/big's
// generic modpow.
func (e *ElementModP) PowP(exp *ElementModQ) (*ElementModP, error) {
	if err := e.context.assertCompatible(exp.context); err != nil {
		return nil, err
	}
	if e.radix != nil {
		return e.radix.powP(exp.residue)
	}
	r := new(big.Int).Exp(e.residue, exp.residue, e.context.params.P)
	return e.context.newElementModP(r), nil
}

// Bytes returns the minimum-length big-endian encoding of the residue.
func (e *ElementModP) Bytes() []byte {
	return e.residue.Bytes()
}

// Base64 returns the RFC 4648 (with padding) encoding of Bytes().
func (e *ElementModP) Base64() string {
	return base64Encode(e.Bytes())
}

// AcceleratePow builds a new PowRadix table over e and returns a
// copy of e whose PowP calls are answered from that table. The returned
// element is equal to e under PowP for every valid exponent; only its
// internal acceleration structure differs.
func (e *ElementModP) AcceleratePow(tier PowRadixOption) (*ElementModP, error) {
	pr, err := newPowRadix(e, tier)
	if err != nil {
		return nil, err
	}
	accelerated := e.context.newElementModP(new(big.Int).Set(e.residue))
	accelerated.radix = pr
	return accelerated, nil
}
