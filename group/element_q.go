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

// ElementModQ is an immutable residue mod Q, tied to the Context that
// produced it.
type ElementModQ struct {
	residue *big.Int
	context *Context
}

// Context returns the GroupContext this element belongs to.
func (e *ElementModQ) Context() *Context {
	return e.context
}

// BigInt returns a copy of the element's residue.
func (e *ElementModQ) BigInt() *big.Int {
	return new(big.Int).Set(e.residue)
}

func (c *Context) newElementModQ(residue *big.Int) *ElementModQ {
	return &ElementModQ{residue: residue, context: c}
}

// InBounds reports whether the residue lies in [0, Q).
func (e *ElementModQ) InBounds() bool {
	return e.residue.Sign() >= 0 && e.residue.Cmp(e.context.params.Q) < 0
}

// InBoundsNoZero reports whether the residue lies in [1, Q).
func (e *ElementModQ) InBoundsNoZero() bool {
	return e.residue.Sign() > 0 && e.InBounds()
}

// Equal reports whether e and o have the same residue and compatible
// contexts.
func (e *ElementModQ) Equal(o *ElementModQ) bool {
	if err := e.context.assertCompatible(o.context); err != nil {
		return false
	}
	return e.residue.Cmp(o.residue) == 0
}

// Cmp compares the numeric residues of e and o.
func (e *ElementModQ) Cmp(o *ElementModQ) int {
	return e.residue.Cmp(o.residue)
}

// Add returns (e + o) mod Q.
func (e *ElementModQ) Add(o *ElementModQ) (*ElementModQ, error) {
	if err := e.context.assertCompatible(o.context); err != nil {
		return nil, err
	}
	return e.context.newElementModQ(addMod(e.residue, o.residue, e.context.params.Q)), nil
}

// Sub returns (e - o) mod Q.
func (e *ElementModQ) Sub(o *ElementModQ) (*ElementModQ, error) {
	if err := e.context.assertCompatible(o.context); err != nil {
		return nil, err
	}
	return e.context.newElementModQ(subMod(e.residue, o.residue, e.context.params.Q)), nil
}

// Mul returns (e * o) mod Q.
func (e *ElementModQ) Mul(o *ElementModQ) (*ElementModQ, error) {
	if err := e.context.assertCompatible(o.context); err != nil {
		return nil, err
	}
	return e.context.newElementModQ(mulMod(e.residue, o.residue, e.context.params.Q)), nil
}

// Negate returns (Q - e) mod Q.
func (e *ElementModQ) Negate() *ElementModQ {
	return e.context.newElementModQ(negMod(e.residue, e.context.params.Q))
}

// MultInv returns e^-1 mod Q. Fails with ErrDomain iff e is zero.
func (e *ElementModQ) MultInv() (*ElementModQ, error) {
	inv, err := invMod(e.residue, e.context.params.Q)
	if err != nil {
		return nil, err
	}
	return e.context.newElementModQ(inv), nil
}

// Div returns (e / o) mod Q, i.e. e * o^-1.
func (e *ElementModQ) Div(o *ElementModQ) (*ElementModQ, error) {
	if err := e.context.assertCompatible(o.context); err != nil {
		return nil, err
	}
	inv, err := invMod(o.residue, e.context.params.Q)
	if err != nil {
		return nil, err
	}
	return e.context.newElementModQ(mulMod(e.residue, inv, e.context.params.Q)), nil
}

// Bytes returns the minimum-length big-endian encoding of the residue.
func (e *ElementModQ) Bytes() []byte {
	return e.residue.Bytes()
}

// Base64 returns the RFC 4648 (with padding) encoding of Bytes().
func (e *ElementModQ) Base64() string {
	return base64Encode(e.Bytes())
}
