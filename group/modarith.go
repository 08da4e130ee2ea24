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

// addMod, subMod, mulMod and negMod are shared by ElementModP and
// ElementModQ, which differ only in which modulus (P or Q) they reduce
// against. Results are always the Euclidean (non-negative) residue in
// [0, n), regardless of the sign math/big's Sub would otherwise return.

func addMod(a, b, n *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Add(a, b), n)
}

func subMod(a, b, n *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Sub(a, b), n)
}

func mulMod(a, b, n *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(a, b), n)
}

func negMod(a, n *big.Int) *big.Int {
	if a.Sign() == 0 {
		return big.NewInt(0)
	}
	return new(big.Int).Sub(n, a)
}

// invMod returns a^-1 mod n, or ErrDomain if a and n are not coprime (the
// only way that happens for prime n is a == 0).
func invMod(a, n *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(a, n)
	if inv == nil {
		return nil, ErrDomain
	}
	return inv, nil
}
