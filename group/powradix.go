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

// PowRadixOption selects how much memory a PowRadix table is allowed to
// spend in exchange for fewer modular multiplications per exponentiation.
// k is the window size in bits; a table has ceil(qBitLen/k) rows and 2^k
// columns.
type PowRadixOption int

const (
	// NoAcceleration disables the table; powP falls back to math/big's Exp.
	NoAcceleration PowRadixOption = iota
	// LowMemoryUse builds an 8-bit-window table.
	LowMemoryUse
	// HighMemoryUse builds a 12-bit-window table.
	HighMemoryUse
	// ExtremeMemoryUse builds a 16-bit-window table.
	ExtremeMemoryUse
)

func (o PowRadixOption) windowBits() int {
	switch o {
	case LowMemoryUse:
		return 8
	case HighMemoryUse:
		return 12
	case ExtremeMemoryUse:
		return 16
	default:
		return 0
	}
}

// powRadix holds a fixed-base, windowed exponentiation table for a single
// base element. table[row][col] == base^(col * 2^(k*row)) mod P. Given an
// exponent e with the same bit-length budget the table was built for,
// powP decomposes e into k-bit digits and multiplies one table entry per
// row instead of performing a full square-and-multiply ladder.
type powRadix struct {
	base    *ElementModP
	context *Context
	tier    PowRadixOption
	k       int
	numRows int
	table   [][]*big.Int
}

func newPowRadix(base *ElementModP, tier PowRadixOption) (*powRadix, error) {
	c := base.context
	if tier == NoAcceleration {
		return &powRadix{base: base, context: c, tier: tier}, nil
	}
	k := tier.windowBits()
	qBits := c.params.qBitLen()
	numRows := (qBits + k - 1) / k

	table := make([][]*big.Int, numRows)
	numCols := 1 << uint(k)
	// rowBase accumulates base^(2^(k*row)); each row's column 1 entry.
	rowBase := new(big.Int).Set(base.residue)
	for row := 0; row < numRows; row++ {
		cols := make([]*big.Int, numCols)
		cols[0] = big.NewInt(1)
		cur := new(big.Int).Set(rowBase)
		for col := 1; col < numCols; col++ {
			cols[col] = new(big.Int).Set(cur)
			cur = mulMod(cur, rowBase, c.params.P)
		}
		table[row] = cols
		// Advance rowBase to base^(2^(k*(row+1))) by squaring k times.
		next := new(big.Int).Set(rowBase)
		for i := 0; i < k; i++ {
			next = mulMod(next, next, c.params.P)
		}
		rowBase = next
	}

	return &powRadix{
		base:    base,
		context: c,
		tier:    tier,
		k:       k,
		numRows: numRows,
		table:   table,
	}, nil
}

// powP evaluates base^exp mod P by decomposing exp into numRows many
// k-bit digits (least-significant row first) and multiplying the
// corresponding table entries.
func (pr *powRadix) powP(exp *big.Int) (*ElementModP, error) {
	if pr.tier == NoAcceleration {
		r := new(big.Int).Exp(pr.base.residue, exp, pr.context.params.P)
		return pr.context.newElementModP(r), nil
	}

	e := new(big.Int).Set(exp)
	if e.Sign() < 0 || e.Cmp(pr.context.params.Q) >= 0 {
		e = new(big.Int).Mod(e, pr.context.params.Q)
	}

	mask := new(big.Int).Sub(new(big.Int).Lsh(big1, uint(pr.k)), big1)
	result := big.NewInt(1)
	tmp := new(big.Int).Set(e)
	for row := 0; row < pr.numRows; row++ {
		digit := new(big.Int).And(tmp, mask)
		col := int(digit.Int64())
		result = mulMod(result, pr.table[row][col], pr.context.params.P)
		tmp.Rsh(tmp, uint(pr.k))
	}
	return pr.context.newElementModP(result), nil
}
