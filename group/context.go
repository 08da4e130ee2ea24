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

// Package group implements the multiplicative-group arithmetic ElectionGuard
// style exponential ElGamal is built on: a safe-prime field Z/P containing a
// prime-order-Q subgroup generated by G, with accelerated exponentiation
// (PowRadix) and a memoized discrete-log solver (DLog) bolted onto the base
// element G.
package group

import (
	"math/big"
	"sync"

	"github.com/danwallach/electionguard-core-go/internal/mathutil"
	"github.com/danwallach/electionguard-core-go/logger"
)

var big1 = big.NewInt(1)

// Context is an immutable handle on one parameter set (P, Q, G, R) plus the
// caches built on top of it: a handful of frequently used elements, a lazy
// PowRadix table accelerating G^x, and a lazy DLog solver. Obtain one via
// ProductionContext, TestContext or NewContext; never construct the zero
// value directly.
type Context struct {
	params Params

	zeroModP     *ElementModP
	oneModP      *ElementModP
	gModP        *ElementModP
	gSquaredModP *ElementModP
	qModP        *ElementModP

	zeroModQ *ElementModQ
	oneModQ  *ElementModQ

	radixOnce sync.Once
	radix     *powRadix
	radixErr  error

	dlogOnce sync.Once
	dlog     *dlogCache
}

// NewContext builds a fresh Context over the given parameters. Most callers
// should prefer ProductionContext or TestContext, which memoize a single
// instance per Strength; NewContext is for constructing an isolated context
// over custom parameters (e.g. in tests exercising a third parameter set).
func NewContext(p Params) *Context {
	c := &Context{params: p}
	c.zeroModP = c.newElementModP(big.NewInt(0))
	c.oneModP = c.newElementModP(big.NewInt(1))
	c.gModP = c.newElementModP(new(big.Int).Set(p.G))
	c.gSquaredModP = c.newElementModP(mulMod(p.G, p.G, p.P))
	c.qModP = c.newElementModP(new(big.Int).Set(p.Q))
	c.zeroModQ = c.newElementModQ(big.NewInt(0))
	c.oneModQ = c.newElementModQ(big.NewInt(1))
	return c
}

var (
	productionOnce sync.Once
	productionCtx  *Context

	testOnce sync.Once
	testCtx  *Context
)

// ProductionContext returns the process-wide singleton Context over the
// full-size 4096-bit parameters. The underlying PowRadix table and DLog
// cache are built lazily and shared by every caller.
func ProductionContext() *Context {
	productionOnce.Do(func() {
		productionCtx = NewContext(ProductionParams())
	})
	return productionCtx
}

// TestContext returns the process-wide singleton Context over the 16-bit
// toy parameters used by this module's own tests.
func TestContext() *Context {
	testOnce.Do(func() {
		testCtx = NewContext(TestParams())
	})
	return testCtx
}

// Params returns a copy of the context's group parameters.
func (c *Context) Params() Params {
	return Params{
		P:        new(big.Int).Set(c.params.P),
		Q:        new(big.Int).Set(c.params.Q),
		G:        new(big.Int).Set(c.params.G),
		R:        new(big.Int).Set(c.params.R),
		Strength: c.params.Strength,
	}
}

// ZeroModP, OneModP, GModP, GSquaredModP and QModP return the cached
// elements 0, 1, G, G^2 and Q, each reduced mod P.
func (c *Context) ZeroModP() *ElementModP     { return c.zeroModP }
func (c *Context) OneModP() *ElementModP      { return c.oneModP }
func (c *Context) GModP() *ElementModP        { return c.gModP }
func (c *Context) GSquaredModP() *ElementModP { return c.gSquaredModP }
func (c *Context) QModP() *ElementModP        { return c.qModP }

// ZeroModQ and OneModQ return the cached elements 0 and 1 mod Q.
func (c *Context) ZeroModQ() *ElementModQ { return c.zeroModQ }
func (c *Context) OneModQ() *ElementModQ  { return c.oneModQ }

// assertCompatible reports ErrIncompatibleContext unless c and o are
// built over the same group. Strength alone distinguishes Production
// from TestStrength (each a single global singleton, so equal Strength
// implies equal parameters), but Custom contexts from GenerateParams
// each mint their own P/Q, so Strength equality is not sufficient there
// — the parameters themselves must match too.
func (c *Context) assertCompatible(o *Context) error {
	if c == nil || o == nil || c.params.Strength != o.params.Strength {
		return ErrIncompatibleContext
	}
	if c.params.Strength == Custom && c.params.P.Cmp(o.params.P) != 0 {
		return ErrIncompatibleContext
	}
	return nil
}

// BinaryToElementModP interprets b as a big-endian unsigned integer and
// returns the corresponding element. It fails with ErrOutOfRange if the
// integer is >= P.
func (c *Context) BinaryToElementModP(b []byte) (*ElementModP, error) {
	n := new(big.Int).SetBytes(b)
	if n.Cmp(c.params.P) >= 0 {
		return nil, ErrOutOfRange
	}
	return c.newElementModP(n), nil
}

// SafeBinaryToElementModP interprets b as a big-endian unsigned integer,
// reduces it mod P, and if the result is below minimum, adds minimum to
// it. minimum defaults to 0 and must not be negative. Unlike
// BinaryToElementModP this always succeeds (no out-of-range input
// exists once reduced), which makes it the right choice for deriving
// elements from raw random bytes rather than for parsing untrusted
// encodings that must roundtrip exactly.
func (c *Context) SafeBinaryToElementModP(b []byte, minimum ...int64) (*ElementModP, error) {
	min, err := parseMinimum(minimum)
	if err != nil {
		return nil, err
	}
	n := new(big.Int).SetBytes(b)
	n.Mod(n, c.params.P)
	if min > 0 && n.Cmp(big.NewInt(min)) < 0 {
		n.Add(n, big.NewInt(min))
	}
	return c.newElementModP(n), nil
}

func parseMinimum(minimum []int64) (int64, error) {
	if len(minimum) == 0 {
		return 0, nil
	}
	if minimum[0] < 0 {
		return 0, ErrInvalidArgument
	}
	return minimum[0], nil
}

// BinaryToElementModQ interprets b as a big-endian unsigned integer and
// returns the corresponding element. It fails with ErrOutOfRange if the
// integer is >= Q.
func (c *Context) BinaryToElementModQ(b []byte) (*ElementModQ, error) {
	n := new(big.Int).SetBytes(b)
	if n.Cmp(c.params.Q) >= 0 {
		return nil, ErrOutOfRange
	}
	return c.newElementModQ(n), nil
}

// SafeBinaryToElementModQ interprets b as a big-endian unsigned integer,
// reduces it mod Q, and if the result is below minimum, adds minimum to
// it. minimum defaults to 0 and must not be negative.
func (c *Context) SafeBinaryToElementModQ(b []byte, minimum ...int64) (*ElementModQ, error) {
	min, err := parseMinimum(minimum)
	if err != nil {
		return nil, err
	}
	n := new(big.Int).SetBytes(b)
	n.Mod(n, c.params.Q)
	if min > 0 && n.Cmp(big.NewInt(min)) < 0 {
		n.Add(n, big.NewInt(min))
	}
	return c.newElementModQ(n), nil
}

// UlongToElementModP converts u to an element mod P. It fails with
// ErrOutOfRange iff u >= P, which can only happen under a small parameter
// set: the 16-bit test set or a small group from GenerateParams.
func (c *Context) UlongToElementModP(u uint64) (*ElementModP, error) {
	n := new(big.Int).SetUint64(u)
	if n.Cmp(c.params.P) >= 0 {
		return nil, ErrOutOfRange
	}
	return c.newElementModP(n), nil
}

// UlongToElementModQ converts u to an element mod Q. It fails with
// ErrOutOfRange iff u >= Q.
func (c *Context) UlongToElementModQ(u uint64) (*ElementModQ, error) {
	n := new(big.Int).SetUint64(u)
	if n.Cmp(c.params.Q) >= 0 {
		return nil, ErrOutOfRange
	}
	return c.newElementModQ(n), nil
}

// Base64ToElementModP decodes s and interprets it as a big-endian element
// mod P, failing if s is not valid base64 or names an out-of-range integer.
func (c *Context) Base64ToElementModP(s string) (*ElementModP, error) {
	b, ok := base64Decode(s)
	if !ok {
		return nil, ErrInvalidArgument
	}
	return c.BinaryToElementModP(b)
}

// Base64ToElementModQ decodes s and interprets it as a big-endian element
// mod Q, failing if s is not valid base64 or names an out-of-range integer.
func (c *Context) Base64ToElementModQ(s string) (*ElementModQ, error) {
	b, ok := base64Decode(s)
	if !ok {
		return nil, ErrInvalidArgument
	}
	return c.BinaryToElementModQ(b)
}

// randomElementModQByteLen is the number of secure random bytes drawn by
// RandomElementModQ before reduction mod Q: 256 bits, matching Q's bit
// length in the production parameter set. In the 16-bit test group the
// same 32-byte draw is reduced mod the much smaller Q, which is fine for
// test purposes but not uniform — tests needing uniformity over the toy
// group should not rely on this source.
const randomElementModQByteLen = 32

// RandomElementModQ draws 32 cryptographically secure random bytes and
// reduces them into an element mod Q via SafeBinaryToElementModQ, adding
// minimum if the reduced value falls below it.
func (c *Context) RandomElementModQ(minimum ...int64) (*ElementModQ, error) {
	b, err := mathutil.GenRandomBytes(randomElementModQByteLen)
	if err != nil {
		return nil, err
	}
	return c.SafeBinaryToElementModQ(b, minimum...)
}

func (c *Context) ensureRadix() error {
	c.radixOnce.Do(func() {
		logger.Logger().Info("building PowRadix table for G", "strength", c.params.Strength)
		c.radix, c.radixErr = newPowRadix(c.gModP, HighMemoryUse)
	})
	return c.radixErr
}

// GPowP returns G^exp mod P, answered from a lazily built PowRadix table.
// Building the table is a one-time cost per Context, paid by whichever
// goroutine first calls GPowP (directly or through GPowPSmall).
func (c *Context) GPowP(exp *ElementModQ) (*ElementModP, error) {
	if err := c.assertCompatible(exp.context); err != nil {
		return nil, err
	}
	if err := c.ensureRadix(); err != nil {
		return nil, err
	}
	return c.radix.powP(exp.residue)
}

// GPowPSmall returns G^exp mod P. exp=0, 1 and 2 are answered from the
// context's cached constants (OneModP, GModP, GSquaredModP); anything
// else falls back to GPowP. Negative exponents fail with
// ErrInvalidArgument — there is no modular inverse of G implied here,
// unlike PowP's generic exponentiation.
func (c *Context) GPowPSmall(exp int64) (*ElementModP, error) {
	switch {
	case exp < 0:
		return nil, ErrInvalidArgument
	case exp == 0:
		return c.oneModP, nil
	case exp == 1:
		return c.gModP, nil
	case exp == 2:
		return c.gSquaredModP, nil
	}
	e, err := c.UlongToElementModQ(uint64(exp))
	if err != nil {
		return nil, err
	}
	return c.GPowP(e)
}

func (c *Context) ensureDLog() *dlogCache {
	c.dlogOnce.Do(func() {
		c.dlog = newDLogCache(c)
	})
	return c.dlog
}

// DLog solves for the exponent x in [0, max] such that G^x mod P == e,
// where max is the solver's configured cap (see maxDLogSearch in dlog.go). It
// fails with ErrOutOfRange if no such x is found within the cap.
func (c *Context) DLog(e *ElementModP) (int64, error) {
	if err := c.assertCompatible(e.context); err != nil {
		return 0, err
	}
	return c.ensureDLog().solve(e.residue)
}
