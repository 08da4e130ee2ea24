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

import (
	"math/big"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Context", func() {
	It("ProductionContext and TestContext are process-wide singletons", func() {
		Expect(ProductionContext()).Should(BeIdenticalTo(ProductionContext()))
		Expect(TestContext()).Should(BeIdenticalTo(TestContext()))
	})

	It("ProductionParams satisfy the group invariants", func() {
		p := ProductionParams()
		Expect(p.Q.ProbablyPrime(32)).Should(BeTrue())
		Expect(p.P.ProbablyPrime(32)).Should(BeTrue())

		// Q | (P - 1)
		pMinus1 := new(big.Int).Sub(p.P, big1)
		rem := new(big.Int).Mod(pMinus1, p.Q)
		Expect(rem.Sign()).Should(BeZero())

		// G has order Q: G^Q == 1 (mod P)
		gq := new(big.Int).Exp(p.G, p.Q, p.P)
		Expect(gq.Cmp(big1)).Should(BeZero())

		// R is the correct cofactor: R*Q == P-1.
		rq := new(big.Int).Mul(p.R, p.Q)
		Expect(rq.Cmp(pMinus1)).Should(BeZero())
	})

	It("TestParams satisfy the same invariants at 16-bit scale", func() {
		p := TestParams()
		pMinus1 := new(big.Int).Sub(p.P, big1)
		rem := new(big.Int).Mod(pMinus1, p.Q)
		Expect(rem.Sign()).Should(BeZero())

		gq := new(big.Int).Exp(p.G, p.Q, p.P)
		Expect(gq.Cmp(big1)).Should(BeZero())
	})

	It("BinaryToElementModP rejects an out-of-range encoding that SafeBinaryToElementModP reduces", func() {
		ctx := TestContext()
		tooBig := ctx.Params().P.Bytes()
		_, err := ctx.BinaryToElementModP(tooBig)
		Expect(err).Should(Equal(ErrOutOfRange))

		safe, err := ctx.SafeBinaryToElementModP(tooBig)
		Expect(err).Should(BeNil())
		Expect(safe.InBounds()).Should(BeTrue())
	})

	It("SafeBinaryToElementModQ applies the minimum floor", func() {
		ctx := TestContext()
		got, err := ctx.SafeBinaryToElementModQ([]byte{0x01}, 100)
		Expect(err).Should(BeNil())
		Expect(got.BigInt().Int64()).Should(BeEquivalentTo(101))
	})

	It("SafeBinaryToElementModQ rejects a negative minimum", func() {
		ctx := TestContext()
		_, err := ctx.SafeBinaryToElementModQ([]byte{0x01}, -1)
		Expect(err).Should(Equal(ErrInvalidArgument))
	})

	It("GPowPSmall rejects negative exponents", func() {
		ctx := TestContext()
		_, err := ctx.GPowPSmall(-1)
		Expect(err).Should(Equal(ErrInvalidArgument))
	})

	It("GPowPSmall(2) matches the cached GSquaredModP constant", func() {
		ctx := TestContext()
		got, err := ctx.GPowPSmall(2)
		Expect(err).Should(BeNil())
		Expect(got.Equal(ctx.GSquaredModP())).Should(BeTrue())
	})
})
