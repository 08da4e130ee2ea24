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

var _ = Describe("GenerateParams", func() {
	It("mints a usable safe-prime group", func() {
		p, err := GenerateParams(24)
		Expect(err).Should(BeNil())
		Expect(p.Strength).Should(Equal(Custom))
		Expect(p.P.ProbablyPrime(20)).Should(BeTrue())
		Expect(p.Q.ProbablyPrime(20)).Should(BeTrue())

		pMinus1 := new(big.Int).Sub(p.P, big1)
		rem := new(big.Int).Mod(pMinus1, p.Q)
		Expect(rem.Sign()).Should(BeZero())

		gq := new(big.Int).Exp(p.G, p.Q, p.P)
		Expect(gq.Cmp(big1)).Should(BeZero())
	})

	It("builds a working Context whose GPowP yields valid residues", func() {
		p, err := GenerateParams(24)
		Expect(err).Should(BeNil())
		ctx := NewContext(p)

		exp, err := ctx.UlongToElementModQ(5)
		Expect(err).Should(BeNil())
		got, err := ctx.GPowP(exp)
		Expect(err).Should(BeNil())
		Expect(got.IsValidResidue()).Should(BeTrue())
	})

	It("rejects incompatible custom contexts from different GenerateParams calls", func() {
		p1, err := GenerateParams(24)
		Expect(err).Should(BeNil())
		p2, err := GenerateParams(24)
		Expect(err).Should(BeNil())

		ctx1 := NewContext(p1)
		ctx2 := NewContext(p2)
		_, err = ctx1.OneModP().Add(ctx2.OneModP())
		Expect(err).Should(Equal(ErrIncompatibleContext))
	})
})
