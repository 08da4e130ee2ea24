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
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestGroup(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Group Suite")
}

var _ = Describe("ElementModP", func() {
	ctx := TestContext()

	It("Add/Sub/Mul round-trip", func() {
		a, err := ctx.UlongToElementModP(100)
		Expect(err).Should(BeNil())
		b, err := ctx.UlongToElementModP(200)
		Expect(err).Should(BeNil())

		sum, err := a.Add(b)
		Expect(err).Should(BeNil())

		back, err := sum.Sub(b)
		Expect(err).Should(BeNil())
		Expect(back.Equal(a)).Should(BeTrue())

		prod, err := a.Mul(b)
		Expect(err).Should(BeNil())
		quotient, err := prod.Div(b)
		Expect(err).Should(BeNil())
		Expect(quotient.Equal(a)).Should(BeTrue())
	})

	It("Negate is additive inverse", func() {
		a, err := ctx.UlongToElementModP(42)
		Expect(err).Should(BeNil())
		sum, err := a.Add(a.Negate())
		Expect(err).Should(BeNil())
		Expect(sum.Equal(ctx.ZeroModP())).Should(BeTrue())
	})

	It("MultInv is multiplicative inverse", func() {
		a, err := ctx.UlongToElementModP(7)
		Expect(err).Should(BeNil())
		inv, err := a.MultInv()
		Expect(err).Should(BeNil())
		prod, err := a.Mul(inv)
		Expect(err).Should(BeNil())
		Expect(prod.Equal(ctx.OneModP())).Should(BeTrue())
	})

	It("MultInv of zero fails with ErrDomain", func() {
		_, err := ctx.ZeroModP().MultInv()
		Expect(err).Should(Equal(ErrDomain))
	})

	It("UlongToElementModP rejects values >= P (16-bit test group)", func() {
		p := ctx.Params().P
		tooBig := new(big.Int).Add(p, big.NewInt(5))
		_, err := ctx.UlongToElementModP(tooBig.Uint64())
		Expect(err).Should(Equal(ErrOutOfRange))
	})

	It("GModP is a valid residue of order Q", func() {
		Expect(ctx.GModP().IsValidResidue()).Should(BeTrue())
	})

	It("Bytes/Base64 round-trip", func() {
		a, err := ctx.UlongToElementModP(12345)
		Expect(err).Should(BeNil())
		b64 := a.Base64()
		back, err := ctx.Base64ToElementModP(b64)
		Expect(err).Should(BeNil())
		Expect(back.Equal(a)).Should(BeTrue())
	})

	It("PowP matches GPowP for the generator", func() {
		exp, err := ctx.UlongToElementModQ(9)
		Expect(err).Should(BeNil())
		viaPowP, err := ctx.GModP().PowP(exp)
		Expect(err).Should(BeNil())
		viaGPowP, err := ctx.GPowP(exp)
		Expect(err).Should(BeNil())
		Expect(viaPowP.Equal(viaGPowP)).Should(BeTrue())
	})

	It("rejects operations across incompatible contexts", func() {
		prodCtx := ProductionContext()
		a, err := ctx.UlongToElementModP(1)
		Expect(err).Should(BeNil())
		b := prodCtx.OneModP()
		_, err = a.Add(b)
		Expect(err).Should(Equal(ErrIncompatibleContext))
	})
})

var _ = Describe("ElementModQ", func() {
	ctx := TestContext()

	It("Add/Sub/Mul/Div round-trip", func() {
		a, err := ctx.UlongToElementModQ(100)
		Expect(err).Should(BeNil())
		b, err := ctx.UlongToElementModQ(200)
		Expect(err).Should(BeNil())
		sum, err := a.Add(b)
		Expect(err).Should(BeNil())
		back, err := sum.Sub(b)
		Expect(err).Should(BeNil())
		Expect(back.Equal(a)).Should(BeTrue())

		prod, err := a.Mul(b)
		Expect(err).Should(BeNil())
		quotient, err := prod.Div(b)
		Expect(err).Should(BeNil())
		Expect(quotient.Equal(a)).Should(BeTrue())
	})

	It("MultInv of zero fails with ErrDomain", func() {
		_, err := ctx.ZeroModQ().MultInv()
		Expect(err).Should(Equal(ErrDomain))
	})

	It("RandomElementModQ stays in bounds", func() {
		for i := 0; i < 20; i++ {
			r, err := ctx.RandomElementModQ()
			Expect(err).Should(BeNil())
			Expect(r.InBounds()).Should(BeTrue())
		}
	})

	It("Bytes/Base64 round-trip", func() {
		a, err := ctx.UlongToElementModQ(999)
		Expect(err).Should(BeNil())
		back, err := ctx.Base64ToElementModQ(a.Base64())
		Expect(err).Should(BeNil())
		Expect(back.Equal(a)).Should(BeTrue())
	})
})
