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
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("PowRadix", func() {
	ctx := TestContext()

	DescribeTable("matches generic modpow across tiers", func(tier PowRadixOption) {
		base := ctx.GModP()
		pr, err := newPowRadix(base, tier)
		Expect(err).Should(BeNil())

		for _, exp := range []int64{0, 1, 2, 17, 1000, 32632} {
			e := big.NewInt(exp)
			got, err := pr.powP(e)
			Expect(err).Should(BeNil())

			want := new(big.Int).Exp(base.residue, e, ctx.params.P)
			Expect(got.residue.Cmp(want)).Should(BeZero())
		}
	},
		Entry("no acceleration", NoAcceleration),
		Entry("low memory", LowMemoryUse),
		Entry("high memory", HighMemoryUse),
	)

	It("AcceleratePow produces an equivalent element", func() {
		base := ctx.GModP()
		accel, err := base.AcceleratePow(LowMemoryUse)
		Expect(err).Should(BeNil())
		Expect(accel.Equal(base)).Should(BeTrue())

		exp, err := ctx.UlongToElementModQ(123)
		Expect(err).Should(BeNil())

		viaAccel, err := accel.PowP(exp)
		Expect(err).Should(BeNil())
		viaPlain, err := base.PowP(exp)
		Expect(err).Should(BeNil())
		Expect(viaAccel.Equal(viaPlain)).Should(BeTrue())
	})
})
