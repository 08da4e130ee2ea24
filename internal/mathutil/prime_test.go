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
package mathutil

import (
	"crypto/rand"
	"math/big"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Prime", func() {
	DescribeTable("GenerateRandomSafePrime()", func(size int) {
		p, q, err := GenerateRandomSafePrime(rand.Reader, size)
		Expect(err).Should(BeNil())
		Expect(p.ProbablyPrime(1)).Should(BeTrue())
		Expect(q.ProbablyPrime(1)).Should(BeTrue())
		Expect(p.BitLen()).Should(Equal(size))

		pMinus1 := new(big.Int).Sub(p, big1)
		halved := new(big.Int).Rsh(pMinus1, 1)
		Expect(halved.Cmp(q)).Should(BeZero())
	},
		Entry("size = 33", 33),
		Entry("size = 1024", 1024),
	)

	Context("GenerateRandomSafePrime()", func() {
		It("rejects a bit size too small to hold a safe prime", func() {
			p, q, err := GenerateRandomSafePrime(rand.Reader, 2)
			Expect(p).Should(BeNil())
			Expect(q).Should(BeNil())
			Expect(err).Should(Equal(ErrSmallSafePrime))
		})
	})
})
