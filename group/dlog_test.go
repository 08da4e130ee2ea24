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
	"sync"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("DLog", func() {
	It("inverts GPowPSmall for small exponents", func() {
		ctx := NewContext(TestParams())
		for _, x := range []int64{0, 1, 2, 5, 100, 777} {
			elem, err := ctx.GPowPSmall(x)
			Expect(err).Should(BeNil())
			got, err := ctx.DLog(elem)
			Expect(err).Should(BeNil())
			Expect(got).Should(BeEquivalentTo(x))
		}
	})

	It("is safe for concurrent callers racing the same frontier", func() {
		ctx := NewContext(TestParams())
		target, err := ctx.GPowPSmall(500)
		Expect(err).Should(BeNil())

		var wg sync.WaitGroup
		results := make([]int64, 32)
		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				x, err := ctx.DLog(target)
				Expect(err).Should(BeNil())
				results[i] = x
			}(i)
		}
		wg.Wait()
		for _, r := range results {
			Expect(r).Should(BeEquivalentTo(500))
		}
	})

	It("rejects elements from an incompatible context", func() {
		ctx := NewContext(TestParams())
		other := ProductionContext()
		_, err := ctx.DLog(other.OneModP())
		Expect(err).Should(Equal(ErrIncompatibleContext))
	})
})
