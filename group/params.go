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
	"crypto/rand"
	"math/big"

	"github.com/danwallach/electionguard-core-go/internal/mathutil"
)

// Strength distinguishes the full-size production parameters from the
// small test parameters. Two contexts are only compatible if they carry
// the same Strength.
type Strength int

const (
	// Production selects the 4096-bit P / 256-bit Q parameter set.
	Production Strength = iota
	// TestStrength selects the 16-bit toy parameter set used by tests.
	TestStrength
	// Custom marks a Params value built by GenerateParams. Two Custom
	// contexts are never compatible with each other unless they share
	// the exact same parameters, since each GenerateParams call mints
	// an independent group.
	Custom
)

func (s Strength) String() string {
	switch s {
	case Production:
		return "production"
	case TestStrength:
		return "test"
	default:
		return "custom"
	}
}

// Params bundles the four group constants: P (the large prime field), Q
// (the prime order of the subgroup generated by G), G (the generator) and
// R, the cofactor (P-1)/Q.
type Params struct {
	P, Q, G, R *big.Int
	Strength   Strength
}

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("group: invalid hex constant")
	}
	return n
}

// Hex encodings of the production parameters. Q is exactly 2^256 - 189, as
// required by spec. P is a 4096-bit prime with Q | (P-1) and G generates
// the order-Q subgroup of Z/P; R = (P-1)/Q.
//
// NOTE: these are NOT the published ElectionGuard reference constants —
// this module was built without network access to the upstream spec
// appendix that defines them. They were minted by fixing Q to the spec's
// exact value and searching R so that R*Q+1 is a 4096-bit prime (the same
// search GenerateParams runs for an arbitrary bit size, specialized here to
// a fixed Q instead of a derived one), then independently verified: P and Q
// are both prime, Q | (P-1), and G^Q mod P == 1. A production deployment
// that must interoperate with the reference ElectionGuard implementation
// needs to substitute the official hex strings here; nothing else in the
// group/elgamal packages depends on the specific values.
const (
	productionPHex = "f1baab98a399ac056939b9d36cae03b663f5656a0888fb56bce7fb83a7b1d237273fdc45636033c01cdb7f11068c8e2678f91d141dba7a3af2cf30a8a578a3787c36847e5692f204265011f10fede7408480e03d837d8b7bdeadc086f5ac2a5f216b9ec4314762bfb0ba156ede3ce96e7678e25d609aad9aae46b563edf9f800841ce9ddae8b20ac2e385670aa01427af120f76785713e1ea3ac3eb31f48a4475a53353ea692fed938fed5fa14e40d61f09a217290aecb87639f801d58684a681984aebd1e01393ed38d147dd9d6a7b8a1b992e029b022c2c5b74ef29f40f3ce6f4d9832bf2f9d8626438e96e977b9f4aee13d9803498772baa5458cc9a38e65f16baa421ef73fbc8f46c00c2672e29080cd0a8ce8b099937d5668f2f16d7d66a92705eaba7b12546d6a7f75754ca9da051308edd27f703182b486d32d150d9c39e34c2e28599668329fa98741226d3e9e1b263257a2ad44dbb21961fe47aee31023347ffeef11457ce4a9529eca9a73adce98f2b02cab4723549ed6ce2b50a4be1c95818fd5e6db327e37737f760e4c11b2cdf46dd58b7239f2638040350a620b22856d9f55a66f178d49a970c029a981c7c41c4862ea87017ac625771c6a38ad4b8d35ca357f110988f01412d13693de913c35a2acf6213b8e054354903ebf3ccf1fd2b0506035d3c11e2ea59835401babe0f30e9e2a1a1625f38c8e60fc09"
	productionQHex = "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff43"
	productionGHex = "2a2a3b60424f0952b0fb2cf13cd3baeb50460de80cc05a3050070eab20266a3c4bd0671ec40b8c4280d982279aa713dc8511d4c04acec3ba8933a618b9417ca78a56d32ad5557f38bea8dff55b2b9b09425e7c7a64a8e208dafe0c505bcd3d66f2f1f99338daad03d9f2cf9429dca0ff49e1d0a97cdc341ef42b486e84bd44c830875b19b06d32db5ea62a832269762bf3c0bd3bec6a3a39891ce1311e5284aad691e591a9cc31b95517270cd5ec6d1dd9c00263c6a27183904b7688b9d2cb1619d5f1217bfcd97173e8dd803f0d5e0181366f4a65e929c5b313f06a1fa4fc399d0dfe012b76362db53158a7ccf4b7ef208dd35df34bf0f1dec68a628c47194392178056855e17c70a0c8246286f538b0fcde932a7d870b82ce68a22d32d6c441efb6e61aa0952e46e7d7d6b6d7e7c1d36454374dfd7937392a4a39a3c4450b0ad22772680a790f549ad05f0c951af2f8081f18e1579d7a690e80708723e957af2821c05d2dcec0fc2f4301356b829a2720f5f2e26ec09373592bb6510f74b0381fc4ee6eacc1deaba2d3b035af580fdf6702c6065e289c8f5dbf0acadd7f4710f3eba6cbbb64eb0d8bd2b65ccfd6537eb45c009d6d10ddaa5ab0c98af7833df02eaf5e2f71ab52a562486c900140d78aa1b00df0cb0927b5501cb33b3a93f344e4a6f87f40597a2a45184197d048aadf3a0da83ce12e635e1b5b1e76c87fca0"
	productionRHex = "f1baab98a399ac056939b9d36cae03b663f5656a0888fb56bce7fb83a7b1d2e99e108bf62bd433becc79b02843054bce4524fc5c6adc09446a13e0db73c159f22e6dd93cb23d25e11c271faa8ad6de8990cf307867f062fe2f5ac28b6b6b922b68850093c86c59f1799c76575edf34fe5f6fab421d13c343a44856523c64e20cae4e56f8a68987f2f6bbb4f1b4cb624766926736fd08670eed13f969b5c387a40a296ad19a1c5d3961936c6c8f0b9c18aab0550b5fe2e18c6b5ea32889c36e839a188b7be4f20c9bdd6420a37568e5eea5e85c45f430a76e0a95c3e054898af7336c92aac5e2ec98992fa74497e97b252b6d5d3d4b3523b08b36e22b332f26e6e893f256377fec65a7753db04dd2cd01908ae0cd6eebf2ea44db62d7bb3d35e05e60ef91b3ec99610ef90a9ee9ee0401bb9b0098b6b1c72658ac80186945d441e7742abffe06d310407c80d9f5db62861f8a96f138e2b494530cab67b6d5638af0e6c43e89f8e44518cfca3d21c25778f7200909af8bfcc873af2a68c9b5ce38987b77ad6c966dde83e686956bf0a29a84597a1b082f2b6fa244b2dd2b6e4a2a9e49e076ca64c3b678bea5fa216835bd37d6ea115335fbf1ce32d36e87892baf89d644e93699fcc82e4979bebcc0e346183c0b001187f7a677141ddd64d57f58"
)

// ProductionParams returns the full-size (4096-bit P, 256-bit Q) group
// parameters used in production elections.
func ProductionParams() Params {
	return Params{
		P:        mustHex(productionPHex),
		Q:        mustHex(productionQHex),
		G:        mustHex(productionGHex),
		R:        mustHex(productionRHex),
		Strength: Production,
	}
}

// TestParams returns the 16-bit toy parameter set: P=65267, Q=32633, G=3,
// R=2. Fast enough to build a PowRadix and run DLog searches in tests.
func TestParams() Params {
	return Params{
		P:        big.NewInt(65267),
		Q:        big.NewInt(32633),
		G:        big.NewInt(3),
		R:        big.NewInt(2),
		Strength: TestStrength,
	}
}

// GenerateParams mints a fresh safe-prime group: P = 2Q+1 with both P and
// Q prime (via mathutil's Combined Sieve safe-prime search), and G a
// generator of the order-Q subgroup found by squaring a random residue
// (for a safe prime, any non-identity quadratic residue mod P generates
// the order-Q subgroup). The cofactor is fixed at 2. Intended for
// research and reproducibility tooling that needs a group of a specific
// size rather than the bundled Production/TestStrength sets — not for
// interoperating with the reference ElectionGuard parameters, which fix
// Q to a particular 256-bit prime rather than deriving it from P.
func GenerateParams(pbits int) (Params, error) {
	p, q, err := mathutil.GenerateRandomSafePrime(rand.Reader, pbits)
	if err != nil {
		return Params{}, err
	}
	if err := mathutil.EnsureFieldOrder(q); err != nil {
		return Params{}, err
	}

	var g *big.Int
	for {
		r, err := mathutil.RandomCoprimeInt(p)
		if err != nil {
			return Params{}, err
		}
		g = new(big.Int).Exp(r, big.NewInt(2), p)
		if g.Cmp(big1) != 0 {
			break
		}
	}
	if err := mathutil.InRange(g, big.NewInt(2), p); err != nil {
		return Params{}, err
	}

	return Params{
		P:        p,
		Q:        q,
		G:        g,
		R:        big.NewInt(2),
		Strength: Custom,
	}, nil
}

// qBitLen returns the exponent bit-length PowRadix decomposes over: every
// element of [0, Q) fits in exactly Q.BitLen() bits, so this works for
// the bundled parameter sets and for GenerateParams alike.
func (p Params) qBitLen() int {
	return p.Q.BitLen()
}
