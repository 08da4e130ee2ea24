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
	"io"
	"math/big"
)

// smallPrimeLimit bounds the sieve of small primes used to reject safe-prime
// candidates cheaply, before paying for a Pocklington check or a
// Miller-Rabin pass. 991 matches the sieve bound used in the Combined Sieve
// safe-prime search (https://eprint.iacr.org/2003/186.pdf).
const smallPrimeLimit = 991

// groupProductCap bounds how many small primes get batched into one
// modular-reduction group: their product must stay well under 2^63 so it
// fits a uint64 after the Mod.
const groupProductCap = uint64(1) << 62

// sievePrimeGroups and sievePrimeGroupProducts partition the primes in
// (3, smallPrimeLimit] into batches small enough to multiply into a single
// uint64. A Q candidate failing any prime in a batch gets rejected via one
// big.Int Mod against that batch's product instead of smallPrimeLimit/6
// separate divisions.
var (
	sievePrimeGroups        [][]uint64
	sievePrimeGroupProducts []*big.Int
	prime3Product           *big.Int
)

func init() {
	primes := sieveOddPrimes(smallPrimeLimit)

	var group []uint64
	product := uint64(1)
	for _, p := range primes {
		if product > (groupProductCap-1)/p {
			sievePrimeGroups = append(sievePrimeGroups, group)
			sievePrimeGroupProducts = append(sievePrimeGroupProducts, new(big.Int).SetUint64(product))
			group = nil
			product = 1
		}
		group = append(group, p)
		product *= p
	}
	if len(group) > 0 {
		sievePrimeGroups = append(sievePrimeGroups, group)
		sievePrimeGroupProducts = append(sievePrimeGroupProducts, new(big.Int).SetUint64(product))
	}

	prime3Product = new(big.Int).Mul(big.NewInt(3), sievePrimeGroupProducts[0])
}

// sieveOddPrimes returns every prime in [5, limit] via a plain sieve of
// Eratosthenes. 2 and 3 are excluded: safe-prime candidates are always odd,
// and mod-3 rejection is handled separately by mod3 below.
func sieveOddPrimes(limit int) []uint64 {
	isComposite := make([]bool, limit+1)
	var primes []uint64
	for n := 2; n <= limit; n++ {
		if isComposite[n] {
			continue
		}
		for m := n * n; m <= limit; m += n {
			isComposite[m] = true
		}
		if n >= 5 {
			primes = append(primes, uint64(n))
		}
	}
	return primes
}

// GenerateRandomSafePrime searches for a safe prime p = 2q+1, with both p
// and q prime, of exactly pbits bits. The search follows the Combined Sieve
// algorithm (https://eprint.iacr.org/2003/186.pdf): batch-reject candidates
// divisible by a small prime before running the expensive Pocklington and
// Miller-Rabin checks.
func GenerateRandomSafePrime(rand io.Reader, pbits int) (*big.Int, *big.Int, error) {
	if pbits < 10 {
		return nil, nil, ErrSmallSafePrime
	}
	const upperbound = uint64(1024)
	bits := pbits - 1
	b := uint(bits % 8)
	if b == 0 {
		b = 8
	}
	bytes := make([]byte, (bits+7)/8)
	for {
		if _, err := io.ReadFull(rand, bytes); err != nil {
			return nil, nil, err
		}

		// Clear bits in the first byte to make sure the candidate has a size <= bits.
		bytes[0] &= uint8(int(1<<b) - 1)
		// Set the top two bits so that the product of two such values never
		// comes up a bit short.
		if b >= 2 {
			bytes[0] |= 3 << (b - 2)
		} else {
			// b == 1, since b cannot be zero.
			bytes[0] |= 1
			if len(bytes) > 1 {
				bytes[1] |= 0x80
			}
		}
		// Make the value odd; an even number this large is certainly not prime.
		bytes[len(bytes)-1] |= 1
		candidateQ := new(big.Int).SetBytes(bytes)

		// Move the candidate to q = 2 (mod 3), so neither q nor 2q+1 is a
		// multiple of 3; the steps of 6 below keep q odd and keep that residue.
		switch mod3(new(big.Int).Mod(candidateQ, prime3Product)) {
		case 1:
			candidateQ.Add(candidateQ, big4)
		case 0:
			candidateQ.Add(candidateQ, big2)
		}

	nextDelta:
		for delta := uint64(0); delta < upperbound; delta += 6 {
			q := new(big.Int).Add(candidateQ, new(big.Int).SetUint64(delta))
			for i, group := range sievePrimeGroups {
				if !survivesSieveGroup(q, sievePrimeGroupProducts[i], group) {
					continue nextDelta
				}
			}
			pMinus1 := new(big.Int).Lsh(q, 1)
			p := new(big.Int).Add(pMinus1, big1)
			if p.BitLen() != pbits || !confirmsSafePrime(pMinus1, p) {
				continue nextDelta
			}
			// No number is known to pass Pocklington's test and a
			// Miller-Rabin round simultaneously without being prime.
			if !q.ProbablyPrime(1) {
				continue nextDelta
			}
			return p, q, nil
		}
	}
}

// survivesSieveGroup reports whether m avoids every prime (and its
// safe-prime-disqualifying residue p/2) in group, checked via one Mod
// against the batch's precomputed product.
func survivesSieveGroup(m *big.Int, groupProduct *big.Int, group []uint64) bool {
	residue := new(big.Int).Mod(m, groupProduct).Uint64()
	for _, p := range group {
		r := residue % p
		if r == 0 || r == p>>1 {
			return false
		}
	}
	return true
}

// mod3 computes number % 3 via bit-parity counting, faster than a big.Int
// Mod against 3 directly.
func mod3(number *big.Int) int {
	ones, twos := 0, 0
	for i := 0; i < number.BitLen(); i += 2 {
		if number.Bit(i) != 0 {
			ones++
		}
	}
	for i := 1; i < number.BitLen(); i += 2 {
		if number.Bit(i) != 0 {
			twos++
		}
	}
	if ones > twos {
		return (ones - twos) % 3
	}
	return ((twos - ones) << 1) % 3
}

// confirmsSafePrime applies Pocklington's criterion to certify that
// p = pMinus1+1 is prime given that pMinus1/2 is (already) known prime:
// https://en.wikipedia.org/wiki/Pocklington_primality_test.
func confirmsSafePrime(pMinus1, p *big.Int) bool {
	return new(big.Int).Exp(big2, pMinus1, p).Cmp(big1) == 0
}
