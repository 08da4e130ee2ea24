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

// Package elgamal implements exponential ElGamal encryption over the
// prime-order subgroup exposed by package group. Ciphertexts are
// additively homomorphic in their plaintext: Add(Encrypt(a), Encrypt(b))
// decrypts to a+b, at the cost of recovering the plaintext through a
// bounded discrete-log search instead of a direct inverse.
package elgamal

import (
	"errors"
	"math/big"

	"github.com/danwallach/electionguard-core-go/group"
)

var (
	// ErrEmptyCiphertextSum is returned by AddCiphertexts when given no
	// ciphertexts to sum; there is no identity ciphertext to fall back to
	// without a Context to draw OneModP from, so this is a caller error
	// rather than a silent no-op.
	ErrEmptyCiphertextSum = errors.New("elgamal: cannot sum zero ciphertexts")
	// ErrIncompatibleContext names operands drawn from group contexts of
	// different Strength. No function in this package returns it: mixed
	// contexts are reported with group.ErrIncompatibleContext, passed
	// through unchanged from the group operations.
	ErrIncompatibleContext = errors.New("elgamal: incompatible contexts")
	// ErrInvalidArgument is returned for malformed caller input: a
	// negative message, a zero encryption nonce, or a secret key below
	// minSecret.
	ErrInvalidArgument = errors.New("elgamal: invalid argument")

	minSecret = big.NewInt(2)
)

// Keypair is an ElGamal secret/public keypair: PublicKey = G^Secret mod P.
type Keypair struct {
	Secret    *group.ElementModQ
	PublicKey *group.ElementModP
}

// Ciphertext is an exponential ElGamal ciphertext (Pad, Data) =
// (G^nonce, PublicKey^nonce * G^message) mod P.
type Ciphertext struct {
	Pad  *group.ElementModP
	Data *group.ElementModP
}

// KeypairFromSecret derives the keypair for an already-chosen secret key.
// It fails with ErrInvalidArgument if secret < 2: 0 and 1 are excluded
// because they make the public key trivially recoverable (G^0=1, G^1=G).
func KeypairFromSecret(ctx *group.Context, secret *group.ElementModQ) (*Keypair, error) {
	if secret.BigInt().Cmp(minSecret) < 0 {
		return nil, ErrInvalidArgument
	}
	pub, err := ctx.GPowP(secret)
	if err != nil {
		return nil, err
	}
	return &Keypair{Secret: secret, PublicKey: pub}, nil
}

// KeypairFromRandom draws a uniformly random secret key in [2, Q) and
// derives the corresponding keypair.
func KeypairFromRandom(ctx *group.Context) (*Keypair, error) {
	secret, err := ctx.RandomElementModQ(2)
	if err != nil {
		return nil, err
	}
	return KeypairFromSecret(ctx, secret)
}

// Encrypt draws a random nonce in [1, Q) and encrypts message under
// publicKey. Fails with ErrInvalidArgument if message < 0.
func Encrypt(ctx *group.Context, message int64, publicKey *group.ElementModP) (*Ciphertext, error) {
	if message < 0 {
		return nil, ErrInvalidArgument
	}
	nonce, err := ctx.RandomElementModQ(1)
	if err != nil {
		return nil, err
	}
	return EncryptWithNonce(ctx, message, publicKey, nonce)
}

// EncryptWithNonce encrypts message under publicKey using the given
// nonce, instead of drawing a fresh random one. Exposed so callers that
// need to prove knowledge of the nonce (e.g. in a Chaum-Pedersen proof,
// out of scope here) can supply one deterministically. Fails with
// ErrInvalidArgument if message < 0 or nonce == 0.
func EncryptWithNonce(ctx *group.Context, message int64, publicKey *group.ElementModP, nonce *group.ElementModQ) (*Ciphertext, error) {
	if message < 0 || nonce.BigInt().Sign() == 0 {
		return nil, ErrInvalidArgument
	}
	pad, err := ctx.GPowP(nonce)
	if err != nil {
		return nil, err
	}
	shared, err := publicKey.PowP(nonce)
	if err != nil {
		return nil, err
	}
	gMessage, err := ctx.GPowPSmall(message)
	if err != nil {
		return nil, err
	}
	data, err := shared.Mul(gMessage)
	if err != nil {
		return nil, err
	}
	return &Ciphertext{Pad: pad, Data: data}, nil
}

// Decrypt recovers the plaintext message using the secret key, via a
// bounded discrete-log search over G.
func Decrypt(ctx *group.Context, c *Ciphertext, secret *group.ElementModQ) (int64, error) {
	shared, err := c.Pad.PowP(secret)
	if err != nil {
		return 0, err
	}
	sharedInv, err := shared.MultInv()
	if err != nil {
		return 0, err
	}
	gMessage, err := c.Data.Mul(sharedInv)
	if err != nil {
		return 0, err
	}
	return ctx.DLog(gMessage)
}

// DecryptWithNonce recovers the plaintext using the public key and the
// encryption nonce, instead of the secret key — useful when the
// decrypting party only knows the nonce it used to encrypt, not the
// recipient's secret.
func DecryptWithNonce(ctx *group.Context, c *Ciphertext, publicKey *group.ElementModP, nonce *group.ElementModQ) (int64, error) {
	shared, err := publicKey.PowP(nonce)
	if err != nil {
		return 0, err
	}
	sharedInv, err := shared.MultInv()
	if err != nil {
		return 0, err
	}
	gMessage, err := c.Data.Mul(sharedInv)
	if err != nil {
		return 0, err
	}
	return ctx.DLog(gMessage)
}

// Add returns the homomorphic sum of two ciphertexts: componentwise
// modular multiplication of Pad and Data, which decrypts to the sum of
// the two plaintexts.
func Add(a, b *Ciphertext) (*Ciphertext, error) {
	pad, err := a.Pad.Mul(b.Pad)
	if err != nil {
		return nil, err
	}
	data, err := a.Data.Mul(b.Data)
	if err != nil {
		return nil, err
	}
	return &Ciphertext{Pad: pad, Data: data}, nil
}

// AddCiphertexts sums an arbitrary number of ciphertexts homomorphically.
// It fails with ErrEmptyCiphertextSum given no ciphertexts, rather than
// returning an identity ciphertext: there is no Context available here to
// draw the identity ciphertext (OneModP, OneModP) from, so the empty
// case has no principled result to return.
func AddCiphertexts(cs ...*Ciphertext) (*Ciphertext, error) {
	if len(cs) == 0 {
		return nil, ErrEmptyCiphertextSum
	}
	sum := cs[0]
	for _, c := range cs[1:] {
		var err error
		sum, err = Add(sum, c)
		if err != nil {
			return nil, err
		}
	}
	return sum, nil
}

// CombinePublicKeys combines guardian public keys into the joint election
// public key, PublicKey = prod(PublicKey_i).
func CombinePublicKeys(keys ...*group.ElementModP) (*group.ElementModP, error) {
	if len(keys) == 0 {
		return nil, ErrEmptyCiphertextSum
	}
	product := keys[0]
	for _, k := range keys[1:] {
		var err error
		product, err = product.Mul(k)
		if err != nil {
			return nil, err
		}
	}
	return product, nil
}

// PartialDecrypt computes one guardian's share of a threshold decryption:
// c.Pad raised to that guardian's secret key share.
func PartialDecrypt(c *Ciphertext, secretShare *group.ElementModQ) (*group.ElementModP, error) {
	return c.Pad.PowP(secretShare)
}

// CombinePartialDecryptions combines guardian partial decryption shares
// and the ciphertext's Data component into the recovered plaintext,
// again via a bounded discrete-log search.
func CombinePartialDecryptions(ctx *group.Context, c *Ciphertext, shares ...*group.ElementModP) (int64, error) {
	if len(shares) == 0 {
		return 0, ErrEmptyCiphertextSum
	}
	product := shares[0]
	for _, s := range shares[1:] {
		var err error
		product, err = product.Mul(s)
		if err != nil {
			return 0, err
		}
	}
	inv, err := product.MultInv()
	if err != nil {
		return 0, err
	}
	gMessage, err := c.Data.Mul(inv)
	if err != nil {
		return 0, err
	}
	return ctx.DLog(gMessage)
}
