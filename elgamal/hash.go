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

package elgamal

import "golang.org/x/crypto/blake2b"

// HashCiphertext returns the blake2b-256 digest of c's Pad and Data
// elements, concatenated as big-endian byte strings. Used to bind a
// ciphertext into a transcript (e.g. a Chaum-Pedersen challenge, out of
// scope here) without exposing the plaintext.
func HashCiphertext(c *Ciphertext) [32]byte {
	bs := append(append([]byte{}, c.Pad.Bytes()...), c.Data.Bytes()...)
	return blake2b.Sum256(bs)
}
