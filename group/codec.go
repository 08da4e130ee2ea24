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

import "encoding/base64"

// base64Decode decodes s with the standard RFC 4648 alphabet (with
// padding). The empty string and malformed input are both reported via
// the returned bool, matching the rest of the codec's "ok" idiom.
func base64Decode(s string) ([]byte, bool) {
	if s == "" {
		return nil, false
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, false
	}
	return b, true
}

func base64Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
