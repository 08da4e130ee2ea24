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
	"sync"
)

// maxDLogSearch caps how far solve will ever walk the discrete-log table.
// Tallies beyond one billion exceed anything a real election produces and
// would otherwise let a malformed ciphertext spin the solver forever.
const maxDLogSearch = 1_000_000_000

// dlogCache is a thread-safe, monotonically growing table mapping G^x mod P
// back to x, for x = 0, 1, 2, .... It never forgets an entry and never
// rolls one back: a lookup past the current frontier extends the table
// under a single mutex, so concurrent callers share the work instead of
// duplicating it.
type dlogCache struct {
	ctx *Context

	// mu guards every lookup, not just extension: a cache hit still takes
	// the lock. Fully serializing reads trades away read concurrency for a
	// simpler correctness argument than a RWMutex + double-checked-lock
	// extension path would need. Revisit if DLog lookups show up as a
	// contention point under concurrent guardian decryption.
	mu        sync.Mutex
	table     map[string]int64 // big.Int.String() -> exponent
	frontier  *big.Int         // G^frontierExp mod P, the next value to record
	frontierN int64
}

func newDLogCache(ctx *Context) *dlogCache {
	d := &dlogCache{
		ctx:       ctx,
		table:     make(map[string]int64),
		frontier:  big.NewInt(1), // G^0 == 1
		frontierN: 0,
	}
	d.table[d.frontier.String()] = 0
	return d
}

// solve returns the smallest x in [0, maxDLogSearch] such that G^x mod P
// equals target, extending the cache's table as far as necessary. It fails
// with ErrOutOfRange if no such x exists within the cap.
func (d *dlogCache) solve(target *big.Int) (int64, error) {
	key := target.String()

	d.mu.Lock()
	defer d.mu.Unlock()

	if x, ok := d.table[key]; ok {
		return x, nil
	}

	// Re-check is implicit: we hold the lock continuously from the first
	// lookup above through the extension loop below, so there is no
	// window for another goroutine to have raced us to the same entry.
	// (A design that drops the lock between check and extend would need
	// to re-check after re-acquiring it; this one never drops it.)
	g := d.ctx.params.G
	p := d.ctx.params.P
	for d.frontierN < maxDLogSearch {
		d.frontier = mulMod(d.frontier, g, p)
		d.frontierN++
		// Keep the first (smallest) exponent recorded for an element; once
		// the walk passes the order of G, elements repeat.
		k := d.frontier.String()
		if _, seen := d.table[k]; !seen {
			d.table[k] = d.frontierN
		}
		if d.frontier.Cmp(target) == 0 {
			return d.frontierN, nil
		}
	}
	return 0, ErrOutOfRange
}
