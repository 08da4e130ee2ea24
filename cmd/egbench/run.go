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

package main

import (
	"fmt"
	"math/big"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/danwallach/electionguard-core-go/elgamal"
	"github.com/danwallach/electionguard-core-go/group"
	"github.com/danwallach/electionguard-core-go/internal/mathutil"
	"github.com/danwallach/electionguard-core-go/logger"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "encrypt and decrypt a batch of random small plaintexts and report throughput",
	RunE: func(cmd *cobra.Command, args []string) error {
		count := viper.GetInt("count")
		if count <= 0 {
			count = 1000
		}
		tierName := viper.GetString("tier")
		groupName := viper.GetString("group")
		bits := viper.GetInt("bits")

		tier, err := parseTier(tierName)
		if err != nil {
			return err
		}

		var ctx *group.Context
		switch groupName {
		case "", "production":
			ctx = group.ProductionContext()
		case "test":
			ctx = group.TestContext()
		case "custom":
			if bits <= 0 {
				return fmt.Errorf("egbench: --bits must be positive when --group=custom")
			}
			logger.Logger().Info("generating custom safe-prime group", "bits", bits)
			params, err := group.GenerateParams(bits)
			if err != nil {
				return err
			}
			ctx = group.NewContext(params)
		default:
			return fmt.Errorf("egbench: unknown group %q (want production|test|custom)", groupName)
		}

		logger.Logger().Info("building keypair", "group", groupName, "tier", tierName)
		kp, err := elgamal.KeypairFromRandom(ctx)
		if err != nil {
			return err
		}
		if tier != group.NoAcceleration {
			accelerated, err := kp.PublicKey.AcceleratePow(tier)
			if err != nil {
				return err
			}
			kp.PublicKey = accelerated
		}

		start := time.Now()
		for i := 0; i < count; i++ {
			r, err := mathutil.RandomInt(big.NewInt(1000))
			if err != nil {
				return err
			}
			message := r.Int64()
			c, err := elgamal.Encrypt(ctx, message, kp.PublicKey)
			if err != nil {
				return err
			}
			got, err := elgamal.Decrypt(ctx, c, kp.Secret)
			if err != nil {
				return err
			}
			if got != message {
				return fmt.Errorf("egbench: round-trip mismatch at i=%d: want %d got %d", i, message, got)
			}
		}
		elapsed := time.Since(start)

		opsPerSec := float64(count) / elapsed.Seconds()
		logger.Logger().Info("benchmark complete",
			"count", count,
			"elapsed", elapsed,
			"opsPerSec", opsPerSec,
		)
		fmt.Printf("encrypted+decrypted %d messages in %s (%.1f ops/sec)\n", count, elapsed, opsPerSec)
		return nil
	},
}

func parseTier(s string) (group.PowRadixOption, error) {
	switch s {
	case "", "none":
		return group.NoAcceleration, nil
	case "low":
		return group.LowMemoryUse, nil
	case "high":
		return group.HighMemoryUse, nil
	case "extreme":
		return group.ExtremeMemoryUse, nil
	default:
		return group.NoAcceleration, fmt.Errorf("egbench: unknown tier %q (want none|low|high|extreme)", s)
	}
}

func init() {
	runCmd.Flags().Int("count", 1000, "number of messages to encrypt and decrypt")
	runCmd.Flags().String("tier", "none", "PowRadix acceleration tier for the public key: none|low|high|extreme")
	runCmd.Flags().String("group", "production", "group parameter set: production|test|custom")
	runCmd.Flags().Int("bits", 0, "bit size for a freshly generated safe-prime group (only with --group=custom)")
}
