// Copyright (C) 2025 Cohera Authors.
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

	"github.com/spacemonkeygo/monotime"
	"github.com/spf13/cobra"

	"github.com/cohera-platform/seqgen"
)

var checkFlags struct {
	seed  int64
	min   int64
	max   int64
	count int
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a long sequence and summarize the drawn values",
	Long: `check draws count values and prints a distribution summary. Every
value is verified to lie in [min, max); a violation fails the command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gen := seqgen.New(checkFlags.seed)
		dist := seqgen.NewIntDist(checkFlags.seed)
		for i := 0; i < checkFlags.count; i++ {
			v, err := gen.Draw(checkFlags.min, checkFlags.max)
			if err != nil {
				return err
			}
			if v < checkFlags.min || v >= checkFlags.max {
				return fmt.Errorf("draw %d: value %d outside [%d, %d)",
					i, v, checkFlags.min, checkFlags.max)
			}
			dist.Insert(v)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "count\t%d\n", dist.Count)
		fmt.Fprintf(out, "low\t%d\n", dist.Low)
		fmt.Fprintf(out, "high\t%d\n", dist.High)
		fmt.Fprintf(out, "avg\t%.2f\n", dist.Average())
		for _, q := range []float64{0.25, 0.5, 0.75, 0.9, 0.99} {
			fmt.Fprintf(out, "p%02.0f\t%d\n", q*100, dist.Query(q))
		}
		return nil
	},
}

var benchFlags struct {
	draws int
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure draw throughput",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen := seqgen.New(1)

		start := monotime.Monotonic()
		for i := 0; i < benchFlags.draws; i++ {
			if _, err := gen.Draw(0, 1<<31); err != nil {
				return err
			}
		}
		elapsed := monotime.Monotonic() - start

		fmt.Fprintf(cmd.OutOrStdout(), "%d draws in %s (%.0f draws/sec)\n",
			benchFlags.draws, elapsed,
			float64(benchFlags.draws)/elapsed.Seconds())
		return nil
	},
}

func init() {
	checkCmd.Flags().Int64Var(&checkFlags.seed, "seed", 0, "generator seed")
	checkCmd.Flags().Int64Var(&checkFlags.min, "min", 0, "inclusive lower bound")
	checkCmd.Flags().Int64Var(&checkFlags.max, "max", 1<<31, "exclusive upper bound")
	checkCmd.Flags().IntVar(&checkFlags.count, "count", 1000000, "number of draws")

	benchCmd.Flags().IntVar(&benchFlags.draws, "draws", 10000000, "number of draws")

	rootCmd.AddCommand(checkCmd, benchCmd)
}
