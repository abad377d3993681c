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

	"github.com/spf13/cobra"

	"github.com/cohera-platform/seqgen"
	"github.com/cohera-platform/seqgen/fixture"
)

var drawFlags struct {
	seed  int64
	min   int64
	max   int64
	count int
}

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Print bounded integers drawn from a seeded generator",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen := seqgen.New(drawFlags.seed)
		for i := 0; i < drawFlags.count; i++ {
			v, err := gen.Draw(drawFlags.min, drawFlags.max)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return nil
	},
}

var permFlags struct {
	seed int64
	n    int
}

var permCmd = &cobra.Command{
	Use:   "perm",
	Short: "Print a deterministic permutation of [0, n)",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, v := range fixture.New(permFlags.seed).Perm(permFlags.n) {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return nil
	},
}

var idsFlags struct {
	seed  int64
	count int
}

var idsCmd = &cobra.Command{
	Use:   "ids",
	Short: "Print fake documentation IDs",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, id := range fixture.New(idsFlags.seed).IDs(idsFlags.count) {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

func init() {
	drawCmd.Flags().Int64Var(&drawFlags.seed, "seed", 0, "generator seed")
	drawCmd.Flags().Int64Var(&drawFlags.min, "min", 0, "inclusive lower bound")
	drawCmd.Flags().Int64Var(&drawFlags.max, "max", 10, "exclusive upper bound")
	drawCmd.Flags().IntVar(&drawFlags.count, "count", 10, "number of draws")

	permCmd.Flags().Int64Var(&permFlags.seed, "seed", 0, "generator seed")
	permCmd.Flags().IntVar(&permFlags.n, "n", 10, "permutation size")

	idsCmd.Flags().Int64Var(&idsFlags.seed, "seed", 0, "generator seed")
	idsCmd.Flags().IntVar(&idsFlags.count, "count", 10, "number of IDs")

	rootCmd.AddCommand(drawCmd, permCmd, idsCmd)
}
