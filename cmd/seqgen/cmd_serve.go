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
	"net/http"

	"github.com/spf13/cobra"

	"github.com/cohera-platform/seqgen/present"
)

var serveFlags struct {
	addr string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve sequences over HTTP for documentation tooling",
	Long: `serve exposes the present package over HTTP. Paths:

  /draw, /draw/json  seed, min, max, count
  /perm, /perm/json  seed, n
  /ids, /ids/json    seed, count

Equal URLs always render equal bytes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "listening on %s\n", serveFlags.addr)
		return http.ListenAndServe(serveFlags.addr, present.HTTP())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.addr, "addr", "127.0.0.1:9000",
		"listen address")
	rootCmd.AddCommand(serveCmd)
}
