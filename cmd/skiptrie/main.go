// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// skiptrie is a benchmarking tool for the skiptrie library.
package main

import (
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	concurrency  int
	duration     time.Duration
	keySpace     uint64
	keyDist      string
	initialKeys  uint64
	maxOpsPerSec float64
	readPercent  int
)

var rootCmd = &cobra.Command{
	Use:   "skiptrie [command] (flags)",
	Short: "skiptrie benchmarking tool",
	Long:  ``,
}

var benchCmd = &cobra.Command{
	Use:   "bench [command] (flags)",
	Short: "run a skiptrie benchmark",
	Long:  ``,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	benchCmd.AddCommand(
		writeCmd,
		readCmd,
		mixedCmd,
	)
	rootCmd.AddCommand(benchCmd)

	for _, cmd := range []*cobra.Command{writeCmd, readCmd, mixedCmd} {
		cmd.Flags().IntVarP(
			&concurrency, "concurrency", "c", 1, "number of concurrent workers")
		cmd.Flags().DurationVarP(
			&duration, "duration", "d", 10*time.Second, "the duration to run")
		cmd.Flags().Uint64Var(
			&keySpace, "keys", 1000000, "size of the key space")
		cmd.Flags().StringVar(
			&keyDist, "key-dist", "uniform", "key distribution (uniform | zipf)")
		cmd.Flags().Float64Var(
			&maxOpsPerSec, "rate", 0, "maximum operations per second (0 for unlimited)")
	}
	for _, cmd := range []*cobra.Command{readCmd, mixedCmd} {
		cmd.Flags().Uint64Var(
			&initialKeys, "initial-keys", 100000, "number of keys to preload")
	}
	mixedCmd.Flags().IntVar(
		&readPercent, "read-percent", 75, "percentage of operations that are reads")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
