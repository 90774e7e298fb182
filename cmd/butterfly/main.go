// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Command butterfly computes Hofstadter-butterfly spectra, one
// subcommand per row of spec.md §6, grounded on
// original_source/src/bin/main.rs.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/colt-browning/hofstadter-butterfly/farey"
	"github.com/colt-browning/hofstadter-butterfly/internal/cli"
	"github.com/spf13/cobra"
)

var (
	underlyingTypeFlag string
	underlyingType     cli.UnderlyingType
	logger             = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
)

func main() {
	root := &cobra.Command{
		Use:   "butterfly",
		Short: "Compute Hofstadter-butterfly spectra for rational magnetic flux",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ut, err := cli.ParseUnderlyingType(underlyingTypeFlag)
			if err != nil {
				return err
			}
			underlyingType = ut
			return nil
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&underlyingTypeFlag, "type", "t", "d",
		"underlying numeric type: f (float64) or d (arbitrary precision)")

	root.AddCommand(
		trqCmd(),
		trqUptoCmd(),
		intervalsCmd(),
		intervalsUptoCmd(),
		intervalsFareyCmd(),
		checkCmd(),
		checkFullCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseUint(cmd *cobra.Command, s string) uint {
	var n uint
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		logger.Fatal("invalid unsigned integer argument", "arg", s, "err", err)
	}
	return n
}

func trqCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trq p q",
		Short: "Print the coefficients of T_{p/q}",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, q := parseUint(cmd, args[0]), parseUint(cmd, args[1])
			s, err := cli.Trq(underlyingType, p, q)
			if err != nil {
				return err
			}
			fmt.Println(s)
			return nil
		},
	}
}

func trqUptoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trq-upto qmax",
		Short: "Print T_{p/q} for every coprime p in [1, q/2], q in [1, qmax]",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			qmax := parseUint(cmd, args[0])
			for q := uint(1); q <= qmax; q++ {
				for _, p := range cli.CoprimeNumerators(1, q) {
					s, err := cli.Trq(underlyingType, p, q)
					if err != nil {
						return err
					}
					fmt.Printf("[%d, %d] -> %s,\n", p, q, s)
				}
			}
			return nil
		},
	}
}

func intervalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intervals p q",
		Short: "Print the band count and band list for p/q",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, q := parseUint(cmd, args[0]), parseUint(cmd, args[1])
			n, s, err := cli.Intervals(underlyingType, p, q)
			if err != nil {
				return err
			}
			fmt.Printf("%d [%s]\n", n, s)
			return nil
		},
	}
}

func intervalsUptoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intervals-upto qmax",
		Short: "Print intervals_auto(p, q) for every coprime p in [0, q/2], q in [1, qmax]",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			qmax := parseUint(cmd, args[0])
			accu := 4
			for q := uint(1); q <= qmax; q++ {
				for _, p := range cli.CoprimeNumerators(0, q) {
					s, achieved, ok, err := cli.IntervalsAuto(underlyingType, p, q, accu)
					if err != nil {
						return err
					}
					if !ok {
						logger.Warn("accuracy not found, surfacing last attempt", "p", p, "q", q, "accu", achieved)
					}
					accu = achieved
					fmt.Printf("%d/%d: %s\n", p, q, s)
				}
			}
			return nil
		},
	}
}

func intervalsFareyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intervals-farey n",
		Short: "Sweep the n-th Farey-mediant expansion of [0, 1/2]",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := int(parseUint(cmd, args[0]))
			accu := 4
			for _, f := range farey.Sequence(n) {
				s, achieved, ok, err := cli.IntervalsAuto(underlyingType, f.P, f.Q, accu)
				if err != nil {
					return err
				}
				if !ok {
					logger.Warn("accuracy not found, surfacing last attempt", "p", f.P, "q", f.Q, "accu", achieved)
				}
				accu = achieved
				fmt.Printf("%d/%d: %s\n", f.P, f.Q, s)
			}
			return nil
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the band-count invariant for p=1, q=2,3,...",
		RunE: func(cmd *cobra.Command, args []string) error {
			for q := uint(2); ; q++ {
				n, _, err := cli.Intervals(underlyingType, 1, q)
				if err != nil {
					return err
				}
				if !cli.ExpectedBandCount(n, q) {
					fmt.Printf("%d fail\n", q)
					return nil
				}
				if q > 100 || q%10 == 0 {
					fmt.Printf("%d ok\n", q)
				}
			}
		},
	}
}

func checkFullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-full",
		Short: "Verify the band-count invariant for every coprime p in [2, q/2], q=2,3,...",
		RunE: func(cmd *cobra.Command, args []string) error {
			for q := uint(2); ; q++ {
				failed := false
				for _, p := range cli.CoprimeNumerators(2, q) {
					n, _, err := cli.Intervals(underlyingType, p, q)
					if err != nil {
						return err
					}
					if !cli.ExpectedBandCount(n, q) {
						fmt.Printf("%d/%d fail\n", p, q)
						failed = true
						break
					}
				}
				if failed {
					return nil
				}
				if q > 100 || q%10 == 0 {
					fmt.Printf("%d ok\n", q)
				}
			}
		},
	}
}
