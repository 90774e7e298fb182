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

// Package cli implements the behavior behind each cmd/butterfly
// subcommand, grounded on original_source/src/bin/main.rs's
// UnderlyingType dispatch and command match. It is kept independent of
// any flag-parsing library so it can be driven by cobra in
// cmd/butterfly and exercised directly from tests.
package cli

import (
	"fmt"
	"strings"

	"github.com/colt-browning/hofstadter-butterfly/farey"
	"github.com/colt-browning/hofstadter-butterfly/real"
	"github.com/colt-browning/hofstadter-butterfly/real/bigval"
	"github.com/colt-browning/hofstadter-butterfly/real/floatval"
	"github.com/colt-browning/hofstadter-butterfly/spectrum"
	"github.com/pkg/errors"
)

// UnderlyingType selects the real.Backend driving a run, mirroring
// main.rs's -t f / -t d flag.
type UnderlyingType byte

const (
	Float64       UnderlyingType = 'f'
	ArbitraryPrec UnderlyingType = 'd'
)

// ParseUnderlyingType accepts "f" or "d" (case-insensitive).
func ParseUnderlyingType(s string) (UnderlyingType, error) {
	switch strings.ToLower(s) {
	case "f":
		return Float64, nil
	case "d":
		return ArbitraryPrec, nil
	default:
		return 0, errors.Errorf("cli: unknown underlying type %q, want %q or %q", s, "f", "d")
	}
}

// startAccu is main.rs's hardcoded starting point for the
// accu-warm-start loops driven by intervals_upto/intervals_farey.
const startAccu = 4

// defaultAccu mirrors UnderlyingType::trq/intervals's hand-picked accu
// for a one-shot arbitrary-precision call: q*3/4 + 2, deep enough that
// the adaptive loop in IntervalsAuto rarely needs more than a step or
// two past it.
func defaultAccu(q uint) int {
	return int(q)*3/4 + 2
}

// Trq returns the comma-separated coefficients of T_{p/q}, lowest
// degree first, in the form main.rs's UnderlyingType::trq prints them.
func Trq(ut UnderlyingType, p, q uint) (string, error) {
	var coeffs []string
	switch ut {
	case Float64:
		t := spectrum.Trq[floatval.V](floatval.Backend{}, p, q, 0)
		for _, c := range t.Coeffs() {
			coeffs = append(coeffs, c.String())
		}
	case ArbitraryPrec:
		t := spectrum.Trq[bigval.V](bigval.Backend{}, p, q, defaultAccu(q))
		for _, c := range t.Coeffs() {
			coeffs = append(coeffs, c.String())
		}
	default:
		return "", errors.Errorf("cli: unknown underlying type %q", byte(ut))
	}
	return strings.Join(coeffs, ", "), nil
}

// formatBands renders bands as "lo..hi, lo..hi, ...".
func formatBands[T real.Value[T]](bands []spectrum.Band[T]) string {
	parts := make([]string, len(bands))
	for i, b := range bands {
		parts[i] = fmt.Sprintf("%s..%s", b.Lo.String(), b.Hi.String())
	}
	return strings.Join(parts, ", ")
}

// Intervals returns the band count and formatted band list for p/q, as
// main.rs's UnderlyingType::intervals.
func Intervals(ut UnderlyingType, p, q uint) (int, string, error) {
	switch ut {
	case Float64:
		bands := spectrum.Intervals[floatval.V](floatval.Backend{}, p, q, 0)
		return len(bands), formatBands(bands), nil
	case ArbitraryPrec:
		bands := spectrum.Intervals[bigval.V](bigval.Backend{}, p, q, defaultAccu(q))
		return len(bands), formatBands(bands), nil
	default:
		return 0, "", errors.Errorf("cli: unknown underlying type %q", byte(ut))
	}
}

// IntervalsAuto runs the adaptive-precision loop for p/q starting from
// accu and returns the formatted band list plus the achieved accu, as
// main.rs's UnderlyingType::intervals_auto. Meaningless for Float64
// (main.rs panics in that case; this port returns an error instead).
func IntervalsAuto(ut UnderlyingType, p, q uint, accu int) (string, int, bool, error) {
	if ut != ArbitraryPrec {
		return "", 0, false, errors.New("cli: intervals_auto makes no sense for the float64 backend")
	}
	bands, achieved, ok := spectrum.IntervalsAuto[bigval.V](bigval.Backend{}, p, q, accu)
	return formatBands(bands), achieved, ok, nil
}

// CoprimeNumerators lists p in [lo, q/2] with gcd(p, q) = 1, matching
// the `(lo..=q/2).filter(|x| coprime(*x, q))` pattern repeated
// throughout main.rs.
func CoprimeNumerators(lo, q uint) []uint {
	var out []uint
	for p := lo; p <= q/2; p++ {
		if farey.Coprime(p, q) {
			out = append(out, p)
		}
	}
	return out
}

// expectedBandCount is spec.md invariant 1: q if odd, q or q-1 if even.
func expectedBandCount(n int, q uint) bool {
	return n == int(q) || (q%2 == 0 && n == int(q)-1)
}

// ExpectedBandCount exposes expectedBandCount for the check/check_full
// commands in cmd/butterfly.
func ExpectedBandCount(n int, q uint) bool { return expectedBandCount(n, q) }
