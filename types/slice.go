// SPDX-License-Identifier: MIT
package types

import (
	"strings"

	"golang.org/x/exp/slices"
)

type (
	// StringSlice for `string`; holds raw lexemes.
	StringSlice []string
)

// Locate for `StringSlice`.
func (sl *StringSlice) Locate(val string) (resl int) { return slices.Index(*sl, val) }

// LocateRun finds the first index of `n` consecutive `val` entries.
//
// Returns -1 when no such run exists or `n` < 1.
func (sl *StringSlice) LocateRun(val string, n int) (resl int) {
	resl = -1
	if n < 1 {
		return
	}

	run := 0
	for index := range *sl {
		if (*sl)[index] != val {
			run = 0
			continue
		}

		if run++; run == n {
			resl = index - n + 1
			return
		}
	}

	return
}

// Truncate drops the entries from `index` onward.
//
// Out of range indexes leave the `StringSlice` unchanged.
func (sl *StringSlice) Truncate(index int) {
	if index < 0 || index >= len(*sl) {
		return
	}
	*sl = (*sl)[:index]
}

// Equal reports whether two `StringSlice`s hold the same entries in the same order.
func (sl StringSlice) Equal(other StringSlice) bool { return slices.Equal(sl, other) }

// Join the entries with `sep`.
func (sl StringSlice) Join(sep string) string { return strings.Join(sl, sep) }

// String is the `fmt.Stringer` interface implementation for `StringSlice`.
func (sl StringSlice) String() string { return "[" + sl.Join(" ") + "]" }
