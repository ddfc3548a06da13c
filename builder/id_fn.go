// Package builder provides the vertex-ID schemes used by constructors.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to its node payload.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A".
// Panics if idx is out of range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns the spreadsheet column name for idx:
// 0→"A", 25→"Z", 26→"AA", 27→"AB".
// Complexity: O(log₂₆ idx). Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append(buf, byte('A'+i%26))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// AlphanumericIDFn returns idx in base 36, e.g. 10→"a", 36→"10".
// Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}

// PrefixIDFn returns an IDFn producing prefix + decimal index ("v0", "v1", ...).
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixIDFn: idx must be ≥ 0, got %d", idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithAlphanumericIDs sets the ID scheme to AlphanumericIDFn.
func WithAlphanumericIDs() BuilderOption { return WithIDScheme(AlphanumericIDFn) }

// WithPrefixIDs sets the ID scheme to PrefixIDFn(prefix).
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(PrefixIDFn(prefix)) }

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption { return WithIDScheme(DefaultIDFn) }
