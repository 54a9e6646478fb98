// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ktx2

package ktx2

const (
	maxInt    = int(^uint(0) >> 1)
	maxUint32 = uint64(^uint32(0))
)

// u32FromInt converts an int to a uint32.
func u32FromInt(n int) (uint32, error) {
	if n < 0 || uint64(n) > maxUint32 {
		return 0, ErrSizeOverflow
	}

	// #nosec G115 -- bounds checked above.
	return uint32(n), nil
}

// intFromU64 converts a uint64 to an int.
func intFromU64(n uint64) (int, error) {
	if n > uint64(maxInt) {
		return 0, ErrSizeOverflow
	}

	return int(n), nil
}

// addU64 adds without wrapping.
func addU64(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, ErrSizeOverflow
	}

	return sum, nil
}

// mulU64 multiplies without wrapping.
func mulU64(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if p/b != a {
		return 0, ErrSizeOverflow
	}

	return p, nil
}

// alignUp rounds n up to a multiple of align (align > 0).
func alignUp(n, align uint64) uint64 {
	if align <= 1 {
		return n
	}
	if r := n % align; r != 0 {
		return n + align - r
	}

	return n
}

// u32FromU64 converts a uint64 to a uint32.
func u32FromU64(n uint64) (uint32, error) {
	if n > maxUint32 {
		return 0, ErrSizeOverflow
	}

	return uint32(n), nil
}
