// SPDX-FileCopyrightText: Copyright 2026 Skillmesh Authors
// SPDX-License-Identifier: Apache-2.0

// Package topic derives and parses deterministic topic addresses for
// published manifest versions.
package topic

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"

	"github.com/opencontainers/go-digest"
)

// addressPattern matches the ledger-topic identifier convention "0.0.<n>".
var addressPattern = regexp.MustCompile(`^0\.0\.([1-9]\d*)$`)

// DeriveAddress returns the stable, deterministic address for a
// (name, version) pair, formatted "0.0.<positive integer>".
//
// The address is a pure function of its inputs: identical pairs always
// yield the identical address, so two manifests sharing (name, version)
// collapse to the same catalog slot. Different versions of the same name
// diverge with overwhelming probability since the numeric part is taken
// from a SHA-256 digest of the pair.
func DeriveAddress(name, version string) string {
	// The separator keeps ("ab","c") and ("a","bc") from colliding.
	d := digest.FromString(name + "@" + version)

	// Take the first 8 bytes of the digest as a big-endian integer and
	// clear the sign bit so the rendered number is always positive.
	// The encoded digest is valid hex, so decoding cannot fail.
	raw, _ := hex.DecodeString(d.Encoded()[:16])
	n := binary.BigEndian.Uint64(raw) & (1<<63 - 1)
	if n == 0 {
		// A zero topic number is not a valid address. Vanishingly
		// unlikely, but deterministic inputs deserve a total function.
		n = 1
	}

	return fmt.Sprintf("0.0.%d", n)
}

// IsValid reports whether s is a well-formed topic address.
// A well-formed address is not necessarily published; that distinction
// belongs to the catalog.
func IsValid(s string) bool {
	return addressPattern.MatchString(s)
}

// Parse extracts the numeric topic identifier from an address string.
func Parse(s string) (uint64, error) {
	m := addressPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("malformed topic address %q: want 0.0.<positive integer>", s)
	}
	n, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed topic address %q: %w", s, err)
	}
	return n, nil
}
