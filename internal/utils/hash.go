// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// Supported digest algorithm names.
const (
	DigestSHA256     = "sha256"
	DigestBlake2b256 = "blake2b-256"
)

// ErrUnknownDigestAlgorithm is returned by NewDigester for an unsupported name.
var ErrUnknownDigestAlgorithm = errors.New("unknown digest algorithm")

// Digester computes and compares hex-encoded 256-bit content digests.
//
// It is stateless from the caller's point of view: hash.Hash instances are
// pooled and reset between calls, so a Digester is safe for concurrent use.
type Digester struct {
	algorithm string
	size      int
	pool      sync.Pool
}

// NewDigester returns a Digester for the named algorithm. An empty name
// selects SHA-256.
func NewDigester(algorithm string) (*Digester, error) {
	algorithm = strings.ToLower(strings.TrimSpace(algorithm))

	var newHash func() hash.Hash
	switch algorithm {
	case "", DigestSHA256:
		algorithm = DigestSHA256
		newHash = sha256.New
	case DigestBlake2b256:
		newHash = func() hash.Hash {
			h, _ := blake2b.New256(nil) // nil key never fails
			return h
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDigestAlgorithm, algorithm)
	}

	d := &Digester{algorithm: algorithm, size: newHash().Size()}
	d.pool.New = func() any { return newHash() }

	return d, nil
}

// Algorithm returns the canonical algorithm name.
func (d *Digester) Algorithm() string {
	return d.algorithm
}

// Size returns the digest size in bytes.
func (d *Digester) Size() int {
	return d.size
}

// DigestHex returns the lowercase hex digest of data.
func (d *Digester) DigestHex(data []byte) string {
	h := d.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	d.pool.Put(h)

	return hex.EncodeToString(sum)
}

// Matches reports whether the digest of data equals expectedHex, ignoring
// case and surrounding whitespace.
func (d *Digester) Matches(data []byte, expectedHex string) bool {
	expectedHex = strings.TrimSpace(expectedHex)
	if expectedHex == "" {
		return false
	}
	return strings.EqualFold(d.DigestHex(data), expectedHex)
}

// IsHexDigest reports whether s is a hex string encoding exactly size bytes.
func IsHexDigest(s string, size int) bool {
	if len(s) != size*2 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
