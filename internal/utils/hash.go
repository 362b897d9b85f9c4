// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex HMAC-SHA256 of a request or response body.
const HashHeader = "HashSHA256"

// Signer computes and checks keyed HMAC-SHA256 signatures of message bodies.
// Hash instances are pooled to avoid an allocation per request.
//
// A Signer built with an empty key is disabled: Sign returns "" and Verify
// accepts anything.
type Signer struct {
	pool    sync.Pool
	enabled bool
}

// NewSigner returns a Signer for hashKey.
//
// Example usage:
//
//	s := utils.NewSigner("my-secret-key")
//	req.Header.Set(utils.HashHeader, s.Sign(body))
func NewSigner(hashKey string) *Signer {
	key := []byte(hashKey)
	return &Signer{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
		enabled: hashKey != "",
	}
}

// Enabled reports whether the signer has a key.
func (s *Signer) Enabled() bool {
	return s != nil && s.enabled
}

// Sum returns the raw HMAC-SHA256 digest of data.
func (s *Signer) Sum(data []byte) []byte {
	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return sum
}

// Sign returns the hex digest of data, or "" when the signer is disabled.
func (s *Signer) Sign(data []byte) string {
	if !s.Enabled() {
		return ""
	}
	return hex.EncodeToString(s.Sum(data))
}

// Verify reports whether signature is the hex digest of data. A disabled
// signer accepts every body.
func (s *Signer) Verify(data []byte, signature string) bool {
	if !s.Enabled() {
		return true
	}
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(got, s.Sum(data))
}
