// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-draft-keeper/models"
)

const testHashKey = "test-secret-key"

func referenceHMAC(data []byte, key string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestSigner_Sign_WithRealPayload(t *testing.T) {
	s := NewSigner(testHashKey)

	record := models.Record{
		Kind:   models.CoverLetter,
		Fields: models.Fields{"company": "Acme", "body": "Dear hiring team"},
	}
	body, err := json.Marshal(record)
	require.NoError(t, err)

	assert.Equal(t, referenceHMAC(body, testHashKey), s.Sign(body))
	// deterministic across pooled hashers
	assert.Equal(t, s.Sign(body), s.Sign(body))
}

func TestSigner_Verify(t *testing.T) {
	s := NewSigner(testHashKey)
	body := []byte(`{"fields":{"title":"Bakery"}}`)
	sig := s.Sign(body)

	tests := []struct {
		name string
		data []byte
		sig  string
		want bool
	}{
		{name: "valid", data: body, sig: sig, want: true},
		{name: "tampered body", data: []byte(`{"fields":{"title":"Bakery!"}}`), sig: sig, want: false},
		{name: "not hex", data: body, sig: "zz", want: false},
		{name: "missing", data: body, sig: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Verify(tt.data, tt.sig))
		})
	}
}

func TestSigner_Disabled(t *testing.T) {
	s := NewSigner("")

	assert.False(t, s.Enabled())
	assert.Empty(t, s.Sign([]byte("x")))
	assert.True(t, s.Verify([]byte("x"), "anything"))

	var nilSigner *Signer
	assert.False(t, nilSigner.Enabled())
}

func TestSigner_Concurrent(t *testing.T) {
	s := NewSigner(testHashKey)
	want := referenceHMAC([]byte("payload"), testHashKey)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, s.Sign([]byte("payload")))
		}()
	}
	wg.Wait()
}
