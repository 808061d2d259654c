package signer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHMAC(t *testing.T) {
	s, err := NewHMAC()
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestSign_Golden(t *testing.T) {
	s, err := NewHMAC()
	require.NoError(t, err)

	canonical := "PUT\n\nimage/png\nMon, 01 Jan 2024 00:00:00 GMT\n/mybucket/plaindoc/2024/01/01/1-abcdefgh.png"
	got := s.Sign("s3cr3t", canonical)
	assert.Equal(t, "F1zDXDkKZF+r1Bj7ogfjAZlUYGc=", got)

	// Identical inputs must reproduce the signature exactly.
	assert.Equal(t, got, s.Sign("s3cr3t", canonical))
}

func TestSign_DistinctInputsDistinctSignatures(t *testing.T) {
	s, err := NewHMAC()
	require.NoError(t, err)

	base := s.Sign("s3cr3t", "PUT\n\nimage/png\ndate\n/b/k")
	assert.NotEqual(t, base, s.Sign("other", "PUT\n\nimage/png\ndate\n/b/k"))
	assert.NotEqual(t, base, s.Sign("s3cr3t", "PUT\n\nimage/png\ndate\n/b/k2"))
}
