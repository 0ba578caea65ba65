package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func withInputs(t *testing.T, inputs ...string) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	i := 0
	readPassword = func(int) ([]byte, error) {
		require.Less(t, i, len(inputs))
		s := inputs[i]
		i++
		return []byte(s), nil
	}
}

func TestRun_GeneraHash(t *testing.T) {
	withInputs(t, "super-secreto", "super-secreto")
	hash, err := run(io.Discard)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("super-secreto")))
}

func TestRun_NoCoinciden(t *testing.T) {
	withInputs(t, "super-secreto", "otro-secreto")
	_, err := run(io.Discard)
	assert.Error(t, err)
}

func TestRun_Corta(t *testing.T) {
	withInputs(t, "corta")
	_, err := run(io.Discard)
	assert.Error(t, err)
}
