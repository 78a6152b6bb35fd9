package server

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadUploadFile(t *testing.T) {
	data, err := readUploadFile(bytes.NewReader(make([]byte, 1024)))
	require.NoError(t, err)
	assert.Len(t, data, 1024)

	data, err = readUploadFile(bytes.NewReader(make([]byte, maxUploadBytes)))
	require.NoError(t, err)
	assert.Len(t, data, maxUploadBytes)
}

func TestReadUploadFile_RejectsOversizedFile(t *testing.T) {
	_, err := readUploadFile(bytes.NewReader(make([]byte, maxUploadBytes+1)))
	assert.ErrorIs(t, err, errUploadTooLarge)
}
