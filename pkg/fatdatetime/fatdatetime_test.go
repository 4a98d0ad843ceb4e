package fatdatetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_RoundTrip(t *testing.T) {
	want := time.Date(2021, time.March, 15, 13, 45, 30, 0, time.UTC)
	packed, err := Encode(want)
	require.NoError(t, err)

	got, err := Decode(packed)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecode_Zero(t *testing.T) {
	// All-zero FAT time has month=0 and day=0, neither of which is a valid
	// calendar value, so this should error.
	_, err := Decode(0)
	assert.Error(t, err)
}

func TestDecode_InvalidMonth(t *testing.T) {
	// month bits set to 0 (bits 5-8), day bits set to 1.
	_, err := Decode(1)
	assert.Error(t, err)
}
