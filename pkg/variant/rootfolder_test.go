package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRootFolder_MyComputer(t *testing.T) {
	// spec.md scenario S1.
	data := []byte{
		0x14, 0x00, 0x1F, 0x50,
		0x20, 0xD0, 0x4F, 0xE0, 0x3A, 0xEA, 0x10, 0x69,
		0xA2, 0xD8, 0x08, 0x00, 0x2B, 0x30, 0x30, 0x9D,
	}
	rf, consumed, err := DecodeRootFolder(data)
	require.NoError(t, err)
	require.NotNil(t, rf)
	assert.Equal(t, RootFolderLength, consumed)
	assert.Equal(t, byte(0x50), rf.SortIndex)
	assert.Equal(t, "E04FD020-EA3A-6910-A2D8-08002B30309D", rf.Identifier.String())
}

func TestDecodeRootFolder_WrongClassType_NotApplicable(t *testing.T) {
	data := []byte{0x14, 0x00, 0x20, 0x00, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	rf, consumed, err := DecodeRootFolder(data)
	require.NoError(t, err)
	assert.Nil(t, rf)
	assert.Equal(t, 0, consumed)
}

func TestDecodeRootFolder_Truncated_Errors(t *testing.T) {
	data := []byte{0x14, 0x00, 0x1F, 0x50, 0x01, 0x02}
	_, _, err := DecodeRootFolder(data)
	assert.Error(t, err)
}
