package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleGUIDBytes = []byte{
	0x20, 0xD0, 0x4F, 0xE0, 0x3A, 0xEA, 0x10, 0x69,
	0xA2, 0xD8, 0x08, 0x00, 0x2B, 0x30, 0x30, 0x9D,
}

func TestDecodeCompressedFolder(t *testing.T) {
	data := append([]byte{0x14, 0x00, 0x52, 0x00}, sampleGUIDBytes...)
	cf, consumed, err := DecodeCompressedFolder(data)
	require.NoError(t, err)
	require.NotNil(t, cf)
	assert.Equal(t, 20, consumed)
	assert.False(t, cf.HasName)
	assert.Equal(t, "E04FD020-EA3A-6910-A2D8-08002B30309D", cf.Identifier.String())
}

func TestDecodeControlPanel_WithName(t *testing.T) {
	data := append([]byte{0x1A, 0x00, 0x71, 0x00}, sampleGUIDBytes...)
	data = append(data, []byte("x")...)
	data = append(data, 0x00)

	cp, consumed, err := DecodeControlPanel(data)
	require.NoError(t, err)
	require.NotNil(t, cp)
	assert.Equal(t, 22, consumed)
	assert.True(t, cp.HasName)
	assert.Equal(t, "x", string(cp.Name))
}

func TestDecodeControlPanel_SkipsDelegateClassType(t *testing.T) {
	data := append([]byte{0x14, 0x00, DelegateClassType, 0x00}, sampleGUIDBytes...)
	cp, consumed, err := DecodeControlPanel(data)
	require.NoError(t, err)
	assert.Nil(t, cp)
	assert.Equal(t, 0, consumed)
}

func TestDecodeDelegate(t *testing.T) {
	data := append([]byte{0x14, 0x00, DelegateClassType, 0x00}, sampleGUIDBytes...)
	d, consumed, err := DecodeDelegate(data)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 20, consumed)
	assert.Equal(t, "E04FD020-EA3A-6910-A2D8-08002B30309D", d.Identifier.String())
}

func TestDecodeUsersPropertyView(t *testing.T) {
	data := append([]byte{0x14, 0x00, 0x00, 0x00}, sampleGUIDBytes...)
	uv, consumed, err := DecodeUsersPropertyView(data)
	require.NoError(t, err)
	require.NotNil(t, uv)
	assert.Equal(t, 20, consumed)
}
