package logging

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShellItemLogSink_NilWriterDefaultsToStdout(t *testing.T) {
	s := NewShellItemLogSink(nil, LEVEL_INFO, true)
	assert.Equal(t, os.Stdout, s.writer)
}

func TestEnabled_RespectsMinVerbosity(t *testing.T) {
	s := NewShellItemLogSink(&bytes.Buffer{}, LEVEL_DEBUG, true)
	assert.True(t, s.Enabled(LEVEL_INFO))
	assert.True(t, s.Enabled(LEVEL_DEBUG))
	assert.False(t, s.Enabled(LEVEL_TRACE))
}

func TestInfo_FormatsClassTypeAsHex(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewShellItemLogSink(buf, LEVEL_INFO, false)
	s.Info(LEVEL_INFO, "unrecognized class type", "classType", byte(0x74))
	output := buf.String()

	assert.Contains(t, output, "[INFO]")
	assert.Contains(t, output, "unrecognized class type")
	assert.Contains(t, output, "classType: 0x74")
}

func TestInfo_TintsVariantWhenColorEnabled(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewShellItemLogSink(buf, LEVEL_INFO, true)
	s.Info(LEVEL_INFO, "decoded shell item", "variant", "FILE_ENTRY")
	output := buf.String()

	assert.Contains(t, output, "variant:")
	assert.NotContains(t, output, "variant: FILE_ENTRY\n", "expected the variant value to be wrapped in ANSI color codes, not printed plain")
}

func TestInfo_VariantPassesThroughPlainWhenColorDisabled(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewShellItemLogSink(buf, LEVEL_INFO, false)
	s.Info(LEVEL_INFO, "decoded shell item", "variant", "VOLUME")
	output := buf.String()

	assert.Contains(t, output, "variant: VOLUME")
}

func TestInfo_UnknownVariantNameFallsBackPlain(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewShellItemLogSink(buf, LEVEL_INFO, true)
	s.Info(LEVEL_INFO, "decoded shell item", "variant", "UNKNOWN")
	output := buf.String()

	assert.Contains(t, output, "variant: UNKNOWN")
}

func TestInfo_NotLoggedWhenDisabled(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewShellItemLogSink(buf, LEVEL_INFO, true)
	s.Info(LEVEL_DEBUG, "should not appear", "foo", "bar")
	assert.Zero(t, buf.Len())
}

func TestError_IncludesErrorLabelAndValue(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewShellItemLogSink(buf, LEVEL_INFO, false)
	err := errors.New("sample error")
	s.Error(err, "decode failed", "classType", byte(0x01))
	output := buf.String()

	assert.Contains(t, output, "[ERROR]")
	assert.Contains(t, output, "decode failed")
	assert.Contains(t, output, "classType: 0x01")
	assert.Contains(t, output, "error: sample error")
}

func TestWithName_PrefixesMessage(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewShellItemLogSink(buf, LEVEL_INFO, false)
	named := s.WithName("item")
	named.Info(LEVEL_INFO, "decoding")
	assert.Contains(t, buf.String(), "[item] decoding")
}

func TestWithName_ChainsDotted(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewShellItemLogSink(buf, LEVEL_INFO, false)
	chained := s.WithName("item").WithName("parse")
	chained.Info(LEVEL_INFO, "decoding")
	assert.Contains(t, buf.String(), "[item.parse] decoding")
}

func TestV_ProducesIndependentSinkAtSameVerbosity(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewShellItemLogSink(buf, LEVEL_DEBUG, false)
	v := s.V(LEVEL_DEBUG)
	v.Info(LEVEL_DEBUG, "verbose")
	assert.Contains(t, buf.String(), "[DEBUG]")
}

func TestNonStringKey_FallsBackToPositionalLabel(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewShellItemLogSink(buf, LEVEL_INFO, false)
	s.Info(LEVEL_INFO, "non-string key", 123, "value")
	assert.Contains(t, buf.String(), "key0: value")
}

func TestInit_SetsCallDepth(t *testing.T) {
	s := NewShellItemLogSink(&bytes.Buffer{}, LEVEL_INFO, false)
	s.Init(logr.RuntimeInfo{CallDepth: 5})
	assert.Equal(t, 5, s.callDepth)
}

func TestNewShellItemLogger_WritesThroughLogrInterface(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewShellItemLogger(buf, LEVEL_INFO, false)
	logger.Info("decoded shell item", "variant", "ROOT_FOLDER")
	output := buf.String()

	require.NotEmpty(t, output)
	assert.Contains(t, output, "decoded shell item")
	assert.Contains(t, output, "variant: ROOT_FOLDER")
}
