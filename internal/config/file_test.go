package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	simerrors "github.com/standardbeagle/textsim/internal/errors"
	"github.com/standardbeagle/textsim/internal/tokenize"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "textsim.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileFull(t *testing.T) {
	path := writeConfigFile(t, `
algorithm = "jaro-winkler"
preprocessing = "ngram"
case-sensitivity = "insensitive"
ngram-size = 3

[parameters]
threshold = 0.75
prefix-weight = 0.15
prefix-length = 3
max-string-length = 5000
`)

	overlay, err := LoadFile(path)
	require.NoError(t, err)

	require.NotNil(t, overlay.Algorithm)
	assert.Equal(t, JaroWinkler, *overlay.Algorithm)
	require.NotNil(t, overlay.Preprocessing)
	assert.Equal(t, tokenize.NGram, *overlay.Preprocessing)
	require.NotNil(t, overlay.CaseSensitivity)
	assert.Equal(t, CaseInsensitive, *overlay.CaseSensitivity)
	require.NotNil(t, overlay.NGramSize)
	assert.Equal(t, 3, *overlay.NGramSize)
	require.NotNil(t, overlay.Threshold)
	assert.Equal(t, 0.75, *overlay.Threshold)
	require.NotNil(t, overlay.PrefixWeight)
	assert.Equal(t, 0.15, *overlay.PrefixWeight)
	require.NotNil(t, overlay.PrefixLength)
	assert.Equal(t, 3, *overlay.PrefixLength)
	require.NotNil(t, overlay.MaxStringLength)
	assert.Equal(t, 5000, *overlay.MaxStringLength)

	assert.Nil(t, overlay.Alpha, "absent keys stay unset")
	assert.Nil(t, overlay.Beta)
}

func TestLoadFilePartial(t *testing.T) {
	path := writeConfigFile(t, `algorithm = "dice"`)

	overlay, err := LoadFile(path)
	require.NoError(t, err)

	require.NotNil(t, overlay.Algorithm)
	assert.Equal(t, SorensenDice, *overlay.Algorithm)
	assert.Nil(t, overlay.Preprocessing)
	assert.Nil(t, overlay.NGramSize)
}

func TestLoadFileUnknownAlgorithm(t *testing.T) {
	path := writeConfigFile(t, `algorithm = "soundex"`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.True(t, simerrors.IsCode(err, simerrors.CodeInvalidConfiguration))
}

func TestLoadFileUnknownPreprocessing(t *testing.T) {
	path := writeConfigFile(t, `preprocessing = "sentences"`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.True(t, simerrors.IsCode(err, simerrors.CodeInvalidConfiguration))
}

func TestLoadFileMalformedTOML(t *testing.T) {
	path := writeConfigFile(t, `algorithm = [unterminated`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.True(t, simerrors.IsCode(err, simerrors.CodeInvalidConfiguration))
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.True(t, simerrors.IsCode(err, simerrors.CodeInvalidConfiguration))
}
