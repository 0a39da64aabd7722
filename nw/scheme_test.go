package nw_test

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nwalign/nw"
)

// TestParseScheme covers full, partial and empty documents.
func TestParseScheme(t *testing.T) {
	s, err := nw.ParseScheme([]byte("match: 5\nmismatch: -4\ngap: -10\n"))
	require.NoError(t, err)
	assert.Equal(t, nw.Scheme{Match: 5, Mismatch: -4, Gap: -10}, s)

	s, err = nw.ParseScheme([]byte("mismatch: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, nw.Scheme{Match: nw.DefaultMatch, Mismatch: 0, Gap: nw.DefaultGap}, s, "absent keys keep defaults")

	s, err = nw.ParseScheme(nil)
	require.NoError(t, err)
	assert.Equal(t, nw.DefaultScheme(), s)
}

// TestParseScheme_Invalid rejects malformed values and unknown keys.
func TestParseScheme_Invalid(t *testing.T) {
	_, err := nw.ParseScheme([]byte("match: high\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nw: parse scheme")

	_, err = nw.ParseScheme([]byte("gap_extend: -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gap_extend")
}

// TestLoadScheme reads fixtures from testdata.
func TestLoadScheme(t *testing.T) {
	s, err := nw.LoadScheme(filepath.Join("testdata", "scheme.yaml"))
	require.NoError(t, err)
	assert.Equal(t, nw.Scheme{Match: 1, Mismatch: -1, Gap: -2}, s)

	s, err = nw.LoadScheme(filepath.Join("testdata", "partial.yaml"))
	require.NoError(t, err)
	assert.Equal(t, nw.Scheme{Match: nw.DefaultMatch, Mismatch: nw.DefaultMismatch, Gap: -3}, s)

	_, err = nw.LoadScheme(filepath.Join("testdata", "unknown.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown.yaml")

	_, err = nw.LoadScheme(filepath.Join("testdata", "missing.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

// TestLoadScheme_DrivesAligner wires a loaded scheme into an Aligner.
func TestLoadScheme_DrivesAligner(t *testing.T) {
	s, err := nw.LoadScheme(filepath.Join("testdata", "scheme.yaml"))
	require.NoError(t, err)

	res := nw.New(nw.WithScheme(s)).Align("ACGTACGT", "AGTAGT")
	assert.Equal(t, "ACGTACGT", res.Seq1)
	assert.Equal(t, "A-GTA-GT", res.Seq2)
	assert.Equal(t, 2, res.Score)
}
