package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Valid(t *testing.T) {
	seq, err := LoadFile(filepath.Join("testdata", "valid.json"))
	require.NoError(t, err)

	assert.Equal(t, "AB", seq.Word)
	assert.Equal(t, "tester", seq.Author)
	require.Len(t, seq.Entries, 3)

	assert.Equal(t, 0, seq.Entries[0].Beat)
	assert.Equal(t, "alpha1", seq.Entries[0].SeqStart)
	assert.Equal(t, "alpha1", seq.StartPosition())

	b1 := seq.Entries[1]
	assert.Equal(t, 1, b1.Beat)
	assert.Equal(t, "A", b1.Letter)
	assert.Equal(t, "pro", b1.Blue.MotionType)
	assert.Equal(t, "n", b1.Blue.StartLoc)
	assert.Equal(t, "w", b1.Red.EndLoc)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "nope.json"))
	assert.Error(t, err)
}

func TestValidate_BadBeatType(t *testing.T) {
	err := Validate("bad_beat.json", mustRead(t, "bad_beat.json"))
	require.Error(t, err)

	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.NotEmpty(t, se.Errors)
}

func TestValidate_NotJSON(t *testing.T) {
	err := Validate("garbage.json", []byte("not json at all"))
	assert.Error(t, err)
}

func TestValidate_RepeatedCallsShareSchemaContext(t *testing.T) {
	// Every call builds its data value in the context that compiled the
	// schema, so interleaved valid and invalid inputs keep working
	// against the one compiled schema.
	valid := mustRead(t, "valid.json")
	bad := mustRead(t, "bad_beat.json")

	for i := 0; i < 3; i++ {
		assert.NoError(t, Validate("valid.json", valid))
		assert.Error(t, Validate("bad_beat.json", bad))
	}
}

func TestParse_MetadataOnlyAtHead(t *testing.T) {
	data := []byte(`[
		{"beat": 0, "sequence_start_position": "alpha1"},
		{"word": "late"}
	]`)

	_, err := Parse("inline.json", data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position 0")
}

func TestParse_NoBeats(t *testing.T) {
	_, err := Parse("inline.json", []byte(`[{"word": "empty"}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no beat records")
}

func TestParse_WithoutMetadata(t *testing.T) {
	data := []byte(`[
		{"beat": 0, "sequence_start_position": "alpha1"},
		{"beat": 1, "letter": "A", "end_pos": "alpha1"}
	]`)

	seq, err := Parse("inline.json", data)
	require.NoError(t, err)
	assert.Empty(t, seq.Word)
	assert.Len(t, seq.Entries, 2)
}

func mustRead(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}
