package transcript

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transcript.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_BuiltinRoundTrip(t *testing.T) {
	data, err := json.Marshal(CircuitDesign())
	require.NoError(t, err)

	tr, err := Load(writeFile(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, CircuitDesign(), tr)
}

func TestLoad_DuplicateStartTime(t *testing.T) {
	path := writeFile(t, `{
		"title": "dup",
		"duration": 100,
		"segments": [
			{"start_time": 10, "end_time": 20, "text": "one"},
			{"start_time": 10, "end_time": 30, "text": "two"}
		]
	}`)

	_, err := Load(path)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Message, "duplicate segment start time 0:10")
}

func TestLoad_EndBeforeStart(t *testing.T) {
	path := writeFile(t, `{"title": "t", "duration": 100, "segments": [{"start_time": 30, "end_time": 20, "text": "x"}]}`)

	_, err := Load(path)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestLoad_MissingSegments(t *testing.T) {
	_, err := Load(writeFile(t, `{"title": "t", "duration": 100, "segments": []}`))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestLoad_InvalidJSON(t *testing.T) {
	_, err := Load(writeFile(t, `{not json`))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
