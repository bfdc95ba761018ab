package serializer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type testResult struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

func TestWriterSerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testResult{
		{Name: "test1", Value: 123},
		{Name: "test2", Value: 456},
	}

	require.NoError(t, writer.Serialize(data))

	var result []testResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Len(t, result, 2)
	assert.Equal(t, "test1", result[0].Name)
	assert.Equal(t, 123, result[0].Value)
}

func TestWriterSerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := testResult{Name: "test1", Value: 123}

	require.NoError(t, writer.Serialize(data))

	var result testResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, data, result)
}

func TestWriterSerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := testResult{Name: "test1", Value: 123}

	require.NoError(t, writer.Serialize(data))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "test1")
	assert.Contains(t, out, "Value")
	assert.Contains(t, out, "123")
}

func TestWriterUnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("bogus"), &buf)

	require.NoError(t, writer.Serialize(testResult{Name: "x"}))

	var result testResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "x", result.Name)
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	writer := NewFileWriterOrStdout(FormatJSON, path)

	require.NoError(t, writer.Serialize(testResult{Name: "filed", Value: 7}))
	require.NoError(t, writer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "filed"))
}

func TestFormatIsUnknown(t *testing.T) {
	assert.False(t, FormatJSON.IsUnknown())
	assert.False(t, FormatYAML.IsUnknown())
	assert.False(t, FormatTable.IsUnknown())
	assert.True(t, Format("xml").IsUnknown())
	assert.Len(t, SupportedFormats(), 3)
}

func TestWriterCloseIdempotent(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)
	require.NoError(t, writer.Close())
	require.NoError(t, writer.Close())
}
