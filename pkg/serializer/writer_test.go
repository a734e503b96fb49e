package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

const (
	testName  = "test"
	test1Name = "test1"
)

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testConfig{
		{Name: test1Name, Value: 123},
		{Name: "test2", Value: 456},
	}

	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	// Verify it's valid JSON
	var result []testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}

	if result[0].Name != test1Name || result[0].Value != 123 {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := []testConfig{
		{Name: test1Name, Value: 123},
		{Name: "test2", Value: 456},
	}

	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	// Verify it's valid YAML
	var result []testConfig
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}

	if result[0].Name != test1Name || result[0].Value != 123 {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := testConfig{Name: testName, Value: 42}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "FIELD") || !strings.Contains(out, "VALUE") {
		t.Errorf("Expected table header, got:\n%s", out)
	}
	if !strings.Contains(out, "Name") || !strings.Contains(out, testName) {
		t.Errorf("Expected flattened fields, got:\n%s", out)
	}
}

func TestWriter_SerializeTable_NestedStructs(t *testing.T) {
	type inner struct {
		Leaf string
	}
	type outer struct {
		Inner inner
		List  []int
	}

	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	err := writer.Serialize(context.Background(), outer{
		Inner: inner{Leaf: "deep"},
		List:  []int{7, 8},
	})
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Inner.Leaf", "deep", "List.[0]", "List.[1]"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in table output, got:\n%s", want, out)
		}
	}
}

func TestWriter_SerializeTable_Maps(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	err := writer.Serialize(context.Background(), map[string]any{
		"alpha": 1,
		"beta":  map[string]string{"gamma": "x"},
	})
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "alpha") || !strings.Contains(out, "beta.gamma") {
		t.Errorf("Expected flattened map keys, got:\n%s", out)
	}
}

func TestWriter_SerializeTable_NilValues(t *testing.T) {
	type withPtr struct {
		Present *int
		Absent  *int
	}
	v := 9

	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	if err := writer.Serialize(context.Background(), withPtr{Present: &v}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Present") || !strings.Contains(out, "Absent") {
		t.Errorf("Expected both pointer fields, got:\n%s", out)
	}
}

func TestWriter_SerializeTable_EmptyData(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	if err := writer.Serialize(context.Background(), struct{}{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	if !strings.Contains(buf.String(), "<empty>") {
		t.Errorf("Expected <empty> marker, got:\n%s", buf.String())
	}
}

func TestWriter_NilOutput(t *testing.T) {
	writer := NewWriter(FormatJSON, nil)
	if writer == nil {
		t.Fatal("Expected non-nil writer")
	}
	if writer.output != os.Stdout {
		t.Error("Expected nil output to default to stdout")
	}
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)

	if writer.format != FormatJSON {
		t.Errorf("Expected unknown format to default to JSON, got %s", writer.format)
	}
}

func TestWriter_Close(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	if err := writer.Close(); err != nil {
		t.Errorf("Close on buffer writer should not error: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Multiple Close calls should not error: %v", err)
	}
}

func TestNewFileWriterOrStdout_EmptyPath(t *testing.T) {
	tests := []string{"", "  ", "\t", "\n"}

	for _, path := range tests {
		writer := NewFileWriterOrStdout(FormatJSON, path)
		if writer == nil {
			t.Fatalf("Expected non-nil writer for empty path %q", path)
		}
		// Should default to stdout, so Close should be safe
		if err := writer.Close(); err != nil {
			t.Errorf("Close failed for empty path writer: %v", err)
		}
	}
}

func TestNewFileWriterOrStdout_Success(t *testing.T) {
	tmpFile := t.TempDir() + "/test_output.json"

	writer := NewFileWriterOrStdout(FormatJSON, tmpFile)
	if writer == nil {
		t.Fatal("Expected non-nil writer")
	}

	data := testConfig{Name: testName, Value: 123}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Verify file exists and has valid JSON content
	content, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	var result testConfig
	if err := json.Unmarshal(content, &result); err != nil {
		t.Fatalf("Failed to unmarshal file content: %v", err)
	}

	if result.Name != testName || result.Value != 123 {
		t.Errorf("Unexpected data in file: %+v", result)
	}
}

func TestNewFileWriterOrStdout_InvalidPath(t *testing.T) {
	// Falls back to stdout when the file cannot be created.
	writer := NewFileWriterOrStdout(FormatJSON, "/nonexistent/path/file.json")
	if writer == nil {
		t.Fatal("Expected non-nil writer (should fallback to stdout)")
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format("xml"), true},
		{Format(""), true},
	}

	for _, tt := range tests {
		if got := tt.format.IsUnknown(); got != tt.want {
			t.Errorf("IsUnknown(%q) = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	if len(formats) != 3 {
		t.Errorf("Expected 3 supported formats, got %d", len(formats))
	}
}
