package command

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/hierarchyplus/hierarchy-plus/internal/config"
)

func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommandVersion(t *testing.T) {
	output, err := executeCommand(NewRootCmd("test"), "--version")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(output, "hplus-settings version test") {
		t.Errorf("Expected version output, got %q", output)
	}
}

func TestDefaultsDecodeRoundTrip(t *testing.T) {
	blob, err := executeCommand(NewRootCmd("test"), "defaults")
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	blob = strings.TrimSpace(blob)
	if blob == "" {
		t.Fatal("Expected a blob, got empty output")
	}

	output, err := executeCommand(NewRootCmd("test"), "decode", blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, want := range []string{"Compressed:", "Uncompressed:", config.MainSection, `"enabled": true`, `"MeshFilter"`} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got %q", want, output)
		}
	}
}

func TestDecodeJSONOnly(t *testing.T) {
	blob, err := config.Encode(codec(), config.DefaultSettings())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	output, err := executeCommand(NewRootCmd("test"), "decode", "--json", blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal([]byte(output), &fields); err != nil {
		t.Fatalf("Expected pure JSON output, got %q: %v", output, err)
	}
	if fields["guiXOffset"] != float64(config.DefaultGUIXOffset) {
		t.Errorf("Expected guiXOffset %v, got %v", config.DefaultGUIXOffset, fields["guiXOffset"])
	}
}

func TestDecodeFromStdin(t *testing.T) {
	blob, err := config.Encode(codec(), config.DefaultSettings())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	cmd := NewRootCmd("test")
	cmd.SetIn(strings.NewReader(blob + "\n"))
	output, err := executeCommand(cmd, "decode", "--json")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(output, `"iconsEnabled": true`) {
		t.Errorf("Expected decoded settings, got %q", output)
	}
}

func TestDecodeEmptyStdin(t *testing.T) {
	cmd := NewRootCmd("test")
	cmd.SetIn(strings.NewReader("  \n"))
	if _, err := executeCommand(cmd, "decode"); err != errNoInput {
		t.Errorf("Expected errNoInput, got %v", err)
	}
}

func TestDecodeInvalidBlob(t *testing.T) {
	if _, err := executeCommand(NewRootCmd("test"), "decode", "not a blob!"); err == nil {
		t.Error("Expected an error for an invalid blob")
	}
}

func TestEncodeKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"enabled": false, "tagLabelWidth": 80}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	output, err := executeCommand(NewRootCmd("test"), "encode", path)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	data, err := config.Decode(codec(), strings.TrimSpace(output))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Enabled.Get() {
		t.Error("Expected enabled to be false")
	}
	if got := data.TagLabelWidth.Get(); got != 80 {
		t.Errorf("Expected tag label width 80, got %v", got)
	}
	if !data.IconsEnabled.Get() {
		t.Error("Expected iconsEnabled to keep its default")
	}
}

func TestEncodeInvalidJSON(t *testing.T) {
	cmd := NewRootCmd("test")
	cmd.SetIn(strings.NewReader("{"))
	if _, err := executeCommand(cmd, "encode", "-"); err == nil {
		t.Error("Expected an error for invalid JSON")
	}
}
