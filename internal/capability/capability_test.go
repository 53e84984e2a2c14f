package capability

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ephemeralci/burnin/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Location: "fsn1",
		ProjectTool: config.ProjectToolConfig{
			Binary:   "pvt",
			Manifest: "pvt.yaml",
		},
		Template: config.TemplateConfig{
			Binary:         "tplc",
			Path:           "infra/main.tpl",
			ParametersPath: "infra/params.json",
		},
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
}

func stubLookPath(t *testing.T, found map[string]bool) {
	t.Helper()
	orig := lookPath
	lookPath = func(name string) (string, error) {
		if found[name] {
			return "/usr/local/bin/" + name, nil
		}
		return "", errors.New("not found")
	}
	t.Cleanup(func() { lookPath = orig })
}

func TestDetect_EmptyTree(t *testing.T) {
	dir := t.TempDir()
	stubLookPath(t, nil)

	caps, err := Detect(dir, testConfig())
	if err != nil {
		t.Fatalf("Expected no error for empty tree, got: %v", err)
	}
	if caps.UsesProjectTool || caps.HasTemplate || caps.HasParametersFile {
		t.Errorf("Expected all capabilities off, got: %+v", caps)
	}
}

func TestDetect_AllPresent(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "pvt.yaml"))
	touch(t, filepath.Join(dir, "infra", "main.tpl"))
	touch(t, filepath.Join(dir, "infra", "params.json"))
	stubLookPath(t, map[string]bool{"pvt": true, "tplc": true})

	caps, err := Detect(dir, testConfig())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !caps.UsesProjectTool || !caps.HasTemplate || !caps.HasParametersFile {
		t.Errorf("Expected all capabilities on, got: %+v", caps)
	}
}

func TestDetect_ManifestWithoutBinary(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "pvt.yaml"))
	stubLookPath(t, nil)

	_, err := Detect(dir, testConfig())
	if !errors.Is(err, ErrMissingTool) {
		t.Fatalf("Expected ErrMissingTool, got: %v", err)
	}
}

func TestDetect_TemplateWithoutBinary(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "infra", "main.tpl"))
	stubLookPath(t, nil)

	_, err := Detect(dir, testConfig())
	if !errors.Is(err, ErrMissingTool) {
		t.Fatalf("Expected ErrMissingTool, got: %v", err)
	}
}

func TestDetect_ParamsWithoutTemplate(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "infra", "params.json"))
	stubLookPath(t, nil)

	caps, err := Detect(dir, testConfig())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if caps.HasTemplate {
		t.Error("Expected HasTemplate off")
	}
	if !caps.HasParametersFile {
		t.Error("Expected HasParametersFile on")
	}
}

func TestDetect_DirectoryIsNotAFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "pvt.yaml"), 0o755); err != nil {
		t.Fatal(err)
	}
	stubLookPath(t, nil)

	caps, err := Detect(dir, testConfig())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if caps.UsesProjectTool {
		t.Error("A directory named like the manifest should not enable the tool stage")
	}
}
