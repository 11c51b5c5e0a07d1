package plugin

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plugin.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `
name = "demo-tools"
version = "1.2.0"
display_name = "Demo Tools"
description = "Example plugin"
author = "demo"

[[events]]
name = "progress"
description = "Reports task progress"

[[events]]
name = "done"
`)

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if m.Name != "demo-tools" {
		t.Errorf("expected name demo-tools, got %q", m.Name)
	}
	if m.Version != "1.2.0" {
		t.Errorf("expected version 1.2.0, got %q", m.Version)
	}
	if len(m.Events) != 2 || m.Events[0].Name != "progress" {
		t.Errorf("unexpected events %+v", m.Events)
	}
	if m.Path() != filepath.Dir(path) {
		t.Errorf("expected path %q, got %q", filepath.Dir(path), m.Path())
	}

	p, err := m.Plugin()
	if err != nil {
		t.Fatalf("plugin: %v", err)
	}
	if string(p.ID()) != "demo-tools" {
		t.Errorf("expected plugin id demo-tools, got %q", p.ID())
	}
}

func TestLoadManifest_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			"missing name",
			"version = \"1.0.0\"\n",
			ErrMissingName,
		},
		{
			"bad name",
			"name = \"Demo\"\nversion = \"1.0.0\"\n",
			ErrInvalidName,
		},
		{
			"missing version",
			"name = \"demo\"\n",
			ErrMissingVersion,
		},
		{
			"bad version",
			"name = \"demo\"\nversion = \"one\"\n",
			ErrInvalidVersion,
		},
		{
			"event with separator",
			"name = \"demo\"\nversion = \"1.0.0\"\n\n[[events]]\nname = \"a:b\"\n",
			ErrInvalidEventName,
		},
		{
			"duplicate event",
			"name = \"demo\"\nversion = \"1.0.0\"\n\n[[events]]\nname = \"tick\"\n\n[[events]]\nname = \"tick\"\n",
			ErrDuplicateEvent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.content)
			_, err := LoadManifest(path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadManifest_MissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "plugin.toml"))
	if err == nil {
		t.Error("expected an error for a missing manifest")
	}
}
