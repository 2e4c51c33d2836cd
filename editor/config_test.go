package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigPathPrefersXDG(t *testing.T) {
	xdg := t.TempDir()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", home)

	want := filepath.Join(xdg, "lite", "config.lite")
	if err := os.MkdirAll(filepath.Dir(want), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(want, []byte(`status "hi"`), 0o644); err != nil {
		t.Fatal(err)
	}
	// A home config also exists; XDG must win.
	homeCfg := filepath.Join(home, ".lite.lite")
	if err := os.WriteFile(homeCfg, []byte(`status "other"`), 0o644); err != nil {
		t.Fatal(err)
	}

	got, ok := ConfigPath()
	if !ok || got != want {
		t.Fatalf("got %q, %v; want %q", got, ok, want)
	}
}

func TestConfigPathFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)

	want := filepath.Join(home, ".lite.lite")
	if err := os.WriteFile(want, []byte(`status "hi"`), 0o644); err != nil {
		t.Fatal(err)
	}
	got, ok := ConfigPath()
	if !ok || got != want {
		t.Fatalf("got %q, %v; want %q", got, ok, want)
	}
}

func TestLoadConfigRunsScript(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(xdg, "lite", "config.lite")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	cfg := `
# startup script
let greeting = "welcome";
status greeting;
bind-key "ctrl+t" ([] -> insert greeting)
`
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	ed := New(Options{})
	loaded, ok := LoadConfig(ed)
	if !ok || loaded != path {
		t.Fatalf("loaded %q, %v", loaded, ok)
	}
	if ed.Status() != "welcome" {
		t.Fatalf("status %q", ed.Status())
	}
	ed.RunBinding("ctrl+t")
	if got := ed.Buffer().Text(); got != "welcome" {
		t.Fatalf("got %q", got)
	}
}

func TestLoadConfigErrorIsTransient(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(xdg, "lite", "config.lite")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`nope 1`), 0o644); err != nil {
		t.Fatal(err)
	}

	ed := New(Options{})
	if _, ok := LoadConfig(ed); !ok {
		t.Fatal("config not found")
	}
	if ed.Status() == "" {
		t.Fatal("error not surfaced")
	}
}

func TestNoConfigIsFine(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldwd) })

	if path, ok := ConfigPath(); ok {
		t.Fatalf("found unexpected config %q", path)
	}
	ed := New(Options{})
	if _, ok := LoadConfig(ed); ok {
		t.Fatal("loaded a config from nowhere")
	}
}
