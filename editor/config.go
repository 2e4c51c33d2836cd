package editor

import (
	"os"
	"path/filepath"
)

// Config configures the rendering side of the Model.
type Config struct {
	ShowLineNums bool
	Style        Style
	KeyMap       KeyMap
}

func DefaultConfig() Config {
	return Config{
		ShowLineNums: true,
		Style:        DefaultStyle(),
		KeyMap:       DefaultKeyMap(),
	}
}

// ConfigPath returns the first existing startup script, checking
// $XDG_CONFIG_HOME/lite/config.lite, ~/.config/lite/config.lite,
// ~/.lite.lite, then ./config.lite.
func ConfigPath() (string, bool) {
	var candidates []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		candidates = append(candidates, filepath.Join(xdg, "lite", "config.lite"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".config", "lite", "config.lite"),
			filepath.Join(home, ".lite.lite"),
		)
	}
	candidates = append(candidates, "config.lite")

	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

// LoadConfig evaluates the startup script, if one exists, in the editor's
// global environment. Script errors land on the status line and never abort
// startup. It returns the path that was loaded, if any.
func LoadConfig(e *Editor) (string, bool) {
	path, ok := ConfigPath()
	if !ok {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		e.SetStatus("config: " + err.Error())
		return path, true
	}
	e.RunScript(string(data))
	return path, true
}
