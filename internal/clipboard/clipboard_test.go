package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"testing"
)

func lookPathFor(installed ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, n := range installed {
			if n == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestFindTool(t *testing.T) {
	type tc struct {
		goos      string
		installed []string
		wantName  string
		wantOK    bool
	}

	tests := map[string]tc{
		"darwin pbcopy":         {goos: "darwin", installed: []string{"pbcopy"}, wantName: "pbcopy", wantOK: true},
		"darwin missing":        {goos: "darwin"},
		"windows always":        {goos: "windows", wantName: "cmd", wantOK: true},
		"linux prefers wayland": {goos: "linux", installed: []string{"xclip", "wl-copy"}, wantName: "wl-copy", wantOK: true},
		"linux xclip":           {goos: "linux", installed: []string{"xclip", "xsel"}, wantName: "xclip", wantOK: true},
		"linux xsel fallback":   {goos: "linux", installed: []string{"xsel"}, wantName: "xsel", wantOK: true},
		"linux nothing":         {goos: "linux"},
		"freebsd xclip":         {goos: "freebsd", installed: []string{"xclip"}, wantName: "xclip", wantOK: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := findTool(tt.goos, lookPathFor(tt.installed...))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got.name != tt.wantName {
				t.Errorf("name = %q, want %q", got.name, tt.wantName)
			}
		})
	}
}

func TestAvailable(t *testing.T) {
	_, want := findTool(runtime.GOOS, exec.LookPath)
	if got := Available(); got != want {
		t.Errorf("Available() = %v, want %v", got, want)
	}
}
