// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard tool is installed.
var ErrUnavailable = errors.New("no clipboard tool available")

// tool is an external program that reads clipboard contents from stdin.
type tool struct {
	name string
	args []string
}

// findTool picks the clipboard program for goos.
func findTool(goos string, lookPath func(string) (string, error)) (tool, bool) {
	var candidates []tool
	switch goos {
	case "darwin":
		candidates = []tool{{name: "pbcopy"}}
	case "windows":
		return tool{name: "cmd", args: []string{"/c", "clip"}}, true
	default:
		candidates = []tool{
			{name: "wl-copy"},
			{name: "xclip", args: []string{"-selection", "clipboard"}},
			{name: "xsel", args: []string{"--clipboard", "--input"}},
		}
	}

	for _, c := range candidates {
		if _, err := lookPath(c.name); err == nil {
			return c, true
		}
	}
	return tool{}, false
}

// Write copies text to the system clipboard.
func Write(text string) error {
	t, ok := findTool(runtime.GOOS, exec.LookPath)
	if !ok {
		return ErrUnavailable
	}

	cmd := exec.Command(t.name, t.args...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Available reports whether a clipboard tool is installed.
func Available() bool {
	_, ok := findTool(runtime.GOOS, exec.LookPath)
	return ok
}
