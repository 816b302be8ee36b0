package toolchain

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Resolve locates the tool binary. A non-empty override (from user config)
// wins; otherwise the tool name is looked up on PATH.
func (t Tool) Resolve(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	path, err := exec.LookPath(t.Name)
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH: %w", t.Name, err)
	}
	return path, nil
}

// Run executes the tool binary, streaming stdout to the given writer and
// folding captured stderr into the returned error.
func Run(bin string, args []string, dir string, stdout io.Writer) error {
	cmd := exec.Command(bin, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %s", err, msg)
		}
		return err
	}
	return nil
}
