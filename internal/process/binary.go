package process

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

const binaryName = "cloudflared"

// FindCloudflared locates the connector binary. An explicit path wins;
// otherwise PATH is searched, then ~/.local/bin.
func FindCloudflared(explicit string) (string, error) {
	if explicit != "" {
		path, err := exec.LookPath(explicit)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrCloudflaredNotFound, explicit, err)
		}
		return path, nil
	}

	if path, err := exec.LookPath(binaryName); err == nil {
		return path, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		name := binaryName
		if runtime.GOOS == "windows" {
			name += ".exe"
		}
		path := filepath.Join(home, ".local", "bin", name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", ErrCloudflaredNotFound
}
