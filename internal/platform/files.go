package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// RevealInFileManager opens the system file manager at filePath, selecting
// the file where the platform supports it.
func RevealInFileManager(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	cmd, err := revealCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// revealCommand builds the command revealing path on goos
func revealCommand(goos, path string) (*exec.Cmd, error) {
	switch goos {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, path), nil
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam+path), nil
	case OSLinux:
		// File selection is not standardized on Linux, so open the parent directory
		dir := filepath.Dir(path)
		if _, err := exec.LookPath(XDGOpenCommand); err == nil {
			return exec.Command(XDGOpenCommand, dir), nil
		}
		for _, fm := range LinuxFileManagers {
			if _, err := exec.LookPath(fm); err == nil {
				return exec.Command(fm, dir), nil
			}
		}
		return nil, fmt.Errorf("no suitable file manager found")
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
