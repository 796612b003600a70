// Package open hands a URL to the desktop's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/kinotv/kino/constant"
	"github.com/kinotv/kino/log"
)

// Run opens the URL and waits for the handler to exit.
func Run(url string) error {
	cmd, err := command(runtime.GOOS, url)
	if err != nil {
		return err
	}
	log.Debugf("opening %s with %s", url, cmd.Path)
	return cmd.Run()
}

// Start opens the URL without waiting.
func Start(url string) error {
	cmd, err := command(runtime.GOOS, url)
	if err != nil {
		return err
	}
	log.Debugf("opening %s with %s", url, cmd.Path)
	return cmd.Start()
}

func command(goos, url string) (*exec.Cmd, error) {
	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", url), nil
	case constant.Darwin:
		return exec.Command("open", url), nil
	case constant.Linux:
		return exec.Command("xdg-open", url), nil
	case constant.Android:
		return exec.Command("termux-open", url), nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}
