package browser

import (
	"os/exec"
	"runtime"

	"github.com/rotisserie/eris"

	"github.com/placeskit/places-setup/internal/pkg/logger"
)

var ErrNoLauncher = eris.New("no browser launcher for this platform")

// OpenURL opens the given URL in the default browser without waiting for it.
func (c *Client) OpenURL(url string) error {
	goos := c.goos()
	cmd := launcher(goos, url)
	if cmd == nil {
		return eris.Wrapf(ErrNoLauncher, "platform %s", goos)
	}

	logger.Debugf("Opening browser: %s", url)
	if err := cmd.Start(); err != nil {
		return eris.Wrapf(err, "failed to launch %s", cmd.Path)
	}
	// reap the launcher in the background
	go func() { _ = cmd.Wait() }()
	return nil
}

func (c *Client) goos() string {
	if c.GOOS != "" {
		return c.GOOS
	}
	return runtime.GOOS
}

func launcher(goos, url string) *exec.Cmd {
	switch goos {
	case "linux":
		return exec.Command("xdg-open", url)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		return exec.Command("open", url)
	default:
		return nil
	}
}
