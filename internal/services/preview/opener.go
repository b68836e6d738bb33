package preview

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Opener hands a venture URL to something outside the preview.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// BrowserOpener launches the platform's default URL handler.
type BrowserOpener struct{}

// Open starts the handler for url and waits for it to exit.
func (BrowserOpener) Open(ctx context.Context, url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return fmt.Errorf("url is required")
	}
	name, args := browserCommand(runtime.GOOS)
	cmd := exec.CommandContext(ctx, name, append(args, url)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

func browserCommand(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}
