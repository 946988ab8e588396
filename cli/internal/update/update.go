// Package update checks released versions against the running build.
package update

import (
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/hashicorp/go-version"

	"github.com/satishbabariya/dragonfly/cli/internal/ui"
	"github.com/satishbabariya/dragonfly/internal/debug"
)

// releasesURL redirects to the tag of the latest published release.
var releasesURL = "https://github.com/satishbabariya/dragonfly/releases/latest"

var httpClient = &http.Client{
	Timeout: 3 * time.Second,
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

// Check compares the running version against the latest published
// release. Lookup failures are logged and otherwise ignored so an
// offline machine never fails the command.
func Check(currentVersion string) error {
	current, err := version.NewVersion(currentVersion)
	if err != nil {
		return fmt.Errorf("invalid version format: %w", err)
	}

	tag, err := latestTag()
	if err != nil {
		debug.Log("release lookup failed", "error", err)

		return nil
	}

	latest, err := version.NewVersion(tag)
	if err != nil {
		debug.Log("unparseable release tag", "tag", tag)

		return nil
	}

	if current.LessThan(latest) {
		ui.PrintWarning("A new version is available!")
		fmt.Printf("Current version: %s\n", currentVersion)
		fmt.Printf("Latest version:  %s\n", tag)
		fmt.Printf("\nDownload: %s\n", DownloadURL(tag))

		return nil
	}

	ui.PrintSuccess("dragonfly %s is up to date.", currentVersion)

	return nil
}

// latestTag resolves the tag the release page redirects to.
func latestTag() (string, error) {
	request, err := http.NewRequest(http.MethodHead, releasesURL, nil)
	if err != nil {
		return "", err
	}

	response, err := httpClient.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	location := response.Header.Get("Location")
	if location == "" {
		return "", fmt.Errorf("no redirect from %s", releasesURL)
	}

	tag := location[strings.LastIndex(location, "/")+1:]

	return strings.TrimPrefix(tag, "v"), nil
}

// DownloadURL returns the release asset URL for the current platform.
func DownloadURL(tag string) string {
	return fmt.Sprintf(
		"https://github.com/satishbabariya/dragonfly/releases/download/v%s/dragonfly-%s-%s",
		tag,
		runtime.GOOS,
		runtime.GOARCH,
	)
}
