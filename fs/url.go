package fs

import (
	"net/url"
	"strings"

	"github.com/open-contracting/ocdsindex"
)

// indexFile is the directory index page. Its URL is canonicalized to the
// directory URL.
const indexFile = "index.html"

// RemoteURL resolves a slash-separated path, relative to the root of a
// documentation build, against the build's base URL.
//
// Example: https://example.org/dev/ + en/guide.html → https://example.org/dev/en/guide.html
// Example: https://example.org/dev/ + en/index.html → https://example.org/dev/en/
func RemoteURL(baseURL, relPath string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", ocdsindex.Errorf(ocdsindex.EINVALID, "invalid base URL: %v", err)
	}

	// A Path-only reference keeps a colon in the first segment from being
	// read as a scheme.
	remote := base.ResolveReference(&url.URL{Path: relPath}).String()

	if strings.HasSuffix(remote, "/"+indexFile) {
		remote = strings.TrimSuffix(remote, indexFile)
	}
	return remote, nil
}
