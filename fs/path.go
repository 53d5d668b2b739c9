// Package fs archives fetched listing pages on the local filesystem.
package fs

import (
	"fmt"
	"net/url"
	"path"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/nyaa"
)

// maxNameLen keeps generated file names under common filesystem limits.
const maxNameLen = 200

// URLToPath converts a page URL to a relative file path.
// The host and path become directories and the query becomes the file name.
// Example: https://nyaa.si/user/foo?p=2 → nyaa.si/user/foo/p=2.html
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", nyaa.Errorf(nyaa.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Host == "" {
		return "", nyaa.Errorf(nyaa.EINVALID, "URL %q has no host", rawURL)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if slices.Contains(segments, "..") {
		return "", nyaa.Errorf(nyaa.EINVALID, "path traversal in URL %q", rawURL)
	}

	name := "index"
	if u.RawQuery != "" {
		name = url.PathEscape(u.RawQuery)
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-17] + "-" + hashName(name)
	}

	parts := append([]string{strings.ToLower(u.Host)}, segments...)
	parts = append(parts, name+".html")
	return path.Join(parts...), nil
}

func hashName(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}
