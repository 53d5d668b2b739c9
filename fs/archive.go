package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/nyaa"
)

// Ensure ArchivingFetcher implements nyaa.Fetcher at compile time.
var _ nyaa.Fetcher = (*ArchivingFetcher)(nil)

// ArchivingFetcher stores every page fetched through it under a directory
// so listings can be parsed again offline.
type ArchivingFetcher struct {
	next    nyaa.Fetcher
	baseDir string
}

// NewArchivingFetcher wraps next and writes pages below baseDir.
func NewArchivingFetcher(next nyaa.Fetcher, baseDir string) *ArchivingFetcher {
	return &ArchivingFetcher{next: next, baseDir: baseDir}
}

// Fetch retrieves url through the wrapped fetcher and archives the body.
// A page that cannot be archived is reported as an error.
func (f *ArchivingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	if err := f.save(url, html); err != nil {
		return "", err
	}
	return html, nil
}

// Close closes the wrapped fetcher.
func (f *ArchivingFetcher) Close() error {
	return f.next.Close()
}

// Path returns where the page for url is archived.
func (f *ArchivingFetcher) Path(url string) (string, error) {
	relPath, err := URLToPath(url)
	if err != nil {
		return "", err
	}
	return filepath.Join(f.baseDir, filepath.FromSlash(relPath)), nil
}

// save writes to a temporary file first so readers never see a partial page.
func (f *ArchivingFetcher) save(url, html string) error {
	fullPath, err := f.Path(url)
	if err != nil {
		return err
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".page-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.WriteString(html); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fullPath)
}
