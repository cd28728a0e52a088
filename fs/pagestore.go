// Package fs provides file-based storage for fetched pages.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sitefetch/sitefetch"
)

// Ensure FileStore implements sitefetch.PageStore at compile time.
var _ sitefetch.PageStore = (*FileStore)(nil)

// FileStore implements sitefetch.PageStore with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Dir returns the directory committed pages end up in.
func (s *FileStore) Dir() string {
	return s.finalDir()
}

func (s *FileStore) Save(ctx context.Context, page *sitefetch.Page) error {
	relPath, err := URLToPath(page.URL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	content := FormatPage(page)
	return os.WriteFile(fullPath, []byte(content), 0644)
}

func (s *FileStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	return nil
}

func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// FormatPage formats a page with YAML frontmatter.
func FormatPage(page *sitefetch.Page) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(page.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(page.Title)
	b.WriteString("\ncrawled: ")
	b.WriteString(time.Now().Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(page.Content)
	return b.String()
}

// URLToPath converts a page URL to a relative file path.
// Example: https://example.com/docs/api/users → docs/api/users.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Reject ".." segments so a hostile URL cannot escape the output dir.
	for _, seg := range strings.Split(path, "/") {
		if seg == ".." {
			return "", sitefetch.Errorf(sitefetch.EINVALID, "path traversal in URL path: %s", path)
		}
	}

	// Handle root or trailing slash → index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	// Remove leading slash
	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index.md in that directory
	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	// Otherwise append .md
	return path + ".md", nil
}
