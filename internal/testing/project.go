package testing

import (
	"os"
	"path/filepath"
	"testing"
)

// Project is a temporary daily report project directory.
type Project struct {
	t   *testing.T
	Dir string
}

// NewProject creates an empty project in a test temp dir.
func NewProject(t *testing.T) *Project {
	t.Helper()
	return &Project{t: t, Dir: t.TempDir()}
}

// WithFile writes a file relative to the project directory, creating parents.
func (p *Project) WithFile(relativePath, content string) *Project {
	p.t.Helper()
	fullPath := p.Path(relativePath)
	if err := os.MkdirAll(filepath.Dir(fullPath), testDirPermissions); err != nil {
		p.t.Fatalf("Failed to create directory for %s: %v", fullPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), testFilePermissions); err != nil {
		p.t.Fatalf("Failed to write %s: %v", fullPath, err)
	}
	return p
}

// WithTemplate writes template.md.
func (p *Project) WithTemplate(content string) *Project {
	return p.WithFile("template.md", content)
}

// WithWorkingReport writes new_report.md.
func (p *Project) WithWorkingReport(content string) *Project {
	return p.WithFile("new_report.md", content)
}

// Path resolves a path relative to the project directory.
func (p *Project) Path(relativePath string) string {
	return filepath.Join(p.Dir, relativePath)
}

// Assert returns file assertions rooted at the project directory.
func (p *Project) Assert() *FileAssertions {
	return NewFileAssertions(p.t, p.Dir)
}
