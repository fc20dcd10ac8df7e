package localfiles

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"fileboard-client/internal/domain"
)

// Picker turns local paths into a FileSelection, the way a file picker does in a browser.
type Picker struct {
	basePath string
}

// Selection holds the opened files of one upload. Close it once the request is done.
type Selection struct {
	Files domain.FileSelection
	open  []*os.File
}

func NewPicker(basePath string) *Picker {
	return &Picker{basePath: basePath}
}

func (p *Picker) GetAbsolutePath(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.basePath, path)
}

// Pick opens every path in order. On error nothing is left open.
func (p *Picker) Pick(paths ...string) (*Selection, error) {
	sel := &Selection{
		Files: make(domain.FileSelection, 0, len(paths)),
		open:  make([]*os.File, 0, len(paths)),
	}

	for _, path := range paths {
		fullPath := p.GetAbsolutePath(path)
		info, err := os.Stat(fullPath)
		if err != nil {
			sel.Close()
			return nil, fmt.Errorf("could not stat '%s': %w", path, err)
		}
		if !info.Mode().IsRegular() {
			sel.Close()
			return nil, fmt.Errorf("'%s': %w", path, domain.ErrNotRegularFile)
		}

		f, err := os.Open(fullPath)
		if err != nil {
			sel.Close()
			return nil, fmt.Errorf("could not open '%s': %w", path, err)
		}
		sel.open = append(sel.open, f)
		sel.Files = append(sel.Files, domain.FileHandle{
			Name:    filepath.Base(fullPath),
			Content: f,
		})
	}

	return sel, nil
}

// PickDirectory selects the regular, non-hidden files directly inside dir, sorted by name.
func (p *Picker) PickDirectory(dir string) (*Selection, error) {
	fullPath := p.GetAbsolutePath(dir)
	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not read directory '%s': %w", dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), domain.HiddenFilePrefix) {
			continue
		}
		info, infoErr := e.Info()
		if infoErr != nil {
			// broken symlinks and the like
			logrus.Warnf("Failed to get info for %s: %v", e.Name(), infoErr)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		paths = append(paths, filepath.Join(fullPath, e.Name()))
	}
	sort.Strings(paths)

	return p.Pick(paths...)
}

func (s *Selection) Close() {
	for _, f := range s.open {
		if closeErr := f.Close(); closeErr != nil {
			logrus.Warnf("Failed to close file %s: %v", f.Name(), closeErr)
		}
	}
	s.open = nil
}
