package capture

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// imageExtensions are the file types the capture device produces.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// DirectorySource reads captured stills from a shared directory. The capture
// device drops one cropped frame per interval with a timestamp filename, so
// lexical listing order is capture order, and that order defines how images
// pair with user entries.
type DirectorySource struct {
	dir string
}

// NewDirectorySource creates an image source over the given directory.
func NewDirectorySource(dir string) *DirectorySource {
	return &DirectorySource{dir: dir}
}

// List returns the image filenames in the capture directory in lexical order.
func (s *DirectorySource) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading capture directory %q: %w", s.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)
	return names, nil
}

// Read returns the raw bytes of one captured image.
func (s *DirectorySource) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("reading capture %q: %w", name, err)
	}
	return data, nil
}
