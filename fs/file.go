// Package fs provides a directory-backed file store for files referenced
// by courseware blocks.
package fs

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/cwsummary"
	"github.com/google/uuid"
)

// Ensure FileService implements cwsummary.FileService at compile time.
var _ cwsummary.FileService = (*FileService)(nil)

// FileService stores each file in its own directory named after the file
// ID: baseDir/<id>/<name>.
type FileService struct {
	baseDir string
}

// NewFileService creates a new FileService rooted at baseDir.
func NewFileService(baseDir string) *FileService {
	return &FileService{baseDir: baseDir}
}

// FindFileByID retrieves a file by ID.
func (s *FileService) FindFileByID(ctx context.Context, id string) (*cwsummary.File, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	dir := filepath.Join(s.baseDir, id)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, cwsummary.Errorf(cwsummary.ENOTFOUND, "file %q not found", id)
	}
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if e.Type().IsRegular() && !strings.HasSuffix(e.Name(), ".tmp") {
			return &cwsummary.File{
				ID:   id,
				Name: e.Name(),
				Path: filepath.Join(dir, e.Name()),
			}, nil
		}
	}

	return nil, cwsummary.Errorf(cwsummary.ENOTFOUND, "file %q not found", id)
}

// ImportFile copies the file at srcPath into the store under a new ID.
// The copy is written to a temporary name first and renamed when complete.
func (s *FileService) ImportFile(ctx context.Context, srcPath string) (*cwsummary.File, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, cwsummary.Errorf(cwsummary.EINVALID, "%q is not a regular file", srcPath)
	}

	file := &cwsummary.File{
		ID:   uuid.New().String(),
		Name: filepath.Base(srcPath),
	}
	dir := filepath.Join(s.baseDir, file.ID)
	file.Path = filepath.Join(dir, file.Name)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	tmpPath := file.Path + ".tmp"
	if err := copyFile(tmpPath, src); err != nil {
		os.RemoveAll(dir)
		return nil, err
	}
	if err := os.Rename(tmpPath, file.Path); err != nil {
		os.RemoveAll(dir)
		return nil, err
	}

	return file, nil
}

func copyFile(dst string, src io.Reader) error {
	f, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// validateID rejects IDs that would resolve outside the base directory.
func validateID(id string) error {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return cwsummary.Errorf(cwsummary.EINVALID, "invalid file ID %q", id)
	}
	return nil
}
