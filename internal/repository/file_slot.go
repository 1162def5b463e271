package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/go-git/go-billy/v6"
	"github.com/google/uuid"

	"github.com/lewtec/galeria/internal/domain"
)

// FileSlot implements domain.Slot as a single file. Writes go to a temporary
// file first and are renamed over the target.
type FileSlot struct {
	fs   billy.Filesystem
	name string
}

// NewFileSlot creates a slot stored in the file name of fs
func NewFileSlot(fs billy.Filesystem, name string) *FileSlot {
	return &FileSlot{fs: fs, name: name}
}

// Read returns the file content
func (s *FileSlot) Read(ctx context.Context) (string, bool, error) {
	f, err := s.fs.Open(s.name)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", false, fmt.Errorf("while reading '%s': %w", s.name, err)
	}
	return string(data), true, nil
}

// Write replaces the file content
func (s *FileSlot) Write(ctx context.Context, value string) error {
	if dir := path.Dir(s.name); dir != "." && dir != "/" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("while creating '%s': %w", dir, err)
		}
	}
	tempFile := fmt.Sprintf("%s.%s.tmp", s.name, uuid.New())
	f, err := s.fs.Create(tempFile)
	if err != nil {
		return err
	}
	_, err = io.WriteString(f, value)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = s.fs.Rename(tempFile, s.name)
	}
	if err != nil {
		s.fs.Remove(tempFile)
		return fmt.Errorf("while writing '%s': %w", s.name, err)
	}
	return nil
}

var _ domain.Slot = (*FileSlot)(nil)
