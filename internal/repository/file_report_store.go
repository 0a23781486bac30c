package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"MarketIntel/internal/domain/repository"
)

var _ repository.ReportStore = (*FileReportStore)(nil)

// FileReportStore keeps reports as files in one directory.
type FileReportStore struct {
	dir string
}

// NewFileReportStore creates dir if needed.
func NewFileReportStore(dir string) (*FileReportStore, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	return &FileReportStore{dir: dir}, nil
}

func (s *FileReportStore) Dir() string { return s.dir }

// Save writes content through a temp file and rename, so readers never see a partial report.
// An existing report with the same name is replaced.
func (s *FileReportStore) Save(ctx context.Context, name string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".report-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp report: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod report: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename report: %w", err)
	}
	return nil
}

func (s *FileReportStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, repository.ErrReportNotFound
		}
		return nil, fmt.Errorf("open report: %w", err)
	}
	return f, nil
}

// path rejects names that would leave the report directory.
func (s *FileReportStore) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) || name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: %q", repository.ErrInvalidReportName, name)
	}
	return filepath.Join(s.dir, name), nil
}
