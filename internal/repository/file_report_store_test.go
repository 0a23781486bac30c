package repository

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"MarketIntel/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileReportStoreSaveOverwrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	s, err := NewFileReportStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "r.html", []byte("first")))
	require.NoError(t, s.Save(ctx, "r.html", []byte("second")))

	b, err := os.ReadFile(filepath.Join(dir, "r.html"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileReportStoreOpen(t *testing.T) {
	s, err := NewFileReportStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Open(ctx, "missing.html")
	assert.ErrorIs(t, err, repository.ErrReportNotFound)

	require.NoError(t, s.Save(ctx, "a.html", []byte("<p>x</p>")))
	rc, err := s.Open(ctx, "a.html")
	require.NoError(t, err)
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>", string(b))
}

func TestFileReportStoreRejectsTraversal(t *testing.T) {
	s, err := NewFileReportStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, name := range []string{"", "..", "../etc/passwd", "a/b.html", `a\b.html`, ".hidden"} {
		_, err := s.Open(ctx, name)
		assert.ErrorIs(t, err, repository.ErrInvalidReportName, name)
		assert.ErrorIs(t, s.Save(ctx, name, nil), repository.ErrInvalidReportName, name)
	}
}
