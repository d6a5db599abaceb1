package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	maxFileSize   = 5 << 20 // 5MB
	maxFilesPerOp = 10
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// UploadService stores uploaded images under a local uploads directory with
// randomly generated filenames. Stored paths are relative (e.g.
// /uploads/brands/<uuid>.png) and rewritten to absolute URLs at read time.
type UploadService struct {
	baseDir string
}

// NewUploadService creates the uploads directory tree if needed.
func NewUploadService(baseDir string) (*UploadService, error) {
	for _, dir := range []string{baseDir, filepath.Join(baseDir, "brands"), filepath.Join(baseDir, "categories")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
		}
	}
	return &UploadService{baseDir: baseDir}, nil
}

// ValidateFile checks one upload against the type, size, and filename
// rules. Returns a caller-facing message when the file is rejected.
func ValidateFile(fh *multipart.FileHeader) error {
	if strings.Contains(fh.Filename, "/") || strings.Contains(fh.Filename, "\\") || strings.Contains(fh.Filename, "..") {
		return fmt.Errorf("invalid filename %q", fh.Filename)
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("only JPEG, PNG, WEBP, and GIF images are allowed")
	}
	if mime := fh.Header.Get("Content-Type"); mime != "" && !allowedMimeTypes[mime] {
		return fmt.Errorf("only JPEG, PNG, WEBP, and GIF images are allowed")
	}
	if fh.Size > maxFileSize {
		return fmt.Errorf("file %q exceeds the 5MB limit", fh.Filename)
	}
	return nil
}

// SaveAll validates and stores a batch of uploads under subdir ("" for the
// root tree). It returns the stored relative paths in input order. On any
// failure already-written files are removed.
func (s *UploadService) SaveAll(files []*multipart.FileHeader, subdir string) ([]string, error) {
	if len(files) > maxFilesPerOp {
		return nil, fmt.Errorf("at most %d files per upload", maxFilesPerOp)
	}

	var saved []string
	for _, fh := range files {
		path, err := s.save(fh, subdir)
		if err != nil {
			s.Remove(saved)
			return nil, err
		}
		saved = append(saved, path)
	}
	return saved, nil
}

// SaveOne validates and stores a single upload, returning its relative path.
func (s *UploadService) SaveOne(fh *multipart.FileHeader, subdir string) (string, error) {
	return s.save(fh, subdir)
}

func (s *UploadService) save(fh *multipart.FileHeader, subdir string) (string, error) {
	if err := ValidateFile(fh); err != nil {
		return "", err
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(fh.Filename))
	dst := filepath.Join(s.baseDir, subdir, name)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	rel := "/uploads/" + name
	if subdir != "" {
		rel = "/uploads/" + subdir + "/" + name
	}
	return rel, nil
}

// Remove deletes stored files by their relative paths, best effort.
func (s *UploadService) Remove(relPaths []string) {
	for _, rel := range relPaths {
		trimmed := strings.TrimPrefix(rel, "/uploads/")
		if trimmed == rel || strings.Contains(trimmed, "..") {
			continue
		}
		if err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(trimmed))); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", rel).Msg("Failed to remove stored upload")
		}
	}
}
