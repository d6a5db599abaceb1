package service

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fileHeader(name, mime string, size int64) *multipart.FileHeader {
	fh := &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{},
	}
	if mime != "" {
		fh.Header.Set("Content-Type", mime)
	}
	return fh
}

func TestValidateFileAccepted(t *testing.T) {
	for _, name := range []string{"photo.jpg", "photo.JPEG", "photo.png", "photo.webp", "photo.gif"} {
		fh := fileHeader(name, "", 1024)
		assert.NoError(t, ValidateFile(fh), "name=%q", name)
	}
}

func TestValidateFileRejectsExtension(t *testing.T) {
	fh := fileHeader("script.exe", "", 1024)
	assert.Error(t, ValidateFile(fh))

	fh = fileHeader("archive.zip", "", 1024)
	assert.Error(t, ValidateFile(fh))
}

func TestValidateFileRejectsMime(t *testing.T) {
	fh := fileHeader("photo.jpg", "application/octet-stream", 1024)
	assert.Error(t, ValidateFile(fh))

	fh = fileHeader("photo.jpg", "image/jpeg", 1024)
	assert.NoError(t, ValidateFile(fh))
}

func TestValidateFileRejectsTooLarge(t *testing.T) {
	fh := fileHeader("photo.jpg", "", maxFileSize+1)
	assert.Error(t, ValidateFile(fh))

	fh = fileHeader("photo.jpg", "", maxFileSize)
	assert.NoError(t, ValidateFile(fh))
}

func TestValidateFileRejectsTraversal(t *testing.T) {
	for _, name := range []string{"../etc/passwd.jpg", "a/b.jpg", "a\\b.jpg", "..jpg.."} {
		fh := fileHeader(name, "", 1024)
		assert.Error(t, ValidateFile(fh), "name=%q", name)
	}
}

func TestSaveAllRejectsTooManyFiles(t *testing.T) {
	svc, err := NewUploadService(t.TempDir())
	assert.NoError(t, err)

	files := make([]*multipart.FileHeader, maxFilesPerOp+1)
	for i := range files {
		files[i] = fileHeader("photo.jpg", "", 1024)
	}
	_, err = svc.SaveAll(files, "")
	assert.Error(t, err)
}
