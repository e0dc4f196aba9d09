// Package upload validates and stores incoming profile pictures. A stored
// file gets a random name; nothing from the client-supplied filename except
// the extension ever reaches the filesystem.
package upload

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("only image files are allowed")
	ErrTooLarge        = errors.New("file exceeds the maximum allowed size")
	ErrNoFile          = errors.New("no file was uploaded")
)

const MaxFileSize = 5 << 20 // 5 MiB

type Intake struct {
	dir     string
	maxSize int64
}

func NewIntake(dir string) (*Intake, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}

	return &Intake{
		dir:     dir,
		maxSize: MaxFileSize,
	}, nil
}

// Store writes the file to the upload directory under a generated name and
// returns that name. The declared Content-Type must be image/*; the check
// runs before any byte is written. Files over the size cap are removed and
// rejected with ErrTooLarge.
func (in *Intake) Store(file multipart.File, header *multipart.FileHeader) (string, error) {
	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		return "", ErrUnsupportedType
	}

	name, err := randomName(header.Filename)
	if err != nil {
		return "", fmt.Errorf("generating filename: %w", err)
	}

	path := filepath.Join(in.dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}

	// Copy one byte past the cap so an oversized file is detected without
	// buffering it in memory.
	n, err := io.CopyN(dst, file, in.maxSize+1)
	if err != nil && !errors.Is(err, io.EOF) {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("writing file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("closing file: %w", err)
	}
	if n > in.maxSize {
		os.Remove(path)
		return "", ErrTooLarge
	}

	return name, nil
}

// randomName builds a 16-byte random hex identifier with the original
// file's extension appended.
func randomName(original string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf) + strings.ToLower(filepath.Ext(original)), nil
}
