package upload

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// multipartFile builds a request carrying a single "image" part with the
// given filename, declared content type and payload, and returns the parsed
// file and header.
func multipartFile(t *testing.T, filename, contentType string, payload []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("creating part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("writing part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	file, header, err := req.FormFile("image")
	if err != nil {
		t.Fatalf("FormFile: %v", err)
	}
	t.Cleanup(func() { file.Close() })

	return file, header
}

func TestStoreRejectsNonImageDeclaredType(t *testing.T) {
	in, err := NewIntake(t.TempDir())
	if err != nil {
		t.Fatalf("NewIntake: %v", err)
	}

	// Payload starts with a PNG signature, but the declared type wins.
	payload := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0xAB}, 64)...)
	file, header := multipartFile(t, "sneaky.png", "text/plain", payload)

	if _, err := in.Store(file, header); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("Store = %v, want ErrUnsupportedType", err)
	}
}

func TestStoreRejectsOversizedFile(t *testing.T) {
	dir := t.TempDir()
	in, err := NewIntake(dir)
	if err != nil {
		t.Fatalf("NewIntake: %v", err)
	}

	file, header := multipartFile(t, "big.jpg", "image/jpeg", bytes.Repeat([]byte{0xCD}, 6<<20))

	if _, err := in.Store(file, header); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("Store = %v, want ErrTooLarge", err)
	}

	// The partial file must not be left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("upload dir has %d leftover entries, want 0", len(entries))
	}
}

func TestStoreAcceptsImageUnderLimit(t *testing.T) {
	dir := t.TempDir()
	in, err := NewIntake(dir)
	if err != nil {
		t.Fatalf("NewIntake: %v", err)
	}

	payload := bytes.Repeat([]byte{0xEF}, 4<<20)
	file, header := multipartFile(t, "holiday photo.PNG", "image/png", payload)

	name, err := in.Store(file, header)
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	if strings.Contains(name, "holiday") {
		t.Errorf("stored name %q derived from the original filename", name)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("stored name %q does not keep the extension", name)
	}
	// 16 random bytes hex-encoded plus ".png".
	if len(name) != 32+4 {
		t.Errorf("stored name %q has length %d, want 36", name, len(name))
	}

	info, err := os.Stat(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if info.Size() != int64(len(payload)) {
		t.Errorf("stored size = %d, want %d", info.Size(), len(payload))
	}
}

func TestStoredNamesDoNotCollide(t *testing.T) {
	in, err := NewIntake(t.TempDir())
	if err != nil {
		t.Fatalf("NewIntake: %v", err)
	}

	seen := make(map[string]bool)
	for range 8 {
		file, header := multipartFile(t, "a.gif", "image/gif", []byte("GIF89a"))
		name, err := in.Store(file, header)
		if err != nil {
			t.Fatalf("Store: %v", err)
		}
		if seen[name] {
			t.Fatalf("duplicate stored name %q", name)
		}
		seen[name] = true
	}
}
