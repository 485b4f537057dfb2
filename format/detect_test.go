package format

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"manifest.pdf", PDF},
		{"manifest.PDF", PDF},
		{"scan.png", PNG},
		{"scan.jpg", JPEG},
		{"scan.jpeg", JPEG},
		{"scan.tif", TIFF},
		{"scan.tiff", TIFF},
		{"notes.txt", Unknown},
		{"noext", Unknown},
	}
	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectReader(t *testing.T) {
	tests := []struct {
		name string
		head []byte
		want Format
	}{
		{"pdf", []byte("%PDF-1.7\n%stuff"), PDF},
		{"png", []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0}, PNG},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0}, JPEG},
		{"tiff little endian", []byte{'I', 'I', 0x2A, 0x00, 1, 2, 3, 4}, TIFF},
		{"tiff big endian", []byte{'M', 'M', 0x00, 0x2A, 1, 2, 3, 4}, TIFF},
		{"text", []byte("hello world"), Unknown},
		{"short", []byte{0x01}, Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectReader(bytes.NewReader(tt.head))
			if err != nil {
				t.Fatalf("DetectReader() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectReader() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFile_SniffBeatsExtension(t *testing.T) {
	// A PDF saved with a misleading extension is still a PDF.
	path := filepath.Join(t.TempDir(), "manifest.png")
	if err := os.WriteFile(path, []byte("%PDF-1.4\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := DetectFile(path)
	if err != nil {
		t.Fatalf("DetectFile() error: %v", err)
	}
	if got != PDF {
		t.Errorf("DetectFile() = %v, want PDF", got)
	}
}

func TestDetectFile_FallsBackToExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.tiff")
	if err := os.WriteFile(path, []byte("??"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := DetectFile(path)
	if err != nil {
		t.Fatalf("DetectFile() error: %v", err)
	}
	if got != TIFF {
		t.Errorf("DetectFile() = %v, want TIFF", got)
	}
}

func TestFormatString(t *testing.T) {
	if PDF.String() != "PDF" || Unknown.String() != "Unknown" {
		t.Error("String() mismatch")
	}
	if !PNG.IsImage() || PDF.IsImage() {
		t.Error("IsImage() mismatch")
	}
}
