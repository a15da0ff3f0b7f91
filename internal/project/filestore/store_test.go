package filestore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"unix", "a\nb\n", []string{"a", "b"}},
		{"dos", "a\r\nb\r\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"blank lines", "\n\nx\n", []string{"", "", "x"}},
		{"bom", "\xef\xbb\xbfhi\n", []string{"hi"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "f.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			got, err := NewStore().ReadLines(path)
			if err != nil {
				t.Fatalf("ReadLines: %v", err)
			}
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("ReadLines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadLinesErrors(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(WithMaxFileSize(4))

	_, err := s.ReadLines(filepath.Join(dir, "missing"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}

	_, err = s.ReadLines(dir)
	if !errors.Is(err, ErrIsDirectory) {
		t.Errorf("directory error = %v", err)
	}

	big := filepath.Join(dir, "big")
	if err := os.WriteFile(big, []byte("0123456789"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = s.ReadLines(big)
	var pe *PathError
	if !errors.As(err, &pe) || !errors.Is(err, ErrFileTooLarge) || pe.Op != "open" {
		t.Errorf("large file error = %v", err)
	}
}

func TestWriteFileTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("a much longer previous content\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore()
	n, err := s.WriteFile(path, []byte("short\n"))
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if n != 6 {
		t.Errorf("n = %d, want 6", n)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "short\n" {
		t.Errorf("file = %q", data)
	}

	if _, err := s.ModTime(path); err != nil {
		t.Errorf("ModTime: %v", err)
	}
}

func TestWriteEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	n, err := NewStore().WriteFile(path, nil)
	if err != nil || n != 0 {
		t.Fatalf("WriteFile = %d, %v", n, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("size = %d, want 0", info.Size())
	}
}

func TestWriteFileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "f")
	_, err := NewStore().WriteFile(path, []byte("x"))
	var pe *PathError
	if !errors.As(err, &pe) || pe.Path != path {
		t.Errorf("error = %v", err)
	}
}
