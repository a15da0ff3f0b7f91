// Package filestore reads documents from disk as lines and writes them back.
package filestore

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/dimchansky/utfbom"
)

// DefaultMaxFileSize is the largest file Open will read.
const DefaultMaxFileSize = 64 * 1024 * 1024

// Store performs file I/O for the editor.
type Store struct {
	maxFileSize int64
	perm        fs.FileMode
}

// Option configures a Store.
type Option func(*Store)

// WithMaxFileSize sets the maximum file size. Zero means unlimited.
func WithMaxFileSize(size int64) Option {
	return func(s *Store) {
		s.maxFileSize = size
	}
}

// WithPerm sets the permissions of newly created files.
func WithPerm(perm fs.FileMode) Option {
	return func(s *Store) {
		s.perm = perm
	}
}

// NewStore creates a Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		maxFileSize: DefaultMaxFileSize,
		perm:        0o644,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReadLines reads path and returns its lines without line terminators.
// A leading UTF-8 byte order mark is skipped.
func (s *Store) ReadLines(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &PathError{Op: "open", Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &PathError{Op: "open", Path: path, Err: ErrIsDirectory}
	}
	if s.maxFileSize > 0 && info.Size() > s.maxFileSize {
		return nil, &PathError{Op: "open", Path: path, Err: ErrFileTooLarge}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &PathError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, &PathError{Op: "read", Path: path, Err: err}
	}
	return lines, nil
}

// ReadLines splits r into lines, dropping "\n" and "\r\n" terminators.
// A leading UTF-8 byte order mark is skipped.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(utfbom.SkipOnly(r))
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
	}
}

// WriteFile writes data to path, creating it if needed and truncating it to
// exactly len(data). It returns the number of bytes written.
func (s *Store) WriteFile(path string, data []byte) (int, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, s.perm)
	if err != nil {
		return 0, &PathError{Op: "write", Path: path, Err: err}
	}

	if err := f.Truncate(int64(len(data))); err != nil {
		f.Close()
		return 0, &PathError{Op: "truncate", Path: path, Err: err}
	}
	n, err := f.Write(data)
	if err == nil && n != len(data) {
		err = ErrShortWrite
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, &PathError{Op: "write", Path: path, Err: err}
	}
	return n, nil
}

// ModTime returns the modification time of path.
func (s *Store) ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, &PathError{Op: "stat", Path: path, Err: err}
	}
	return info.ModTime(), nil
}
