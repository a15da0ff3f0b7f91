package highlight

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// syntaxFile is the on-disk YAML form of a Syntax. A file may hold several
// YAML documents, one definition each.
type syntaxFile struct {
	Name           string   `yaml:"name"`
	FileMatch      []string `yaml:"filematch"`
	Keywords       []string `yaml:"keywords"`
	Comment        string   `yaml:"comment"`
	MultiLineStart string   `yaml:"multiline_start"`
	MultiLineEnd   string   `yaml:"multiline_end"`
	Numbers        bool     `yaml:"numbers"`
	Strings        bool     `yaml:"strings"`
}

func (f syntaxFile) toSyntax() *Syntax {
	s := &Syntax{
		Name:              f.Name,
		FileMatch:         f.FileMatch,
		Keywords:          f.Keywords,
		SingleLineComment: f.Comment,
		MultiLineStart:    f.MultiLineStart,
		MultiLineEnd:      f.MultiLineEnd,
	}
	if f.Numbers {
		s.Flags |= HighlightNumbers
	}
	if f.Strings {
		s.Flags |= HighlightStrings
	}
	return s
}

// LoadYAML reads syntax definitions from a YAML stream.
func LoadYAML(r io.Reader) ([]*Syntax, error) {
	dec := yaml.NewDecoder(r)

	var out []*Syntax
	for {
		var f syntaxFile
		err := dec.Decode(&f)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode syntax: %w", err)
		}
		s := f.toSyntax()
		if err := s.Validate(); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// LoadYAMLFile reads syntax definitions from a YAML file.
func LoadYAMLFile(path string) ([]*Syntax, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	defs, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}
