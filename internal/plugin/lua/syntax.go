package lua

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/ares/internal/renderer/highlight"
)

// LoadSyntaxFile runs the script at path and returns the definitions it
// registered.
func LoadSyntaxFile(path string, opts ...StateOption) ([]*highlight.Syntax, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	defs, err := loadSyntax(func(s *State) error { return s.DoFile(path) }, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// LoadSyntaxString runs a script held in memory.
func LoadSyntaxString(src string, opts ...StateOption) ([]*highlight.Syntax, error) {
	return loadSyntax(func(s *State) error { return s.DoString(src) }, opts)
}

func loadSyntax(exec func(*State) error, opts []StateOption) ([]*highlight.Syntax, error) {
	state := NewState(opts...)
	defer state.Close()

	var defs []*highlight.Syntax
	state.SetGlobalFunction("syntax", func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		syn := tableToSyntax(tbl)
		if err := syn.Validate(); err != nil {
			L.RaiseError("%s", err.Error())
			return 0
		}
		defs = append(defs, syn)
		return 0
	})

	if err := exec(state); err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, ErrNoSyntax
	}
	return defs, nil
}

func tableToSyntax(tbl *lua.LTable) *highlight.Syntax {
	syn := &highlight.Syntax{
		Name:              stringField(tbl, "name"),
		FileMatch:         stringList(tbl, "filematch"),
		Keywords:          stringList(tbl, "keywords"),
		SingleLineComment: stringField(tbl, "comment"),
		MultiLineStart:    stringField(tbl, "multiline_start"),
		MultiLineEnd:      stringField(tbl, "multiline_end"),
	}
	if lua.LVAsBool(tbl.RawGetString("numbers")) {
		syn.Flags |= highlight.HighlightNumbers
	}
	if lua.LVAsBool(tbl.RawGetString("strings")) {
		syn.Flags |= highlight.HighlightStrings
	}
	return syn
}

func stringField(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// stringList reads an array of strings. A bare string is treated as a
// one-element list; non-string entries are skipped.
func stringList(tbl *lua.LTable, key string) []string {
	switch v := tbl.RawGetString(key).(type) {
	case lua.LString:
		return []string{string(v)}
	case *lua.LTable:
		out := make([]string, 0, v.Len())
		for i := 1; i <= v.Len(); i++ {
			if s, ok := v.RawGetInt(i).(lua.LString); ok {
				out = append(out, string(s))
			}
		}
		return out
	}
	return nil
}
