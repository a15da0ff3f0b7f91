package highlight

// CSyntax returns the definition for C and C++.
func CSyntax() *Syntax {
	return &Syntax{
		Name:      "c",
		FileMatch: []string{".c", ".h", ".cpp", ".cc", ".hpp"},
		Keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else",
			"struct", "union", "typedef", "static", "enum", "class", "case",
			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
			"void|",
		},
		SingleLineComment: "//",
		MultiLineStart:    "/*",
		MultiLineEnd:      "*/",
		Flags:             HighlightNumbers | HighlightStrings,
	}
}

// GoSyntax returns the definition for Go.
func GoSyntax() *Syntax {
	return &Syntax{
		Name:      "go",
		FileMatch: []string{".go"},
		Keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer",
			"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
			"interface", "map", "package", "range", "return", "select", "struct",
			"switch", "type", "var",
			"bool|", "byte|", "error|", "float32|", "float64|", "int|", "int8|",
			"int16|", "int32|", "int64|", "rune|", "string|", "uint|", "uint8|",
			"uint16|", "uint32|", "uint64|", "uintptr|", "any|",
			"true|", "false|", "nil|", "iota|",
		},
		SingleLineComment: "//",
		MultiLineStart:    "/*",
		MultiLineEnd:      "*/",
		Flags:             HighlightNumbers | HighlightStrings,
	}
}

// PythonSyntax returns the definition for Python.
func PythonSyntax() *Syntax {
	return &Syntax{
		Name:      "python",
		FileMatch: []string{".py", ".pyw", ".pyi"},
		Keywords: []string{
			"if", "elif", "else", "for", "while", "break", "continue", "return",
			"try", "except", "finally", "raise", "with", "as", "def", "class",
			"lambda", "import", "from", "pass", "yield", "in", "is", "not",
			"and", "or",
			"True|", "False|", "None|", "int|", "float|", "str|", "bool|",
			"list|", "dict|", "set|", "tuple|",
		},
		SingleLineComment: "#",
		Flags:             HighlightNumbers | HighlightStrings,
	}
}

// JavaScriptSyntax returns the definition for JavaScript and TypeScript.
func JavaScriptSyntax() *Syntax {
	return &Syntax{
		Name:      "javascript",
		FileMatch: []string{".js", ".jsx", ".ts", ".tsx", ".mjs"},
		Keywords: []string{
			"if", "else", "for", "while", "do", "switch", "case", "default",
			"break", "continue", "return", "throw", "try", "catch", "finally",
			"function", "var", "let", "const", "class", "extends", "new",
			"import", "export", "from", "async", "await",
			"true|", "false|", "null|", "undefined|", "this|",
		},
		SingleLineComment: "//",
		MultiLineStart:    "/*",
		MultiLineEnd:      "*/",
		Flags:             HighlightNumbers | HighlightStrings,
	}
}

// RustSyntax returns the definition for Rust.
func RustSyntax() *Syntax {
	return &Syntax{
		Name:      "rust",
		FileMatch: []string{".rs"},
		Keywords: []string{
			"if", "else", "match", "for", "while", "loop", "break", "continue",
			"return", "fn", "let", "mut", "const", "static", "struct", "enum",
			"trait", "impl", "type", "mod", "use", "pub", "where", "as",
			"i8|", "i16|", "i32|", "i64|", "u8|", "u16|", "u32|", "u64|",
			"f32|", "f64|", "bool|", "char|", "str|", "String|", "Self|",
		},
		SingleLineComment: "//",
		MultiLineStart:    "/*",
		MultiLineEnd:      "*/",
		Flags:             HighlightNumbers | HighlightStrings,
	}
}

// ShellSyntax returns the definition for POSIX shell scripts.
func ShellSyntax() *Syntax {
	return &Syntax{
		Name:      "shell",
		FileMatch: []string{".sh", ".bash", "Makefile"},
		Keywords: []string{
			"if", "then", "else", "elif", "fi", "for", "while", "do", "done",
			"case", "esac", "in", "function", "return",
			"echo|", "export|", "local|", "set|", "cd|",
		},
		SingleLineComment: "#",
		Flags:             HighlightNumbers | HighlightStrings,
	}
}

// RegisterBuiltins registers every built-in definition with r.
func RegisterBuiltins(r *Registry) {
	for _, s := range []*Syntax{
		CSyntax(),
		GoSyntax(),
		PythonSyntax(),
		JavaScriptSyntax(),
		RustSyntax(),
		ShellSyntax(),
	} {
		_ = r.Register(s) // built-ins are known valid
	}
}
