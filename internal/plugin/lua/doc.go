// Package lua loads syntax definitions written as Lua scripts.
//
// A script runs in a restricted interpreter with only the base, table and
// string libraries and calls the global syntax function once per language:
//
//	syntax {
//	    name = "go",
//	    filematch = { ".go" },
//	    keywords = { "func", "if", "return", "int|", "string|" },
//	    comment = "//",
//	    multiline_start = "/*",
//	    multiline_end = "*/",
//	    numbers = true,
//	    strings = true,
//	}
//
// Scripts may compute tables with ordinary Lua before registering them, which
// is the reason to prefer this format over YAML for generated keyword lists.
package lua
