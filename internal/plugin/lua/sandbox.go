package lua

import lua "github.com/yuin/gopher-lua"

// openSafeLibraries opens only the libraries a definition script needs.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
}

// installSandbox removes base functions that reach the filesystem or load
// code the script did not contain.
func installSandbox(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}
