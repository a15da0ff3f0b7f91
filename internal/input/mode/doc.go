// Package mode provides the interactive prompt modes of the editor.
//
// While no mode is active, keystrokes edit the document. Starting a mode
// (Save-As, Search, Goto-Line or Commit-Message) routes every keystroke to
// that mode's transition function until it exits. Each mode edits its own
// prompt buffer and talks to the editor through the Host interface.
//
// # Mode Lifecycle
//
//	Manager.Start(m)      -> m.Enter(host), prompt shown
//	Manager.HandleKey(ev) -> m.HandleKey(ev, host) returns Stay or Exit
//	Exit                  -> mode cleared, keystrokes edit again
//
// Mode change callbacks registered with OnChange are notified after every
// transition.
package mode
