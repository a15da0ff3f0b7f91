// Package config loads editor settings.
//
// Settings are resolved in three layers, each overriding the one below:
//
//	┌─────────────────────────────┐
//	│  3. Environment (ARES_*)    │  ← Highest priority
//	├─────────────────────────────┤
//	│  2. config.toml             │  ← $XDG_CONFIG_HOME/ares/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// A config file may pull in others with a top-level @include key; included
// files have lower priority than the file that names them.
//
// Example config.toml:
//
//	[editor]
//	tab_stop = 4
//	quit_times = 2
//	message_timeout = "3s"
//
//	[log]
//	level = "debug"
//	file = "/tmp/ares.log"
//	format = "json"
//
//	[syntax]
//	dirs = ["~/.config/ares/syntax"]
//
//	[theme]
//	keyword1 = "#ffcc00"
//
//	[git]
//	remote = "origin"
//	branch = "main"
//	push = true
//
// Environment variables map onto the same keys: ARES_EDITOR_TAB_STOP=2 sets
// editor.tab_stop, ARES_THEME_COMMENT="#888888" sets theme.comment.
package config
