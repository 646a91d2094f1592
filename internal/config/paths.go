// Package config manages pushswap settings and where they are read from.
//
// Settings come from flags, PUSHSWAP_* environment variables, and an
// optional config.yaml, in that order of precedence. The config file is
// looked up in $XDG_CONFIG_HOME/pushswap, ~/.config/pushswap and
// ~/.pushswap unless a path is given explicitly.
package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvPrefix is prepended to setting names to form environment variables.
	EnvPrefix = "PUSHSWAP"

	// FileName is the config file name without extension.
	FileName = "config"

	appDir = "pushswap"
)

// SearchDirs returns the directories searched for the config file, without
// duplicates, in lookup order.
func SearchDirs() []string {
	added := make(map[string]struct{})
	var dirs []string
	add := func(path string) {
		if path == "" {
			return
		}
		if _, ok := added[path]; ok {
			return
		}
		added[path] = struct{}{}
		dirs = append(dirs, path)
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		add(filepath.Join(xdg, appDir))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		add(filepath.Join(home, ".config", appDir))
		add(filepath.Join(home, "."+appDir))
	}
	return dirs
}
