package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/sweepbox/assets"
	"github.com/automoto/sweepbox/shared/leveldata"
)

// loadLevel reads path from disk when set, otherwise the embedded level name.
func loadLevel(name, path string) (*leveldata.CollisionData, string, error) {
	if path == "" {
		data, err := assets.LoadLevel(name)
		return data, name, err
	}
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	data, err := leveldata.LoadCollisionData(os.DirFS(dir), file)
	return data, strings.TrimSuffix(file, filepath.Ext(file)), err
}
