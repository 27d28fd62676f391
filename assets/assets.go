package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/sweepbox/shared/leveldata"
)

// DefaultLevel is loaded when no level is named on the command line.
const DefaultLevel = "sandbox"

//go:embed levels/*.tmx
var levelFS embed.FS

// Levels returns the embedded level files rooted at levels/.
func Levels() fs.FS {
	return levelFS
}

// LoadLevel parses an embedded level by stem name.
func LoadLevel(name string) (*leveldata.CollisionData, error) {
	data, err := leveldata.LoadCollisionData(levelFS, "levels/"+name+".tmx")
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	return data, nil
}

// LevelNames lists the embedded levels in sorted order.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAllLevels(levelFS, "levels")
	if err != nil {
		return nil, err
	}
	return names, nil
}
