package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
)

type FontName string

const (
	Mono       FontName = "mono"        // debug readout
	MonoBanner FontName = "mono-banner" // pause banner
	MonoSmall  FontName = "mono-small"  // key hints
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var faces = map[FontName]font.Face{}

// LoadDefaults parses the embedded Go Mono faces at the sizes the
// overlays use.
func LoadDefaults() error {
	if err := LoadFontWithSize(Mono, gomono.TTF, 10); err != nil {
		return err
	}
	if err := LoadFontWithSize(MonoBanner, gomonobold.TTF, 16); err != nil {
		return err
	}
	return LoadFontWithSize(MonoSmall, gomono.TTF, 8)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	faces[name] = truetype.NewFace(parsed, &truetype.Options{Size: size})
	return nil
}

// Width returns the advance of s in face, rounded up to whole pixels.
func Width(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// LineHeight returns the distance between two baselines of face.
func LineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}

func getFont(name FontName) font.Face {
	f, ok := faces[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
