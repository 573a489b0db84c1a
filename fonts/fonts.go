package fonts

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Small   FontName = "small"
)

// Point sizes used when a TTF is loaded
var sizes = map[FontName]float64{
	Regular: 10,
	Bold:    20,
	Title:   32,
	Small:   12,
}

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadFile loads every face from a TTF on disk.
func LoadFile(path string) error {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font %s: %w", path, err)
	}
	return Load(ttf)
}

// Load parses a TTF and registers every face at its configured size.
func Load(ttf []byte) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	for name, size := range sizes {
		fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	}
	return nil
}

// UseFallback registers the built-in bitmap face under every name.
func UseFallback() {
	for name := range sizes {
		fonts[name] = basicfont.Face7x13
	}
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
