package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

//go:embed all:stages all:replays
var bundledFS embed.FS

// DefaultStage is the stage loaded when none is given on the command line.
const DefaultStage = "stages/dojo.tmx"

// Bundled returns the assets compiled into the binary.
func Bundled() fs.FS {
	return bundledFS
}

// Open returns an asset filesystem rooted at dir. Files missing from dir
// fall back to the bundled copies, so a partial asset folder (audio only,
// for example) still finds the dojo stage.
func Open(dir string) fs.FS {
	if dir == "" {
		return bundledFS
	}
	return layeredFS{primary: os.DirFS(dir), fallback: bundledFS}
}

type layeredFS struct {
	primary  fs.FS
	fallback fs.FS
}

func (l layeredFS) Open(name string) (fs.File, error) {
	f, err := l.primary.Open(name)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("open asset %s: %w", name, err)
	}
	return l.fallback.Open(name)
}
