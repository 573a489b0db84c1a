package stage

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	cfg "github.com/automoto/kumite/config"
	"github.com/lafriks/go-tiled"
)

// Object group names in stage TMX files
const (
	GroupFighterStart = "FighterStart"
	GroupBounds       = "Bounds"
)

// ErrNoStartMarks is returned when a stage lacks a start mark for a player.
var ErrNoStartMarks = errors.New("stage has no start mark")

// Default returns the built-in stage from the config.
func Default() *Stage {
	return &Stage{
		Name: "default",
		Starts: [2]Start{
			{X: cfg.Stage.StartLeft, FacingRight: true},
			{X: cfg.Stage.StartRight, FacingRight: false},
		},
		MinX: cfg.Stage.MinX,
		MaxX: cfg.Stage.MaxX,
	}
}

// Load parses a TMX stage. It takes an fs.FS so callers can pass embed.FS
// (client) or os.DirFS (tools).
//
// TMX pixels are converted to world units by the map tile width, with x=0 at
// the horizontal center of the map. Start marks are objects in the
// FighterStart group carrying a "player" int property (1 or 2) and a
// "facing" string property ("right" or "left"). An optional rectangle in the
// Bounds group limits walking; without it the map edges are used.
func Load(fsys fs.FS, tmxPath string) (*Stage, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile width must be positive", tmxPath)
	}

	unit := float64(levelMap.TileWidth)
	halfWidth := float64(levelMap.Width*levelMap.TileWidth) / 2
	toWorld := func(px float64) float64 {
		return (px - halfWidth) / unit
	}

	st := &Stage{
		Name: strings.TrimSuffix(filepath.Base(tmxPath), filepath.Ext(tmxPath)),
		MinX: toWorld(0),
		MaxX: toWorld(2 * halfWidth),
	}

	var found [2]bool
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupFighterStart:
			for _, o := range og.Objects {
				idx := o.Properties.GetInt("player") - 1
				if idx < 0 || idx >= len(st.Starts) {
					continue
				}
				facing := strings.ToLower(o.Properties.GetString("facing"))
				st.Starts[idx] = Start{
					X:           toWorld(o.X),
					FacingRight: facing != "left",
				}
				found[idx] = true
			}
		case GroupBounds:
			for _, o := range og.Objects {
				if o.Width <= 0 {
					continue
				}
				st.MinX = toWorld(o.X)
				st.MaxX = toWorld(o.X + o.Width)
				break
			}
		}
	}

	for i, ok := range found {
		if !ok {
			return nil, fmt.Errorf("load TMX %s: player %d: %w", tmxPath, i+1, ErrNoStartMarks)
		}
	}
	return st, nil
}
