package stage

import (
	"os"
	"testing"
	"testing/fstest"

	cfg "github.com/automoto/kumite/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStage = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="10" tileheight="10" infinite="0">
 <objectgroup id="1" name="FighterStart">
  <object id="1" x="150" y="100">
   <properties>
    <property name="player" type="int" value="2"/>
    <property name="facing" value="left"/>
   </properties>
   <point/>
  </object>
  <object id="2" x="50" y="100">
   <properties>
    <property name="player" type="int" value="1"/>
    <property name="facing" value="right"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Bounds">
  <object id="3" x="20" y="90" width="160" height="10"/>
 </objectgroup>
</map>
`

const noStartsStage = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="10" tileheight="10" infinite="0">
 <objectgroup id="1" name="FighterStart">
  <object id="1" x="50" y="100">
   <properties>
    <property name="player" type="int" value="1"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"stages/test.tmx": &fstest.MapFile{Data: []byte(testStage)},
	}

	st, err := Load(fsys, "stages/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, "test", st.Name)
	// Map is 200px wide with 10px units, so x=100px is world 0.
	assert.Equal(t, Start{X: -5, FacingRight: true}, st.Starts[cfg.Player1])
	assert.Equal(t, Start{X: 5, FacingRight: false}, st.Starts[cfg.Player2])
	assert.Equal(t, -8.0, st.MinX)
	assert.Equal(t, 8.0, st.MaxX)
}

func TestLoadMissingStartMark(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.tmx": &fstest.MapFile{Data: []byte(noStartsStage)},
	}

	_, err := Load(fsys, "bad.tmx")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoStartMarks)
	assert.Contains(t, err.Error(), "player 2")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "nope.tmx")
	assert.Error(t, err)
}

func TestLoadBundledDojo(t *testing.T) {
	st, err := Load(os.DirFS("../../assets"), "stages/dojo.tmx")
	require.NoError(t, err)

	assert.True(t, st.Starts[cfg.Player1].FacingRight)
	assert.False(t, st.Starts[cfg.Player2].FacingRight)
	assert.Less(t, st.Starts[cfg.Player1].X, st.Starts[cfg.Player2].X)
	assert.Less(t, st.MinX, st.Starts[cfg.Player1].X)
	assert.Greater(t, st.MaxX, st.Starts[cfg.Player2].X)
}

func TestDefault(t *testing.T) {
	st := Default()
	assert.Equal(t, cfg.Stage.StartLeft, st.Starts[cfg.Player1].X)
	assert.Equal(t, cfg.Stage.StartRight, st.Starts[cfg.Player2].X)
	assert.True(t, st.Starts[cfg.Player1].FacingRight)
}
