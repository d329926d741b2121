package game

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrLevelNotFound reports a level name with no grid anywhere in the
// source chain. Hitting it mid-game is fatal.
var ErrLevelNotFound = errors.New("game: level not found")

// Character lookup tables for the textual level grid. One character is
// one tile; anything not listed (and not blank) becomes a generic solid
// entity of one tile.
var (
	blockChars = map[byte]string{
		'#': KindBrick,
		'%': KindBrickBase,
		'?': KindMysteryEmpty,
		'$': KindMysteryCoin,
		'b': KindBounce,
		'^': KindCube,
		'I': KindFlag,
		'=': KindTunnel,
		'S': KindSwitch,
	}
	itemChars = map[byte]string{
		'C': KindCoin,
		'*': KindStar,
	}
	mobChars = map[byte]string{
		'&': KindCloud,
		'@': KindMushroom,
	}
)

// Mystery coin blocks drop between 3 and 6 coins.
const (
	mysteryDropMin = 3
	mysteryDropMax = 6
)

// BuildWorld populates a world from a textual level grid. Each grid cell
// maps to a 16px tile; goal blocks are anchored so their base sits on
// the marked row. The rng drives mystery-block drop counts.
func BuildWorld(w *World, grid []string, rng *rand.Rand) {
	width := 0
	for _, line := range grid {
		if len(line) > width {
			width = len(line)
		}
	}
	w.SetSize(float64(width)*TileSize, float64(len(grid))*TileSize)

	for row, line := range grid {
		for col := 0; col < len(line); col++ {
			ch := line[col]
			if ch == ' ' || ch == '\t' {
				continue
			}
			x := float64(col) * TileSize
			y := float64(row) * TileSize

			if kind, ok := blockChars[ch]; ok {
				block := buildBlock(kind, rng)
				// Tall blocks stand on the marked row rather than
				// hanging below it.
				y -= block.Box().Size.Y - TileSize
				w.AddBlock(block, x, y)
				continue
			}
			if kind, ok := itemChars[ch]; ok {
				w.AddItem(NewItem(kind), x, y)
				continue
			}
			if kind, ok := mobChars[ch]; ok {
				w.AddMob(NewMob(kind), x, y)
				continue
			}
			// Unrecognized characters fall back to a generic solid
			// block of one tile.
			w.AddBlock(NewBlock("solid"), x, y)
		}
	}
}

func buildBlock(kind string, rng *rand.Rand) *Block {
	switch kind {
	case KindMysteryEmpty:
		return NewMysteryBlock("", 0, 0, rng)
	case KindMysteryCoin:
		return NewMysteryBlock(KindCoin, mysteryDropMin, mysteryDropMax, rng)
	default:
		return NewBlock(kind)
	}
}

// FileLevelSource loads level grids from text files in a directory,
// falling back to the builtin levels when the directory is empty or the
// file is absent.
type FileLevelSource struct {
	Dir string
}

// Grid returns the level grid for the given name.
func (s FileLevelSource) Grid(name string) ([]string, error) {
	if s.Dir != "" {
		path := filepath.Join(s.Dir, name)
		if !strings.Contains(name, ".") {
			path += ".txt"
		}
		if data, err := os.ReadFile(path); err == nil {
			return splitGrid(string(data)), nil
		}
	}
	if grid, ok := builtinLevels[name]; ok {
		return grid, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrLevelNotFound, name)
}

func splitGrid(data string) []string {
	lines := strings.Split(strings.TrimRight(data, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}

// BuiltinLevelNames returns the names of the compiled-in levels, sorted
// for display.
func BuiltinLevelNames() []string {
	names := make([]string, 0, len(builtinLevels))
	for name := range builtinLevels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// builtinLevels are the compiled-in level grids, matching the default
// configuration's level graph.
var builtinLevels = map[string][]string{
	"level1": {
		"                                                  ",
		"                                                  ",
		"                  &                               ",
		"                                                  ",
		"            $                          C          ",
		"                                      ###         ",
		"      C C                                        I",
		"     #####        b       @          S           I",
		"            ^^         #####    # # ###     =    I",
		"%%%%%%%%%%%%%%%%%%  %%%%%%%%%%%%%%%%%%%%%%%%%%%%%%",
	},
	"bonus": {
		"                              ",
		"     C C C C C                ",
		"    ##########                ",
		"              *               ",
		"         @   ###       I      ",
		"%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%",
	},
	"level2": {
		"                                            ",
		"                &                           ",
		"        ?                                   ",
		"   C                 $        C C           ",
		"  ###     @    @    ###      #####          ",
		"              ####                   b     I",
		"       ^^                  S               I",
		"%%%%%%%%%%%%  %%%%%%%%%%%%%%%%%%%%%%%%%%%%%%",
	},
}
