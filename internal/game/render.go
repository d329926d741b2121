package game

import (
	"fmt"

	"tui-platformer/internal/core"
)

// HUD occupies the top rows; the world is drawn below it.
const hudRows = 2

// Visual characters for rendering.
const (
	PlayerChar   = '☻'
	CoinChar     = 'o'
	StarChar     = '*'
	MushroomChar = '@'
	CloudChar    = '~'
	FireballChar = '!'
)

var blockRunes = map[string]rune{
	KindBrick:        '#',
	KindBrickBase:    '%',
	KindCube:         '^',
	KindBounce:       'b',
	KindMysteryEmpty: '?',
	KindMysteryCoin:  '?',
	KindSwitch:       'S',
	KindFlag:         'I',
	KindTunnel:       '=',
}

var blockColors = map[string]core.Color{
	KindBrick:        core.ColorOrange,
	KindBrickBase:    core.ColorGray,
	KindCube:         core.ColorGray,
	KindBounce:       core.ColorCyan,
	KindMysteryEmpty: core.ColorYellow,
	KindMysteryCoin:  core.ColorYellow,
	KindSwitch:       core.ColorRed,
	KindFlag:         core.ColorGreen,
	KindTunnel:       core.ColorGreen,
}

// cameraOffset returns the world-pixel x offset of the left screen edge,
// keeping the player centered except near the level boundaries.
func (g *Game) cameraOffset(screenCells int) float64 {
	if g.world == nil || g.player == nil {
		return 0
	}
	half := float64(screenCells) * TileSize / 2
	worldW := g.world.Size().X
	x := g.player.Position().X

	if x <= half || worldW <= 2*half {
		return 0
	}
	if x >= worldW-half {
		return worldW - 2*half
	}
	return x - half
}

// Render draws the active world and HUD into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	camX := g.cameraOffset(dst.Width())

	toCell := func(pos core.Vec2) (int, int) {
		return int((pos.X - camX) / TileSize), int(pos.Y/TileSize) + hudRows
	}

	for _, b := range g.world.Blocks() {
		x, y := toCell(b.Position())
		w := int(b.Box().Size.X / TileSize)
		h := int(b.Box().Size.Y / TileSize)
		r := blockRunes[b.Kind()]
		if r == 0 {
			r = '▒'
		}
		if b.Kind() == KindMysteryCoin && !b.IsActive() {
			r = '·'
		}
		if b.Kind() == KindSwitch && b.IsPressed() {
			r = 's'
		}
		dst.DrawRect(core.NewRect(x, y, w, h), r, blockColors[b.Kind()])
	}

	for _, it := range g.world.Items() {
		x, y := toCell(it.Position())
		switch it.Kind() {
		case KindStar:
			dst.SetCell(x, y, StarChar, core.ColorMagenta)
		default:
			dst.SetCell(x, y, CoinChar, core.ColorYellow)
		}
	}

	for _, m := range g.world.Mobs() {
		x, y := toCell(m.Position())
		switch m.Kind() {
		case KindCloud:
			dst.SetCell(x, y, CloudChar, core.ColorWhite)
		case KindFireball:
			dst.SetCell(x, y, FireballChar, core.ColorRed)
		default:
			dst.SetCell(x, y, MushroomChar, core.ColorRed)
		}
	}

	if g.player != nil {
		x, y := toCell(g.player.Position())
		color := core.ColorCyan
		if g.player.IsInvincible() {
			color = core.ColorYellow
		}
		dst.SetCell(x, y, PlayerChar, color)
	}

	g.drawHUD(dst)

	switch {
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.won:
		g.drawCenteredMessage(dst, "YOU WON", fmt.Sprintf("Score: %d", g.State().Score))
	case g.State().GameOver:
		g.drawCenteredMessage(dst, "GAME OVER", "Press R to restart")
	}
}

// drawHUD renders the health bar and score line. The bar color tracks
// the health fraction and turns yellow while invincible.
func (g *Game) drawHUD(dst *core.Screen) {
	st := g.State()
	if st.MaxHealth <= 0 {
		return
	}

	frac := float64(st.Health) / float64(st.MaxHealth)
	barWidth := int(frac * float64(dst.Width()))

	color := core.ColorGreen
	switch {
	case st.Invincible:
		color = core.ColorYellow
	case frac <= 0.25:
		color = core.ColorRed
	case frac <= 0.5:
		color = core.ColorOrange
	}
	dst.DrawHLine(0, 0, barWidth, '█', color)

	status := fmt.Sprintf(" %s  Score: %d  Level: %s ", g.cfg.Name, st.Score, st.Level)
	dst.DrawText(1, 1, status)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
