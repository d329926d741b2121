package game

import (
	"tui-platformer/internal/core"
)

// CollisionHandler is invoked on contact begin for a registered category
// pair. Returning false tells the world to treat the contact as
// non-physical: the entities pass through each other for the duration of
// that contact. Returning true lets normal penetration resolution
// proceed (standing on top, bumping into walls).
type CollisionHandler func(w *World, a, b Entity, c Contact) bool

// SeparateHandler is invoked when a tracked contact pair stops touching.
type SeparateHandler func(w *World, a, b Entity)

// dynamicBody is an entity integrated by the physics step.
type dynamicBody interface {
	Entity
	Velocity() core.Vec2
	SetVelocity(core.Vec2)
}

type pairKey struct {
	a, b Category
}

type contactKey struct {
	a, b uint64
}

func makeContactKey(x, y uint64) contactKey {
	if x > y {
		x, y = y, x
	}
	return contactKey{x, y}
}

// contactState remembers the begin handler's verdict for the lifetime of
// one contact episode, so a pair that keeps touching is resolved
// consistently without re-firing the handler every tick.
type contactState struct {
	physical bool
}

// World owns all entities of the active level and steps the simulation
// by a fixed time delta. All mutation happens on the single thread that
// drives Step; removals during collision callbacks are deferred into a
// per-tick removed set so no handler can touch a dead entity later in
// the same batch.
type World struct {
	gravity     float64
	maxVelocity float64
	size        core.Vec2

	player *Player
	blocks []*Block
	mobs   []*Mob
	items  []*Item

	index  map[uint64]Entity
	nextID uint64

	beginHandlers    map[pairKey]CollisionHandler
	separateHandlers map[pairKey]SeparateHandler

	contacts map[contactKey]*contactState
	touched  map[contactKey]bool
	removed  map[uint64]bool
	stepping bool
}

// NewWorld creates an empty world with the given gravity (px/s^2,
// positive down) and per-axis velocity clamp.
func NewWorld(gravity, maxVelocity float64) *World {
	return &World{
		gravity:          gravity,
		maxVelocity:      maxVelocity,
		index:            make(map[uint64]Entity),
		beginHandlers:    make(map[pairKey]CollisionHandler),
		separateHandlers: make(map[pairKey]SeparateHandler),
		contacts:         make(map[contactKey]*contactState),
		touched:          make(map[contactKey]bool),
		removed:          make(map[uint64]bool),
	}
}

// Gravity returns the world's downward acceleration.
func (w *World) Gravity() float64 { return w.gravity }

// Size returns the pixel size of the level.
func (w *World) Size() core.Vec2 { return w.size }

// SetSize sets the pixel size of the level.
func (w *World) SetSize(width, height float64) {
	w.size = core.Vec2{X: width, Y: height}
}

// Player returns the world's single player, or nil before AddPlayer.
func (w *World) Player() *Player { return w.player }

// assignID gives the entity a world-unique identity on first insertion.
// Re-inserted entities (invisible blocks coming back) keep their ID.
func (w *World) assignID(e Entity) {
	be := entityBase(e)
	if be.id == 0 {
		w.nextID++
		be.id = w.nextID
	}
	w.index[be.id] = e
}

func entityBase(e Entity) *baseEntity {
	switch v := e.(type) {
	case *Player:
		return &v.baseEntity
	case *Block:
		return &v.baseEntity
	case *Mob:
		return &v.baseEntity
	case *Item:
		return &v.baseEntity
	default:
		panic("game: unknown entity variant")
	}
}

// AddPlayer places the player at (x, y). A world holds exactly one
// player; adding another replaces the reference.
func (w *World) AddPlayer(p *Player, x, y float64) {
	p.SetPosition(core.Vec2{X: x, Y: y})
	w.player = p
	w.assignID(p)
}

// AddBlock inserts a block at (x, y).
func (w *World) AddBlock(b *Block, x, y float64) {
	b.SetPosition(core.Vec2{X: x, Y: y})
	w.blocks = append(w.blocks, b)
	w.assignID(b)
	delete(w.removed, b.ID())
}

// AddMob inserts a mob at (x, y).
func (w *World) AddMob(m *Mob, x, y float64) {
	m.SetPosition(core.Vec2{X: x, Y: y})
	w.mobs = append(w.mobs, m)
	w.assignID(m)
}

// AddItem inserts an item at (x, y).
func (w *World) AddItem(it *Item, x, y float64) {
	it.SetPosition(core.Vec2{X: x, Y: y})
	w.items = append(w.items, it)
	w.assignID(it)
}

// RemoveBlock removes a block from the world. Safe to call from a
// collision handler: the block is marked dead immediately and pruned
// after the collision batch.
func (w *World) RemoveBlock(b *Block) { w.remove(b) }

// RemoveMob removes a mob from the world. Safe during callbacks.
func (w *World) RemoveMob(m *Mob) { w.remove(m) }

// RemoveItem removes an item from the world. Safe during callbacks.
func (w *World) RemoveItem(it *Item) { w.remove(it) }

func (w *World) remove(e Entity) {
	w.removed[e.ID()] = true
	delete(w.index, e.ID())
	if !w.stepping {
		w.prune()
	}
}

// Removed reports whether the entity was removed during the current
// collision batch. Handlers use this to avoid acting on dead bodies.
func (w *World) Removed(e Entity) bool {
	return w.removed[e.ID()]
}

// prune drops removed entities from the active sets and forgets their
// contacts.
func (w *World) prune() {
	if len(w.removed) == 0 {
		return
	}
	blocks := w.blocks[:0]
	for _, b := range w.blocks {
		if !w.removed[b.ID()] {
			blocks = append(blocks, b)
		}
	}
	w.blocks = blocks

	mobs := w.mobs[:0]
	for _, m := range w.mobs {
		if !w.removed[m.ID()] {
			mobs = append(mobs, m)
		}
	}
	w.mobs = mobs

	items := w.items[:0]
	for _, it := range w.items {
		if !w.removed[it.ID()] {
			items = append(items, it)
		}
	}
	w.items = items

	for key := range w.contacts {
		if w.removed[key.a] || w.removed[key.b] {
			delete(w.contacts, key)
		}
	}
	w.removed = make(map[uint64]bool)
}

// Blocks returns the active blocks. The slice is shared; callers must
// not mutate it.
func (w *World) Blocks() []*Block { return w.blocks }

// Mobs returns the active mobs.
func (w *World) Mobs() []*Mob { return w.mobs }

// Items returns the active items.
func (w *World) Items() []*Item { return w.items }

// ThingsInRange returns all entities whose bounding box intersects the
// circle centered at (x, y) with the given radius.
func (w *World) ThingsInRange(x, y, radius float64) []Entity {
	var out []Entity
	consider := func(e Entity) {
		if w.removed[e.ID()] {
			return
		}
		if e.Box().IntersectsCircle(x, y, radius) {
			out = append(out, e)
		}
	}
	if w.player != nil {
		consider(w.player)
	}
	for _, b := range w.blocks {
		consider(b)
	}
	for _, m := range w.mobs {
		consider(m)
	}
	for _, it := range w.items {
		consider(it)
	}
	return out
}

// AddCollisionHandler registers begin and separate handlers for a
// category pair. Contacts are dispatched in the registered order: if a
// player-mob pair was registered, handlers always receive the player as
// the first argument regardless of which body moved.
func (w *World) AddCollisionHandler(a, b Category, onBegin CollisionHandler, onSeparate SeparateHandler) {
	key := pairKey{a, b}
	if onBegin != nil {
		w.beginHandlers[key] = onBegin
	}
	if onSeparate != nil {
		w.separateHandlers[key] = onSeparate
	}
}

// fireBegin looks up and invokes the begin handler for the pair (a, b).
// The contact direction is a's position relative to b and is flipped
// when the registered argument order is the reverse.
func (w *World) fireBegin(a, b Entity, c Contact) bool {
	if h, ok := w.beginHandlers[pairKey{a.Category(), b.Category()}]; ok {
		return h(w, a, b, c)
	}
	if h, ok := w.beginHandlers[pairKey{b.Category(), a.Category()}]; ok {
		return h(w, b, a, Contact{Dir: c.Dir.Flip()})
	}
	return true
}

func (w *World) fireSeparate(a, b Entity) {
	if h, ok := w.separateHandlers[pairKey{a.Category(), b.Category()}]; ok {
		h(w, a, b)
		return
	}
	if h, ok := w.separateHandlers[pairKey{b.Category(), a.Category()}]; ok {
		h(w, b, a)
	}
}

// contactFor returns the contact state for a touching pair, firing the
// begin handler if this is the first tick of the episode. The second
// return is false when either entity died before the contact could be
// considered.
func (w *World) contactFor(a, b Entity) (*contactState, bool) {
	if w.removed[a.ID()] || w.removed[b.ID()] {
		return nil, false
	}
	key := makeContactKey(a.ID(), b.ID())
	w.touched[key] = true
	if st, ok := w.contacts[key]; ok {
		return st, true
	}
	c := Contact{Dir: CollisionDirection(a.Box(), b.Box())}
	st := &contactState{physical: w.fireBegin(a, b, c)}
	w.contacts[key] = st
	return st, true
}

// clampVelocity keeps both velocity components within the configured
// limit.
func (w *World) clampVelocity(body dynamicBody) {
	if w.maxVelocity <= 0 {
		return
	}
	v := body.Velocity()
	v.X = core.ClampF(v.X, -w.maxVelocity, w.maxVelocity)
	v.Y = core.ClampF(v.Y, -w.maxVelocity, w.maxVelocity)
	body.SetVelocity(v)
}

const (
	axisX = 0
	axisY = 1
)

// moveBodyAxis advances the body along one axis and resolves physical
// contacts against blocks.
func (w *World) moveBodyAxis(body dynamicBody, dt float64, axis int) {
	if w.removed[body.ID()] {
		return
	}
	pos := body.Position()
	vel := body.Velocity()
	if axis == axisX {
		pos.X += vel.X * dt
	} else {
		pos.Y += vel.Y * dt
	}
	body.SetPosition(pos)

	for _, block := range w.blocks {
		if w.removed[block.ID()] || w.removed[body.ID()] {
			continue
		}
		if !body.Box().Intersects(block.Box()) {
			continue
		}
		st, ok := w.contactFor(body, block)
		if !ok || !st.physical {
			continue
		}
		if w.removed[body.ID()] || w.removed[block.ID()] {
			continue
		}
		w.resolveAgainstStatic(body, block, axis)
	}
}

// resolveAgainstStatic pushes the body out of a block along the given
// axis and zeroes the velocity component that drove it in.
func (w *World) resolveAgainstStatic(body dynamicBody, block *Block, axis int) {
	ox, oy := body.Box().Overlap(block.Box())
	if ox <= 0 || oy <= 0 {
		return
	}
	pos := body.Position()
	vel := body.Velocity()
	if axis == axisX {
		if body.Box().Center().X < block.Box().Center().X {
			pos.X -= ox
		} else {
			pos.X += ox
		}
		vel.X = 0
	} else {
		if body.Box().Center().Y < block.Box().Center().Y {
			pos.Y -= oy
		} else {
			pos.Y += oy
		}
		vel.Y = 0
	}
	body.SetPosition(pos)
	body.SetVelocity(vel)
}

// resolveDynamicPair separates two overlapping dynamic bodies along the
// axis of least penetration, pushing the lighter one out.
func (w *World) resolveDynamicPair(a, b dynamicBody, weightA, weightB float64) {
	ox, oy := a.Box().Overlap(b.Box())
	if ox <= 0 || oy <= 0 {
		return
	}
	pushed, other := a, b
	if weightA > weightB {
		pushed, other = b, a
	}
	pos := pushed.Position()
	if ox < oy {
		if pushed.Box().Center().X < other.Box().Center().X {
			pos.X -= ox
		} else {
			pos.X += ox
		}
	} else {
		if pushed.Box().Center().Y < other.Box().Center().Y {
			pos.Y -= oy
		} else {
			pos.Y += oy
		}
	}
	pushed.SetPosition(pos)
}

// checkPair records a touching dynamic pair and resolves it when the
// contact is physical.
func (w *World) checkPair(a, b dynamicBody, weightA, weightB float64) {
	if w.removed[a.ID()] || w.removed[b.ID()] {
		return
	}
	if !a.Box().Intersects(b.Box()) {
		return
	}
	st, ok := w.contactFor(a, b)
	if !ok || !st.physical {
		return
	}
	if w.removed[a.ID()] || w.removed[b.ID()] {
		return
	}
	w.resolveDynamicPair(a, b, weightA, weightB)
}

// checkItemOverlap records a touching body-item pair. Item contacts are
// never resolved physically; the handlers decide the side effects.
func (w *World) checkItemOverlap(body dynamicBody, it *Item) {
	if w.removed[body.ID()] || w.removed[it.ID()] {
		return
	}
	if !body.Box().Intersects(it.Box()) {
		return
	}
	w.contactFor(body, it)
}

// Step advances the simulation by one fixed tick. It applies per-kind
// velocity updates, integrates dynamic bodies axis by axis against
// blocks, checks dynamic pairs, and fires all collision begin/separate
// events synchronously before returning. Entities removed by handlers
// are pruned before Step returns, so nothing dangles into the next tick.
func (w *World) Step(dt float64) {
	w.stepping = true
	w.touched = make(map[contactKey]bool)

	// Velocity updates.
	if w.player != nil {
		vel := w.player.Velocity()
		vel.Y += w.gravity * dt
		w.player.SetVelocity(vel)
		w.clampVelocity(w.player)
	}
	for _, m := range w.mobs {
		if w.removed[m.ID()] {
			continue
		}
		m.stepMob(w, dt)
		w.clampVelocity(m)
	}

	// Integration against static blocks, player first for determinism.
	if w.player != nil {
		w.moveBodyAxis(w.player, dt, axisX)
		w.moveBodyAxis(w.player, dt, axisY)
		w.keepInBounds(w.player)
	}
	for _, m := range w.mobs {
		w.moveBodyAxis(m, dt, axisX)
		w.moveBodyAxis(m, dt, axisY)
	}

	// Dynamic pairs.
	if w.player != nil {
		for _, m := range w.mobs {
			w.checkPair(w.player, m, w.player.Mass(), m.Weight())
		}
		for _, it := range w.items {
			w.checkItemOverlap(w.player, it)
		}
	}
	for i := 0; i < len(w.mobs); i++ {
		for j := i + 1; j < len(w.mobs); j++ {
			w.checkPair(w.mobs[i], w.mobs[j], w.mobs[i].Weight(), w.mobs[j].Weight())
		}
		for _, it := range w.items {
			w.checkItemOverlap(w.mobs[i], it)
		}
	}

	// Fall-out: bodies far below the level leave the world.
	w.cullFallen()

	// Separations: contacts not touched this tick have ended.
	for key := range w.contacts {
		if w.touched[key] {
			continue
		}
		a, okA := w.index[key.a]
		b, okB := w.index[key.b]
		delete(w.contacts, key)
		if okA && okB {
			w.fireSeparate(a, b)
		}
	}

	w.prune()
	w.stepping = false
}

// keepInBounds clamps the player to the horizontal extent of the level.
func (w *World) keepInBounds(p *Player) {
	if w.size.X <= 0 {
		return
	}
	pos := p.Position()
	clamped := core.ClampF(pos.X, 0, w.size.X-p.Box().Size.X)
	if clamped != pos.X {
		pos.X = clamped
		vel := p.Velocity()
		vel.X = 0
		p.SetVelocity(vel)
		p.SetPosition(pos)
	}
}

// cullFallen removes bodies that dropped far below the level. A fallen
// player dies outright, invincible or not.
func (w *World) cullFallen() {
	if w.size.Y <= 0 {
		return
	}
	floor := w.size.Y + 4*TileSize
	if w.player != nil && w.player.Position().Y > floor {
		w.player.health = 0
	}
	for _, m := range w.mobs {
		if !w.removed[m.ID()] && m.Position().Y > floor {
			w.RemoveMob(m)
		}
	}
}
