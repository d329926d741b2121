package game

// installCollisionHandlers registers the gameplay rules for every
// category pair on the given world.
func (g *Game) installCollisionHandlers(w *World) {
	w.AddCollisionHandler(CategoryPlayer, CategoryItem, g.handlePlayerCollideItem, nil)
	w.AddCollisionHandler(CategoryPlayer, CategoryBlock, g.handlePlayerCollideBlock, g.handlePlayerSeparateBlock)
	w.AddCollisionHandler(CategoryPlayer, CategoryMob, g.handlePlayerCollideMob, nil)
	w.AddCollisionHandler(CategoryMob, CategoryBlock, g.handleMobCollideBlock, nil)
	w.AddCollisionHandler(CategoryMob, CategoryMob, g.handleMobCollideMob, nil)
	w.AddCollisionHandler(CategoryMob, CategoryItem, g.handleMobCollideItem, nil)
}

// handlePlayerCollideItem collects the item into the player and removes
// it from the world. Item contacts are never physical.
func (g *Game) handlePlayerCollideItem(w *World, a, b Entity, c Contact) bool {
	player := a.(*Player)
	item := b.(*Item)

	item.Collect(player)
	w.RemoveItem(item)
	return false
}

// handlePlayerCollideBlock applies the block-kind rules: goal triggers
// for flags and tunnels, the switch press with its brick-hiding area
// effect, and the block's own on-hit behavior for everything else.
// Blocks currently in the invisible-block record set are skipped
// entirely.
func (g *Game) handlePlayerCollideBlock(w *World, a, b Entity, c Contact) bool {
	player := a.(*Player)
	block := b.(*Block)

	if g.effects.Hidden(block) {
		return false
	}

	switch block.Kind() {
	case KindFlag:
		if c.Dir == DirAbove {
			player.ChangeHealth(1)
		}
		g.fireTrigger(block, block.TriggerKey())
		return true

	case KindTunnel:
		if c.Dir == DirAbove {
			player.AttachTunnel(block)
		}
		return true

	case KindSwitch:
		if c.Dir == DirAbove && !block.IsPressed() {
			block.Press(SwitchPressedTicks)
			g.hideBricksAround(w, block)
			return false
		}
		return true

	default:
		block.Hit(w, player, c.Dir)
		return true
	}
}

// hideBricksAround moves every brick within the switch's radius into the
// invisible-block record set.
func (g *Game) hideBricksAround(w *World, sw *Block) {
	center := sw.Box().Center()
	for _, thing := range w.ThingsInRange(center.X, center.Y, sw.InvisibleRadius()) {
		block, ok := thing.(*Block)
		if !ok || block.Kind() != KindBrick {
			continue
		}
		g.effects.Hide(w, block, InvisibleBlockTicks)
	}
}

// handlePlayerSeparateBlock detaches the player from a tunnel when the
// contact ends.
func (g *Game) handlePlayerSeparateBlock(w *World, a, b Entity) {
	player := a.(*Player)
	block := b.(*Block)
	if block.Kind() == KindTunnel && player.Tunnel() == block {
		player.DetachTunnel()
	}
}

// handlePlayerCollideMob lets the mob resolve combat; an invincible
// player destroys the mob regardless of the resolution.
func (g *Game) handlePlayerCollideMob(w *World, a, b Entity, c Contact) bool {
	player := a.(*Player)
	mob := b.(*Mob)

	mob.onHit(w, player, c.Dir)
	if player.IsInvincible() && !w.Removed(mob) {
		w.RemoveMob(mob)
	}
	return true
}

// handleMobCollideBlock: pressed switches and hidden blocks let mobs
// pass through; fireballs burn out on any block and take bricks with
// them; mushrooms turn around on side contact.
func (g *Game) handleMobCollideBlock(w *World, a, b Entity, c Contact) bool {
	mob := a.(*Mob)
	block := b.(*Block)

	if g.effects.Hidden(block) {
		return false
	}
	if block.Kind() == KindSwitch && block.IsPressed() {
		return false
	}

	if mob.Kind() == KindFireball {
		if block.Kind() == KindBrick {
			w.RemoveBlock(block)
		}
		w.RemoveMob(mob)
		return true
	}

	mob.collide(block, c.Dir.Flip())
	return true
}

// handleMobCollideMob: fireballs annihilate both parties; mushrooms turn
// around on side contact. Mobs always pass through each other.
func (g *Game) handleMobCollideMob(w *World, a, b Entity, c Contact) bool {
	m1 := a.(*Mob)
	m2 := b.(*Mob)

	if m1.Kind() == KindFireball || m2.Kind() == KindFireball {
		w.RemoveMob(m1)
		w.RemoveMob(m2)
		return false
	}
	m1.collide(m2, c.Dir.Flip())
	m2.collide(m1, c.Dir)
	return false
}

// handleMobCollideItem: mobs ignore items.
func (g *Game) handleMobCollideItem(w *World, a, b Entity, c Contact) bool {
	return false
}
