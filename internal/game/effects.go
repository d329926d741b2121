package game

import "tui-platformer/internal/core"

// invisibleRecord tracks a block temporarily removed from the world by a
// switch, together with its restoration countdown and original position.
type invisibleRecord struct {
	block *Block
	pos   core.Vec2
	ticks int
}

// Scheduler owns all per-tick countdown state: the player's
// invincibility, every switch's pressed countdown, and the
// invisible-block records. Game runs Tick exactly once per simulation
// tick, after the physics step and collision resolution.
type Scheduler struct {
	invisible []invisibleRecord
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Hide moves a block into the invisible-block record set, removing it
// from the world. The block reappears at its current position when the
// countdown expires.
func (s *Scheduler) Hide(w *World, b *Block, ticks int) {
	w.RemoveBlock(b)
	s.invisible = append(s.invisible, invisibleRecord{
		block: b,
		pos:   b.Position(),
		ticks: ticks,
	})
}

// Hidden reports whether the block is currently in the invisible-block
// record set.
func (s *Scheduler) Hidden(b *Block) bool {
	for _, rec := range s.invisible {
		if rec.block == b {
			return true
		}
	}
	return false
}

// HiddenCount returns the number of invisible-block records.
func (s *Scheduler) HiddenCount() int {
	return len(s.invisible)
}

// Reset drops all records, used on level transitions.
func (s *Scheduler) Reset() {
	s.invisible = nil
}

// Tick decrements every countdown once: player invincibility, switch
// pressed timers, and invisible-block records. Records that reach zero
// reinsert their block into the world at the stored position with its
// behavioral state intact.
func (s *Scheduler) Tick(w *World) {
	if p := w.Player(); p != nil {
		p.tickInvincibility()
	}
	for _, b := range w.Blocks() {
		if b.Kind() == KindSwitch {
			b.tickPressed()
		}
	}

	kept := s.invisible[:0]
	for _, rec := range s.invisible {
		rec.ticks--
		if rec.ticks <= 0 {
			w.AddBlock(rec.block, rec.pos.X, rec.pos.Y)
			continue
		}
		kept = append(kept, rec)
	}
	s.invisible = kept
}
