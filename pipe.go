package main

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wolfython/wolfython/config"
)

// Pipe is one half of an obstacle pair. It scrolls left at a constant
// speed and is dropped once its right edge leaves the screen.
type Pipe struct {
	X, Y          float64
	Width, Height float64
	// Top marks the flipped pipe hanging from above the gap.
	Top bool
	// Scored is set once the pair has been counted, so a pair can never
	// score twice.
	Scored bool

	img  *ebiten.Image
	mask *Mask
}

func (p *Pipe) Update(scrollSpeed float64) {
	p.X -= scrollSpeed
}

func (p *Pipe) OffScreen() bool {
	return p.X+p.Width < 0
}

func (p *Pipe) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

func (p *Pipe) Mask() *Mask {
	return p.mask
}

func (p *Pipe) Draw(screen *ebiten.Image) {
	if p.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if p.Top {
		op.GeoM.Scale(1, -1)
		op.GeoM.Translate(0, p.Height)
	}
	op.GeoM.Translate(p.X, p.Y)
	screen.DrawImage(p.img, op)
}

// PipeSprite bundles the pipe image with its collision masks. The top
// pipe uses the vertically flipped mask.
type PipeSprite struct {
	Img         *ebiten.Image
	Mask        *Mask
	FlippedMask *Mask
}

// NewPipeSprite derives the flipped mask from the base one.
func NewPipeSprite(img *ebiten.Image, mask *Mask) *PipeSprite {
	return &PipeSprite{Img: img, Mask: mask, FlippedMask: mask.FlipV()}
}

// Spawner creates obstacle pairs on a millisecond clock and owns the
// active set. The random source is injected so spawn sequences are
// reproducible under test.
type Spawner struct {
	rng    *rand.Rand
	sprite *PipeSprite

	intervalMS  int64
	gap         float64
	offsetRange int

	screenW float64
	midY    float64

	lastSpawn int64
	pipes     []*Pipe
}

func NewSpawner(rng *rand.Rand, sprite *PipeSprite, pipes config.Pipes, screenW, midY float64) *Spawner {
	return &Spawner{
		rng:         rng,
		sprite:      sprite,
		intervalMS:  pipes.SpawnIntervalMS,
		gap:         pipes.Gap,
		offsetRange: pipes.SpawnOffsetRange,
		screenW:     screenW,
		midY:        midY,
	}
}

// Retune applies pipe tuning on config hot reload. Active pipes keep
// their geometry; only future spawns and scrolling change.
func (s *Spawner) Retune(pipes config.Pipes) {
	s.intervalMS = pipes.SpawnIntervalMS
	s.gap = pipes.Gap
	s.offsetRange = pipes.SpawnOffsetRange
}

// Prime anchors the spawn clock to now, so the first pair appears one
// full interval after the Menu -> Playing transition rather than being
// measured from program start.
func (s *Spawner) Prime(now int64) {
	s.lastSpawn = now
}

// Update scrolls the active set, drops off-screen pipes, and spawns a
// new pair when the interval has elapsed.
func (s *Spawner) Update(now int64, scrollSpeed float64) {
	alive := s.pipes[:0]
	for _, p := range s.pipes {
		p.Update(scrollSpeed)
		if !p.OffScreen() {
			alive = append(alive, p)
		}
	}
	s.pipes = alive

	if now-s.lastSpawn > s.intervalMS {
		s.spawnPair()
		s.lastSpawn = now
	}
}

// spawnPair places a pair just past the right screen edge. Only the
// vertical center is random; the gap is fixed.
func (s *Spawner) spawnPair() {
	offset := float64(s.rng.Intn(2*s.offsetRange+1) - s.offsetRange)
	centerY := s.midY + offset

	w, h := s.sprite.Mask.Size()

	top := &Pipe{
		X:      s.screenW,
		Y:      centerY - s.gap/2 - float64(h),
		Width:  float64(w),
		Height: float64(h),
		Top:    true,
		img:    s.sprite.Img,
		mask:   s.sprite.FlippedMask,
	}
	bottom := &Pipe{
		X:      s.screenW,
		Y:      centerY + s.gap/2,
		Width:  float64(w),
		Height: float64(h),
		img:    s.sprite.Img,
		mask:   s.sprite.Mask,
	}
	s.pipes = append(s.pipes, top, bottom)
}

// Pipes is the active obstacle set. Insertion order is irrelevant to
// collision; scoring picks the pair nearest the character by center x.
func (s *Spawner) Pipes() []*Pipe {
	return s.pipes
}

// Clear drops every active pipe (restart).
func (s *Spawner) Clear() {
	s.pipes = s.pipes[:0]
}

func (s *Spawner) Draw(screen *ebiten.Image) {
	for _, p := range s.pipes {
		p.Draw(screen)
	}
}
