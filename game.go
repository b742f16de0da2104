package main

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/wolfython/wolfython/assets"
	"github.com/wolfython/wolfython/config"
)

const (
	tps = 60

	// wolfStartX is the fixed horizontal position of the character.
	wolfStartX = 100
	// groundScrollWrap bounds the ground offset; the ground texture
	// repeats every this many pixels.
	groundScrollWrap = 35
)

// sprites bundles the drawables and collision masks the game needs.
// Tests fabricate one with nil images and synthetic masks.
type sprites struct {
	bg         *ebiten.Image
	ground     *ebiten.Image
	restartImg *ebiten.Image
	wolfFrames []*ebiten.Image
	wolfMasks  []*Mask
	pipe       *PipeSprite
}

func loadSprites() *sprites {
	s := &sprites{
		bg:         assets.Image("img/bg.png"),
		ground:     assets.Image("img/ground.png"),
		restartImg: assets.Image("img/restart.png"),
	}
	for i := 1; i <= 3; i++ {
		name := fmt.Sprintf("img/wolfy%d.png", i)
		s.wolfFrames = append(s.wolfFrames, assets.Image(name))
		s.wolfMasks = append(s.wolfMasks, MaskFromImage(assets.ImageData(name)))
	}
	s.pipe = NewPipeSprite(assets.Image("img/pipe.png"), MaskFromImage(assets.ImageData("img/pipe.png")))
	return s
}

// GameOptions are the command-line toggles.
type GameOptions struct {
	Debug   bool
	Mute    bool
	Seed    int64
	Watcher *config.Watcher
}

// Game owns the state machine, the score, and every actor. All state is
// mutated by the single Update tick; Draw only reads.
type Game struct {
	cfg   config.Config
	debug bool

	state GameState
	ticks int64

	input   *Input
	wolf    *Wolf
	spawner *Spawner
	tracker *ScoreTracker
	audio   *AudioManager
	restart *Button
	spr     *sprites

	groundScroll float64

	paused  bool
	pauseUI *pauseUI

	watcher *config.Watcher
}

func NewGame(cfg config.Config, opts GameOptions) *Game {
	rng := rand.New(rand.NewSource(opts.Seed))
	g := newGame(cfg, loadSprites(), NewAudioManager(cfg.Audio, opts.Mute), rng)
	g.debug = opts.Debug
	g.watcher = opts.Watcher
	g.pauseUI = newPauseUI(g)
	return g
}

// newGame wires the core without touching the asset registry or the
// window, which keeps it constructible in tests.
func newGame(cfg config.Config, spr *sprites, au *AudioManager, rng *rand.Rand) *Game {
	input := NewInput()
	midY := float64(cfg.Window.Height) / 2

	g := &Game{
		cfg:     cfg,
		state:   StateMenu,
		input:   input,
		wolf:    NewWolf(wolfStartX, midY, spr.wolfFrames, spr.wolfMasks, input, cfg.Physics, cfg.GroundLine()),
		spawner: NewSpawner(rng, spr.pipe, cfg.Pipes, float64(cfg.Window.Width), midY),
		tracker: &ScoreTracker{},
		audio:   au,
		restart: NewButton(float64(cfg.Window.Width)/2-50, midY-100, 100, 50, spr.restartImg),
		spr:     spr,
	}
	return g
}

func (g *Game) Update() error {
	g.applyTuning()
	g.input.Poll()
	g.step()
	return nil
}

// step runs one tick of game logic against the current input snapshot.
func (g *Game) step() {
	if g.paused {
		if g.input.PauseJustPressed {
			g.setPaused(false)
			return
		}
		if g.pauseUI != nil {
			g.pauseUI.Update()
		}
		return
	}
	if g.state == StatePlaying && g.input.PauseJustPressed {
		g.setPaused(true)
		return
	}

	g.ticks++
	g.audio.Update()

	switch g.state {
	case StateMenu:
		if g.input.JustPressed {
			g.start()
			// The starting click also counts as the first flap.
			g.updatePlaying()
		}
	case StatePlaying:
		g.updatePlaying()
	case StateGameOver:
		g.updateGameOver()
	}
}

// start transitions Menu -> Playing and anchors the spawn clock so the
// first pair arrives one interval after this moment.
func (g *Game) start() {
	g.state = StatePlaying
	g.spawner.Prime(g.now())
	g.audio.StartMusic()
}

func (g *Game) updatePlaying() {
	if g.wolf.Update(g.state) {
		g.audio.PlayJump()
	}

	g.spawner.Update(g.now(), g.cfg.Pipes.ScrollSpeed)
	g.updateGroundScroll()

	if hitsPipes(g.wolf, g.spawner.Pipes()) || hitsBounds(g.wolf, g.cfg.GroundLine()) {
		g.gameOver()
	}

	if g.tracker.Update(g.wolf.X, g.spawner.Pipes()) {
		g.audio.PlayPoint()
	}
}

func (g *Game) updateGameOver() {
	g.wolf.Update(g.state)
	if g.restart.Update(g.input) {
		g.resetGame()
	}
}

func (g *Game) updateGroundScroll() {
	g.groundScroll -= g.cfg.Pipes.ScrollSpeed
	if g.groundScroll < -groundScrollWrap || g.groundScroll > groundScrollWrap {
		g.groundScroll = 0
	}
}

func (g *Game) gameOver() {
	if g.state == StateGameOver {
		return
	}
	g.state = StateGameOver
	g.audio.StopMusicOnGameOver()
}

// resetGame returns to the menu with everything at spawn defaults.
func (g *Game) resetGame() {
	g.state = StateMenu
	g.groundScroll = 0
	g.tracker.Reset()
	g.spawner.Clear()
	g.wolf.Reset(wolfStartX, float64(g.cfg.Window.Height)/2)
	g.audio.Reset()
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		g.audio.PauseMusic()
	} else {
		g.audio.StartMusic()
	}
}

// now is the game clock in milliseconds, derived from the tick count so
// spawn timing is deterministic.
func (g *Game) now() int64 {
	return g.ticks * 1000 / tps
}

// applyTuning drains pending config reloads between ticks. Window
// geometry is fixed at startup; everything else applies live.
func (g *Game) applyTuning() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.cfg.Physics = cfg.Physics
			g.cfg.Pipes = cfg.Pipes
			g.cfg.Audio = cfg.Audio
			g.wolf.Retune(cfg.Physics, g.cfg.GroundLine())
			g.spawner.Retune(cfg.Pipes)
			g.audio.SetVolumes(cfg.Audio)
			log.Info("tuning reloaded",
				"gravity", cfg.Physics.Gravity,
				"scroll_speed", cfg.Pipes.ScrollSpeed,
				"spawn_interval_ms", cfg.Pipes.SpawnIntervalMS)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Warn("tuning reload failed", "err", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.spr.bg != nil {
		screen.DrawImage(g.spr.bg, nil)
	}

	g.spawner.Draw(screen)
	g.wolf.Draw(screen)

	if g.spr.ground != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(g.groundScroll, g.cfg.GroundLine())
		screen.DrawImage(g.spr.ground, op)
	}

	cx := float64(g.cfg.Window.Width) / 2
	drawOutlinedText(screen, strconv.Itoa(g.tracker.Score()), cx, 50)

	switch g.state {
	case StateMenu:
		drawOutlinedText(screen, "Click to Start", cx, float64(g.cfg.Window.Height)/2-200)
	case StateGameOver:
		g.restart.Draw(screen)
		drawOutlinedText(screen, "Game Over", cx, float64(g.cfg.Window.Height)/2-200)
	case StatePlaying:
	}

	if g.paused && g.pauseUI != nil {
		g.pauseUI.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  state: %s  score: %d  pipes: %d",
			ebiten.ActualFPS(), g.state, g.tracker.Score(), len(g.spawner.Pipes())))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
