package main

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/wolfython/wolfython/assets"
	"github.com/wolfython/wolfython/common"
	"github.com/wolfython/wolfython/config"
)

// musicFadeTicks is how long the music takes to fade out after a
// collision ends the run.
const musicFadeTicks = 30

// AudioManager plays the jump/point effects and the looping music.
// Every call is fire-and-forget; with -mute (or when assets degraded to
// silence) the calls are no-ops. Nothing here can fail into the loop.
type AudioManager struct {
	jump  *audio.Player
	point *audio.Player
	music *audio.Player

	musicVolume float64
	sfxVolume   float64

	musicPlaying bool
	musicPaused  bool
	fadeTicks    int
}

func NewAudioManager(cfg config.Audio, muted bool) *AudioManager {
	a := &AudioManager{
		musicVolume: cfg.MusicVolume,
		sfxVolume:   cfg.SFXVolume,
	}
	if muted {
		return a
	}

	a.jump = assets.SoundPlayer("audio/swoosh_point.wav")
	a.point = assets.SoundPlayer("audio/sfx_point.wav")
	a.music = assets.MusicPlayer("audio/bg_music.wav")
	a.applyVolumes()
	return a
}

// SetVolumes applies audio tuning on config hot reload.
func (a *AudioManager) SetVolumes(cfg config.Audio) {
	a.musicVolume = cfg.MusicVolume
	a.sfxVolume = cfg.SFXVolume
	a.applyVolumes()
}

func (a *AudioManager) applyVolumes() {
	if a.jump != nil {
		a.jump.SetVolume(a.sfxVolume)
	}
	if a.point != nil {
		a.point.SetVolume(a.sfxVolume)
	}
	if a.music != nil && a.fadeTicks == 0 {
		a.music.SetVolume(a.musicVolume)
	}
}

func (a *AudioManager) PlayJump() {
	playOneShot(a.jump)
}

func (a *AudioManager) PlayPoint() {
	playOneShot(a.point)
}

func playOneShot(p *audio.Player) {
	if p == nil {
		return
	}
	p.Rewind()
	p.Play()
}

// StartMusic starts the loop from the beginning, or resumes it when
// paused.
func (a *AudioManager) StartMusic() {
	if a.music == nil {
		return
	}
	if a.musicPaused {
		a.music.Play()
		a.musicPaused = false
		return
	}
	if !a.musicPlaying {
		a.fadeTicks = 0
		a.music.SetVolume(a.musicVolume)
		a.music.Rewind()
		a.music.Play()
		a.musicPlaying = true
	}
}

// StopMusicOnGameOver begins a short fade-out instead of cutting the
// loop dead.
func (a *AudioManager) StopMusicOnGameOver() {
	if a.music != nil && a.musicPlaying {
		a.fadeTicks = musicFadeTicks
	}
	a.musicPlaying = false
	a.musicPaused = false
}

// PauseMusic suspends the loop; StartMusic resumes it.
func (a *AudioManager) PauseMusic() {
	if a.music == nil || !a.musicPlaying {
		return
	}
	a.music.Pause()
	a.musicPaused = true
}

// Update steps the game-over fade. Called once per tick.
func (a *AudioManager) Update() {
	if a.fadeTicks == 0 || a.music == nil {
		return
	}
	a.fadeTicks--
	t := float64(a.fadeTicks) / musicFadeTicks
	a.music.SetVolume(common.Lerp(0, a.musicVolume, t))
	if a.fadeTicks == 0 {
		a.music.Pause()
		a.music.Rewind()
	}
}

// Reset clears playback state on restart.
func (a *AudioManager) Reset() {
	a.musicPlaying = false
	a.musicPaused = false
	a.fadeTicks = 0
	if a.music != nil {
		a.music.Pause()
		a.music.Rewind()
		a.music.SetVolume(a.musicVolume)
	}
}
