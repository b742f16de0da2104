// Package assets is the embedded asset registry. Every lookup returns
// a usable handle: a missing or undecodable image yields a solid-color
// placeholder and a missing sound yields a silent player, so callers
// never branch on asset presence.
package assets

import (
	"bytes"
	"embed"
	"image"
	"image/color"
	_ "image/png"
	"path"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed img audio icon.png
var assetsFS embed.FS

const sampleRate = 44100

var audioContext = audio.NewContext(sampleRate)

var (
	imageCache = map[string]*ebiten.Image{}
	dataCache  = map[string]image.Image{}
)

// ImageData returns the decoded pixels for an embedded image, falling
// back to a generated placeholder. The result is what mask building
// reads, so placeholders are fully opaque.
func ImageData(name string) image.Image {
	if img, ok := dataCache[name]; ok {
		return img
	}

	img, err := decodeImage(name)
	if err != nil {
		log.Warn("asset missing, using placeholder", "image", name, "err", err)
		img = placeholderImage(name)
	}
	dataCache[name] = img
	return img
}

// Image returns the drawable for an embedded image, placeholder-backed
// like ImageData.
func Image(name string) *ebiten.Image {
	if img, ok := imageCache[name]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(ImageData(name))
	imageCache[name] = img
	return img
}

// Icon returns the window icon pixels.
func Icon() image.Image {
	return ImageData("icon.png")
}

// SoundPlayer returns a one-shot player for an embedded WAV. A missing
// or undecodable asset degrades to a silent player, never an error.
func SoundPlayer(name string) *audio.Player {
	stream, err := decodeWAV(name)
	if err != nil {
		log.Warn("sound missing, using silence", "sound", name, "err", err)
		return silentPlayer()
	}
	player, err := audioContext.NewPlayer(stream)
	if err != nil {
		log.Warn("sound player failed, using silence", "sound", name, "err", err)
		return silentPlayer()
	}
	return player
}

// MusicPlayer returns a player that loops the embedded WAV forever.
func MusicPlayer(name string) *audio.Player {
	stream, err := decodeWAV(name)
	if err != nil {
		log.Warn("music missing, game will run without it", "music", name, "err", err)
		return silentPlayer()
	}
	player, err := audioContext.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		log.Warn("music player failed, game will run without it", "music", name, "err", err)
		return silentPlayer()
	}
	return player
}

func decodeImage(name string) (image.Image, error) {
	b, err := assetsFS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return img, nil
}

func decodeWAV(name string) (*wav.Stream, error) {
	b, err := assetsFS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
}

func silentPlayer() *audio.Player {
	// Four bytes of PCM silence; playing it is a no-op.
	return audioContext.NewPlayerFromBytes(make([]byte, 4))
}

// placeholderImage mirrors the original game's fallbacks: a solid
// rectangle whose size and color depend on the logical asset.
func placeholderImage(name string) image.Image {
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))

	var (
		w, h int
		c    color.NRGBA
	)
	switch {
	case base == "bg":
		w, h, c = 864, 936, color.NRGBA{R: 135, G: 206, B: 235, A: 255} // sky blue
	case base == "ground":
		w, h, c = 934, 168, color.NRGBA{R: 139, G: 69, B: 19, A: 255} // brown
	case base == "pipe":
		w, h, c = 80, 400, color.NRGBA{G: 128, A: 255}
	case base == "restart":
		w, h, c = 100, 50, color.NRGBA{R: 255, A: 255}
	case strings.HasPrefix(base, "wolfy"):
		w, h, c = 50, 35, color.NRGBA{R: 255, G: 255, A: 255} // yellow
	case base == "icon":
		w, h, c = 32, 32, color.NRGBA{R: 255, G: 255, A: 255}
	default:
		w, h, c = 50, 50, color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}
