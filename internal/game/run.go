package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/island-defense/internal/config"
	"github.com/Faultbox/island-defense/internal/engine/audio"
	"github.com/Faultbox/island-defense/internal/engine/debug"
	"github.com/Faultbox/island-defense/internal/engine/input"
	"github.com/Faultbox/island-defense/internal/engine/renderer"
	"github.com/Faultbox/island-defense/internal/engine/window"
	"github.com/Faultbox/island-defense/internal/logger"
	"github.com/Faultbox/island-defense/pkg/math"
)

// Client owns the platform resources around a Game: the window, the GL
// renderer, the input poller and the audio device.
type Client struct {
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	audio    *audio.Manager
	game     *Game
	log      *zap.Logger
}

// NewClient opens the window and builds the scene. Audio failures are
// logged and the game runs silent.
func NewClient(cfg *config.Config) (*Client, error) {
	c := &Client{log: logger.Named("client")}

	var err error
	c.window, err = window.New(window.Config{
		Title:          Title,
		Width:          cfg.Graphics.Width,
		Height:         cfg.Graphics.Height,
		Fullscreen:     cfg.Graphics.Fullscreen,
		VSync:          cfg.Graphics.VSync,
		Samples:        cfg.Graphics.Samples,
		CapturePointer: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := c.window.DrawableSize()
	c.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		Background: math.RGB(0.55, 0.72, 0.9),
	})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	c.input = input.New()

	shots := debug.NewScreenshots(cfg.Graphics.ScreenshotDir, "island")
	deps := Deps{
		Backend:  c.renderer,
		Clock:    window.Ticks,
		Present:  c.window.SwapBuffers,
		SetTitle: c.window.SetTitle,
		Screenshot: func() (string, error) {
			pixels, w, h := c.renderer.ReadPixels()
			return shots.Save(pixels, w, h)
		},
	}
	c.audio = audio.New()
	if err := c.audio.Init(); err != nil {
		c.log.Warn("Audio unavailable, running silent", zap.Error(err))
	} else {
		c.audio.SetMasterVolume(cfg.Audio.MasterVolume)
		c.audio.SetSFXVolume(cfg.Audio.SFXVolume)
		c.audio.SetMuted(cfg.Audio.Muted)
		deps.Sounds = c.audio
	}

	c.game, err = New(cfg, deps)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.game.Resize(width, height)

	return c, nil
}

// Game returns the scheduler driven by the client.
func (c *Client) Game() *Game { return c.game }

// Run polls input, updates and draws until the game stops running.
func (c *Client) Run() error {
	c.log.Info("Starting game loop")

	for c.game.Running() {
		if c.input.Update() {
			c.game.Quit()
			break
		}

		for _, event := range c.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				// Event sizes are in window units, the viewport needs pixels.
				c.game.Resize(c.window.DrawableSize())
			case input.EventKeyDown:
				c.game.Keyboard(event.Sym, event.Shift, event.MouseX, event.MouseY)
			case input.EventMouseMove:
				c.game.Mouse(event.MouseX, event.MouseY)
			}
		}

		c.game.Update()
		c.game.Draw()
	}

	c.log.Info("Game loop stopped",
		zap.Float32("time", c.game.Time()),
		zap.Float32("frame_rate", c.game.FrameRate()))
	return nil
}

// Close releases everything NewClient acquired.
func (c *Client) Close() {
	c.log.Info("Closing client")

	if c.audio != nil {
		c.audio.Close()
	}
	if c.renderer != nil {
		c.renderer.Close()
	}
	if c.window != nil {
		c.window.Close()
	}
}
