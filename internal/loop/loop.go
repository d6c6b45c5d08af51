// Package loop runs Gravity Quest: a fixed-rate Input → Update → Draw cycle
// over one scene at a time.
package loop

import (
	"bufio"
	"context"
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/gravityquest/internal/draw"
	"github.com/tomz197/gravityquest/internal/input"
	"github.com/tomz197/gravityquest/internal/loop/config"
	"github.com/tomz197/gravityquest/internal/object"
	"github.com/tomz197/gravityquest/internal/quest"
)

// ErrIdleTimeout is returned by Run when no key was pressed for Options.IdleTimeout.
var ErrIdleTimeout = errors.New("idle timeout")

// bannerDuration is how long the restart message stays up.
const bannerDuration = 1500 * time.Millisecond

// Options configures a game run.
type Options struct {
	Settings     config.Settings
	TermSizeFunc draw.TermSizeFunc
	Logger       *log.Logger
	Rand         *rand.Rand
	IdleTimeout  time.Duration // 0 disables the idle disconnect
}

// State is the per-run state around the current scene.
type State struct {
	Scene    *Scene
	Decision quest.Decision
	Input    input.Input
	Running  bool
	Delta    time.Duration

	banner           string
	bannerTime       time.Duration
	bannerX, bannerY float64 // World position the banner is anchored to

	lastInput  time.Time
	idle       bool // Idle warning is showing
	wasIdle    bool
	redraw     bool // Full terminal clear pending
}

// Game owns the terminal side of a run: canvas, writer and input stream.
type Game struct {
	opts        Options
	state       *State
	canvas      *draw.Canvas
	chunkWriter *draw.ChunkWriter
	writer      io.Writer
	stream      *input.Stream
	logger      *log.Logger
	rng         *rand.Rand
}

// NewGame prepares a run that reads keys from r and renders to w.
func NewGame(r *bufio.Reader, w io.Writer, opts Options) *Game {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	termWidth, termHeight, _ := opts.TermSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ViewWidth, config.ViewHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Game{
		opts: opts,
		state: &State{
			Scene:     NewScene(opts.Settings, opts.Rand),
			Running:   true,
			lastInput: time.Now(),
		},
		canvas:      canvas,
		chunkWriter: draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:      w,
		stream:      input.StartStream(r),
		logger:      opts.Logger,
		rng:         opts.Rand,
	}
}

// Run starts the game loop with the standard Input → Update → Draw cycle.
// It returns nil on quit, end of input, or cancellation of ctx.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	return NewGame(r, w, opts).Run(ctx)
}

// Run blocks until the player quits, input ends, the player idles out, or
// ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	draw.HideCursor(g.writer)
	defer draw.ShowCursor(g.writer)
	draw.ClearScreen(g.writer)

	g.logger.Info("game started", "demo", g.state.Scene.Settings.Demo)

	lastTime := time.Now()
	for g.state.Running {
		frameStart := time.Now()
		g.state.Delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		if err := g.processInput(frameStart); err != nil {
			draw.ClearScreen(g.writer)
			return err
		}

		// ===== UPDATE PHASE =====
		g.updateScreen()
		if err := g.update(); err != nil {
			return err
		}

		// ===== DRAW PHASE =====
		if err := g.drawFrame(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			select {
			case <-ctx.Done():
				g.state.Running = false
			case <-time.After(config.TargetFrameTime - elapsed):
			}
		} else if ctx.Err() != nil {
			g.state.Running = false
		}
	}

	draw.ClearScreen(g.writer)
	return nil
}

// processInput reads pending keys, handles quit, idle and demo switching.
func (g *Game) processInput(now time.Time) error {
	g.state.Input = input.ReadInput(g.stream)

	if g.stream.Closed() || g.state.Input.Quit {
		g.state.Running = false
		return nil
	}

	if len(g.state.Input.Pressed) > 0 {
		g.state.lastInput = now
		g.state.idle = false
	} else if g.opts.IdleTimeout > 0 {
		idleFor := now.Sub(g.state.lastInput)
		if idleFor > g.opts.IdleTimeout {
			g.state.Running = false
			return ErrIdleTimeout
		}
		g.state.idle = idleFor > g.opts.IdleTimeout*3/4
	}

	if d := g.state.Input.Demo; d >= 0 && d < len(config.Demos) && config.Demos[d] != g.state.Scene.Settings.Demo {
		g.switchDemo(config.Demos[d])
	}
	return nil
}

// switchDemo replaces the scene with a fresh one of another demo. The
// targeting tuning of the current settings carries over.
func (g *Game) switchDemo(demo config.Demo) {
	s := config.DefaultSettings(demo)
	s.Targeting = g.state.Scene.Settings.Targeting
	g.state.Scene.release()
	g.state.Scene = NewScene(s, g.rng)
	g.state.banner = ""
	g.state.redraw = true
	input.ResetKeyInput(g.stream)
	g.logger.Info("demo switched", "demo", demo)
}

// update advances the scene one tick.
func (g *Game) update() error {
	prev := g.state.Scene
	next, d, err := advance(prev, g.state.Input.Activate, g.state.Delta, g.rng)
	if err != nil {
		return err
	}
	g.state.Decision = d

	if next != prev {
		g.logger.Debug("scene restarted",
			"reason", d.Reason,
			"distance", d.Distance,
			"hazard", d.Hazard,
			"ticks", prev.Ticks,
		)
		g.state.banner = restartBanner(d.Reason)
		g.state.bannerTime = bannerDuration
		g.state.bannerX, g.state.bannerY = next.Astronaut.X, next.Astronaut.Y
		g.state.redraw = true
	} else if g.state.bannerTime > 0 {
		g.state.bannerTime -= g.state.Delta
		if g.state.bannerTime <= 0 {
			g.state.banner = ""
			g.state.redraw = true
		}
	}
	g.state.Scene = next
	return nil
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area.
func (g *Game) updateScreen() {
	termWidth, termHeight, err := g.opts.TermSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != g.canvas.TerminalWidth() || renderHeight != g.canvas.TerminalHeight() ||
		offsetCol != g.canvas.OffsetCol() || offsetRow != g.canvas.OffsetRow() {
		g.state.redraw = true
	}

	g.canvas.Resize(renderWidth, renderHeight)
	g.canvas.SetOffset(offsetCol, offsetRow)
	g.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// drawFrame draws the scene and the HUD.
func (g *Game) drawFrame() error {
	if g.state.redraw || g.state.idle != g.state.wasIdle {
		g.chunkWriter.WriteString("\033[H\033[2J")
		g.canvas.ForceRedraw()
		g.state.redraw = false
		g.state.wasIdle = g.state.idle
	}

	g.canvas.Clear()

	sc := g.state.Scene
	ctx := object.DrawContext{
		Canvas: g.canvas,
		Writer: g.chunkWriter,
		Camera: sc.Camera,
		View:   object.Screen{Width: config.ViewWidth, Height: config.ViewHeight},
	}
	for _, obj := range sc.objects() {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}

	g.canvas.Render(g.chunkWriter)
	g.canvas.RenderBorder(g.chunkWriter)
	g.drawUI()

	return g.chunkWriter.Flush()
}
