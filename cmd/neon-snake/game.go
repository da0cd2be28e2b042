package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/neon-snake/constants"
	"github.com/lixenwraith/neon-snake/engine"
	"github.com/lixenwraith/neon-snake/modes"
	"github.com/lixenwraith/neon-snake/render"
	"github.com/lixenwraith/neon-snake/status"
)

// game binds the screen, controller, renderer and input handler to the frame loop
type game struct {
	screen   tcell.Screen
	ctrl     *engine.Controller
	renderer *render.TerminalRenderer
	input    *modes.InputHandler
	log      logrus.FieldLogger
	stats    *status.Registry

	frameInterval time.Duration
	lastResult    *engine.Result
	finish        func()
}

func newGame(screen tcell.Screen, ctrl *engine.Controller, log logrus.FieldLogger) *game {
	g := &game{
		screen:        screen,
		ctrl:          ctrl,
		renderer:      render.NewTerminalRenderer(screen),
		log:           log,
		stats:         status.NewRegistry(),
		frameInterval: constants.FrameUpdateInterval,
		finish:        sync.OnceFunc(screen.Fini),
	}
	g.input = modes.NewInputHandler(nil, func(w, h int) {
		g.renderer.Resize(w, h)
		g.screen.Sync()
		g.log.WithFields(logrus.Fields{"width": w, "height": h}).Debug("resize")
	})
	return g
}

// run starts the event poller and the frame loop and waits for both.
// The loop ends on quit or context cancellation; the screen is finalized on return.
func (g *game) run(ctx context.Context) error {
	defer g.finish()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 256)
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer cancel()
		return g.pollEvents(ctx, events)
	})
	eg.Go(func() (err error) {
		defer cancel()
		// Finalizing the screen unblocks PollEvent in the poller
		defer g.finish()
		defer func() {
			if r := recover(); r != nil {
				crashReport(g.finish, r)
				err = fmt.Errorf("frame loop crashed: %v", r)
			}
		}()
		return g.loop(ctx, events)
	})

	return eg.Wait()
}

// pollEvents forwards tcell events until the screen is finalized
func (g *game) pollEvents(ctx context.Context, events chan<- tcell.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("event poller crashed: %v\n%s", r, debug.Stack())
		}
	}()

	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

func (g *game) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(g.frameInterval)
	defer ticker.Stop()

	pending := make([]engine.Event, 0, 8)
	g.renderer.RenderFrame(g.ctrl.Snapshot())

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			start := time.Now()
			pending = g.drain(events, pending[:0])
			if !g.ctrl.Frame(pending) {
				return nil
			}
			g.renderer.RenderFrame(g.ctrl.Snapshot())
			g.record(time.Since(start))
		}
	}
}

// record updates run statistics after a completed frame
func (g *game) record(elapsed time.Duration) {
	g.stats.Counter(status.MetricFrames).Add(1)
	g.stats.Gauge(status.MetricFrameMsMax).Max(float64(elapsed.Microseconds()) / 1000)
	if elapsed > g.frameInterval {
		g.stats.Counter(status.MetricFrameOverruns).Add(1)
	}

	res := g.ctrl.LastResult()
	if res == nil || res == g.lastResult {
		return
	}
	g.lastResult = res
	g.stats.Counter(status.MetricSessions).Add(1)
	if best := g.stats.Counter(status.MetricBestScore); int64(res.Score) > best.Load() {
		best.Store(int64(res.Score))
	}
	if best := g.stats.Counter(status.MetricBestLevel); int64(res.Level) > best.Load() {
		best.Store(int64(res.Level))
	}
}

// drain collects every queued event without blocking
func (g *game) drain(events <-chan tcell.Event, out []engine.Event) []engine.Event {
	for {
		select {
		case ev := <-events:
			if e, ok := g.input.HandleEvent(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

// crashReport restores the terminal through fini and prints the panic with its stack
func crashReport(fini func(), r any) {
	if fini != nil {
		fini()
	}
	// \r\n in case the terminal is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mNEON SNAKE CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
}
