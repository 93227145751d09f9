package engine

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/last-touch/events"
	"github.com/lixenwraith/last-touch/game"
	"github.com/lixenwraith/last-touch/render"
)

// MuteStater reports the audio mute state for the HUD.
type MuteStater interface {
	IsMuted() bool
}

// Loop is the single-threaded heart of the game. Input events arrive
// through the queue, the elimination timer through the scheduler
// channel, frames through the ticker; all three are serialized here,
// so the registry needs no locking and events apply in delivery order.
type Loop struct {
	screen     tcell.Screen
	queue      *events.Queue
	router     *events.Router
	controller *game.Controller
	renderer   *render.Renderer
	mute       MuteStater // may be nil

	frameInterval time.Duration

	quit     chan struct{}
	quitOnce sync.Once
}

// NewLoop wires the loop and registers it on the router for control
// events.
func NewLoop(
	screen tcell.Screen,
	queue *events.Queue,
	router *events.Router,
	controller *game.Controller,
	renderer *render.Renderer,
	mute MuteStater,
	frameInterval time.Duration,
) *Loop {
	l := &Loop{
		screen:        screen,
		queue:         queue,
		router:        router,
		controller:    controller,
		renderer:      renderer,
		mute:          mute,
		frameInterval: frameInterval,
		quit:          make(chan struct{}),
	}
	router.Register(l)
	return l
}

// Run blocks until Stop is called or a quit event arrives. Scheduler
// teardown happens on exit so no timer outlives the loop.
func (l *Loop) Run() {
	defer l.controller.Teardown()

	ticker := time.NewTicker(l.frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.quit:
			return

		case <-l.controller.TimerC():
			// TimerC is re-evaluated every iteration, so a timer
			// re-armed by a mutation is picked up immediately and a
			// disarmed one blocks forever.
			l.controller.EliminationTick()

		case <-ticker.C:
			// Drain until quiet: pointer dispatch can emit domain
			// events that the audio and log handlers consume in the
			// same frame.
			for l.router.DispatchAll() > 0 {
			}
			select {
			case <-l.quit:
				return
			default:
			}
			l.renderer.Draw(l.controller.Snapshot(), l.status())
		}
	}
}

// Stop terminates Run. Safe to call from any goroutine, more than once.
func (l *Loop) Stop() {
	l.quitOnce.Do(func() {
		close(l.quit)
	})
}

// HandleEvent implements events.Handler for control events.
func (l *Loop) HandleEvent(ev events.GameEvent) {
	switch ev.Type {
	case events.EventQuit:
		l.Stop()
	case events.EventResize:
		l.screen.Sync()
	}
}

// EventTypes implements events.Handler.
func (l *Loop) EventTypes() []events.EventType {
	return []events.EventType{events.EventQuit, events.EventResize}
}

func (l *Loop) status() render.Status {
	s := render.Status{Armed: l.controller.SchedulerActive()}
	if l.mute != nil {
		s.Muted = l.mute.IsMuted()
	}
	return s
}
