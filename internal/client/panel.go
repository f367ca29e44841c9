package client

import (
	"sync"
	"time"
)

type PanelKind string

const (
	PanelSuccess PanelKind = "success"
	PanelError   PanelKind = "error"
)

// View is what the confirmation panel displays.
type View struct {
	Kind      PanelKind
	Simulated bool

	BookingID     string
	Service       string
	Date          string
	Time          string
	Customer      string
	Email         string
	Phone         string
	Notes         string
	ServerMessage string
	LocalOnly     bool

	Error string
}

type PanelState struct {
	View    View
	Visible bool
}

// Panel is the single confirmation area of the form. Every Show arms a
// single-shot dismiss timer that only hides the view it was armed for.
type Panel struct {
	mu        sync.Mutex
	state     PanelState
	gen       uint64
	closed    bool
	afterFunc func(d time.Duration, f func())
}

func NewPanel() *Panel {
	return &Panel{
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

func (p *Panel) Show(v View, ttl time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	p.gen++
	gen := p.gen
	p.state = PanelState{View: v, Visible: true}

	p.afterFunc(ttl, func() { p.dismiss(gen) })
}

// Hide is a no-op on a hidden panel.
func (p *Panel) Hide() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state.Visible = false
}

func (p *Panel) State() PanelState {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

// Close detaches the panel. Pending timers fire into nothing.
func (p *Panel) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	p.state = PanelState{}
}

func (p *Panel) dismiss(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || gen != p.gen {
		return
	}

	p.state.Visible = false
}
