package tiles

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Ciztek/pwe/metrics"
)

const (
	logPrefix = "tiles"

	EventLoad  = "load"
	EventError = "error"

	StateTrying   = "trying"
	StateSteady   = "steady"
	StateFallback = "fallback"

	defaultEarlyWindow    = 10 * time.Second
	defaultOverallWindow  = 30 * time.Second
	defaultErrorThreshold = 3
)

// Status - what the map client should render right now
type Status struct {
	State               string   `json:"state"`
	Provider            Provider `json:"provider"`
	CandidateIdx        int      `json:"candidate_index"`
	Errors              int      `json:"errors"`
	Loads               int      `json:"loads"`
	Overlay             bool     `json:"overlay"`
	OverlayApplications int      `json:"overlay_applications"`
	Filter              string   `json:"filter,omitempty"`
}

// Config - cascade tuning; zero fields fall back to defaults
type Config struct {
	Candidates     []Provider
	Fallback       Provider
	Filter         string
	EarlyWindow    time.Duration
	OverallWindow  time.Duration
	ErrorThreshold int
}

type event struct {
	kind string
}

// Cascade walks a ranked list of tile providers, advancing past any
// candidate that errors too early or never loads, and parks on a
// known-reliable provider with a visual filter once the list runs out.
// All state lives on the run goroutine; callers talk to it over
// channels, so the map is never left without a background layer while
// a decision is made.
type Cascade struct {
	candidates     []Provider
	fallback       Provider
	filter         string
	earlyWindow    time.Duration
	overallWindow  time.Duration
	errorThreshold int

	events    chan event
	statusReq chan chan Status
	resetReq  chan chan struct{}
	quit      chan struct{}

	// run goroutine only
	state               string
	idx                 int
	errors              int
	loads               int
	earlyOpen           bool
	earlyTimer          *time.Timer
	overallTimer        *time.Timer
	overlayActive       bool
	overlayApplications int
}

// NewCascade - start a cascade on the first candidate
func NewCascade(cfg Config) *Cascade {
	if len(cfg.Candidates) == 0 {
		cfg.Candidates = DefaultCandidates()
	}
	if cfg.Fallback.URL == "" {
		cfg.Fallback = FallbackProvider()
	}
	if cfg.Filter == "" {
		cfg.Filter = DefaultFilter
	}
	if cfg.EarlyWindow <= 0 {
		cfg.EarlyWindow = defaultEarlyWindow
	}
	if cfg.OverallWindow <= 0 {
		cfg.OverallWindow = defaultOverallWindow
	}
	if cfg.ErrorThreshold <= 0 {
		cfg.ErrorThreshold = defaultErrorThreshold
	}

	c := &Cascade{
		candidates:     cfg.Candidates,
		fallback:       cfg.Fallback,
		filter:         cfg.Filter,
		earlyWindow:    cfg.EarlyWindow,
		overallWindow:  cfg.OverallWindow,
		errorThreshold: cfg.ErrorThreshold,
		events:         make(chan event),
		statusReq:      make(chan chan Status),
		resetReq:       make(chan chan struct{}),
		quit:           make(chan struct{}),
	}
	go c.run()

	return c
}

// Report - feed one tile outcome into the cascade
func (c *Cascade) Report(kind string) {
	select {
	case c.events <- event{kind: kind}:
	case <-c.quit:
	}
}

// Status - snapshot of the current decision
func (c *Cascade) Status() Status {
	reply := make(chan Status, 1)
	select {
	case c.statusReq <- reply:
		return <-reply
	case <-c.quit:
		return Status{State: StateFallback, Provider: c.fallback, Overlay: true, Filter: c.filter}
	}
}

// Reset - start over from the first candidate; a lingering fallback
// overlay stays up until a candidate actually loads
func (c *Cascade) Reset() {
	reply := make(chan struct{}, 1)
	select {
	case c.resetReq <- reply:
		<-reply
	case <-c.quit:
	}
}

// Stop - shut the cascade down
func (c *Cascade) Stop() {
	close(c.quit)
}

func (c *Cascade) run() {
	c.enterCandidate(0)

	for {
		select {
		case e := <-c.events:
			c.handleEvent(e)
		case <-timerC(c.earlyTimer):
			c.earlyTimer = nil
			c.earlyOpen = false
		case <-timerC(c.overallTimer):
			c.overallTimer = nil
			if c.state == StateTrying && c.loads == 0 {
				c.advance()
			}
		case reply := <-c.statusReq:
			reply <- c.snapshot()
		case reply := <-c.resetReq:
			c.enterCandidate(0)
			reply <- struct{}{}
		case <-c.quit:
			c.stopTimers()
			return
		}
	}
}

func (c *Cascade) handleEvent(e event) {
	metrics.TileEventsTotal.WithLabelValues(e.kind).Inc()

	switch c.state {
	case StateFallback:
		// terminal
		return
	case StateSteady:
		if e.kind == EventLoad {
			c.loads++
		}
		return
	}

	switch e.kind {
	case EventLoad:
		c.loads++
		c.state = StateSteady
		c.stopTimers()
		if c.overlayActive {
			c.overlayActive = false
		}
		log.WithFields(log.Fields{"prefix": logPrefix, "provider": c.candidates[c.idx].Name}).Info("tile provider steady")
	case EventError:
		c.errors++
		if c.earlyOpen && c.loads == 0 && c.errors >= c.errorThreshold {
			c.advance()
		}
	}
}

func (c *Cascade) advance() {
	metrics.TileAdvancesTotal.Inc()

	next := c.idx + 1
	if next >= len(c.candidates) {
		c.enterFallback()
		return
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"from":   c.candidates[c.idx].Name,
		"to":     c.candidates[next].Name,
		"errors": c.errors,
	}).Warn("advance tile candidate")
	c.enterCandidate(next)
}

func (c *Cascade) enterCandidate(i int) {
	c.stopTimers()
	c.idx = i
	c.state = StateTrying
	c.errors = 0
	c.loads = 0
	c.earlyOpen = true
	c.earlyTimer = time.NewTimer(c.earlyWindow)
	c.overallTimer = time.NewTimer(c.overallWindow)
}

func (c *Cascade) enterFallback() {
	metrics.TileFallbacksTotal.Inc()

	c.state = StateFallback
	c.stopTimers()
	if !c.overlayActive {
		c.overlayActive = true
		c.overlayApplications++
	}
	log.WithFields(log.Fields{"prefix": logPrefix, "provider": c.fallback.Name}).Warn("tile cascade exhausted, filtered fallback")
}

func (c *Cascade) snapshot() Status {
	s := Status{
		State:               c.state,
		CandidateIdx:        c.idx,
		Errors:              c.errors,
		Loads:               c.loads,
		Overlay:             c.overlayActive,
		OverlayApplications: c.overlayApplications,
	}
	if c.state == StateFallback {
		s.Provider = c.fallback
		s.Filter = c.filter
	} else {
		s.Provider = c.candidates[c.idx]
	}
	if c.overlayActive {
		s.Filter = c.filter
	}
	return s
}

func (c *Cascade) stopTimers() {
	if c.earlyTimer != nil {
		c.earlyTimer.Stop()
		c.earlyTimer = nil
	}
	if c.overallTimer != nil {
		c.overallTimer.Stop()
		c.overallTimer = nil
	}
	c.earlyOpen = false
}

func timerC(t *time.Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}
