package tiles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testConfig(candidates int) Config {
	c := make([]Provider, candidates)
	for i := range c {
		c[i] = Provider{Name: string(rune('a' + i)), URL: "https://tiles.test/{z}/{x}/{y}.png"}
	}
	return Config{
		Candidates:     c,
		EarlyWindow:    80 * time.Millisecond,
		OverallWindow:  250 * time.Millisecond,
		ErrorThreshold: 3,
	}
}

func reportErrors(c *Cascade, n int) {
	for i := 0; i < n; i++ {
		c.Report(EventError)
	}
}

func TestCascadeAllCandidatesFail(t *testing.T) {
	c := NewCascade(testConfig(4))
	defer c.Stop()

	for i := 0; i < 4; i++ {
		reportErrors(c, 3)
	}

	s := c.Status()
	assert.Equal(t, StateFallback, s.State, "wrong state")
	assert.Equal(t, "osm", s.Provider.Name, "wrong fallback provider")
	assert.True(t, s.Overlay, "fallback must carry the overlay")
	assert.Equal(t, 1, s.OverlayApplications, "overlay must be applied exactly once")
	assert.NotEmpty(t, s.Filter, "fallback must carry a visual filter")

	// terminal: further errors change nothing
	reportErrors(c, 5)
	s = c.Status()
	assert.Equal(t, StateFallback, s.State, "fallback must be terminal")
	assert.Equal(t, 1, s.OverlayApplications, "overlay reapplied in terminal state")
	assert.NotEmpty(t, s.Provider.URL, "map left without a background layer")
}

func TestCascadeLoadSettles(t *testing.T) {
	c := NewCascade(testConfig(3))
	defer c.Stop()

	reportErrors(c, 2)
	c.Report(EventLoad)

	s := c.Status()
	assert.Equal(t, StateSteady, s.State, "wrong state")
	assert.Equal(t, 0, s.CandidateIdx, "steady must keep the working candidate")
	assert.Equal(t, 1, s.Loads, "wrong load count")
	assert.False(t, s.Overlay, "steady must not carry an overlay")

	// timers are cancelled: waiting past both windows must not advance
	time.Sleep(400 * time.Millisecond)
	s = c.Status()
	assert.Equal(t, StateSteady, s.State, "steady must survive the windows")
	assert.Equal(t, 0, s.CandidateIdx, "steady candidate must not advance")
}

func TestCascadeErrorsAfterEarlyWindow(t *testing.T) {
	c := NewCascade(testConfig(3))
	defer c.Stop()

	// let the early window close, then errors alone must not advance
	time.Sleep(120 * time.Millisecond)
	reportErrors(c, 5)

	s := c.Status()
	assert.Equal(t, StateTrying, s.State, "wrong state")
	assert.Equal(t, 0, s.CandidateIdx, "errors outside the early window advanced the candidate")
	assert.Equal(t, 5, s.Errors, "wrong error count")
}

func TestCascadeOverallWindowAdvances(t *testing.T) {
	c := NewCascade(testConfig(3))
	defer c.Stop()

	time.Sleep(320 * time.Millisecond)

	s := c.Status()
	assert.Equal(t, StateTrying, s.State, "wrong state")
	assert.Equal(t, 1, s.CandidateIdx, "silent candidate must be advanced past")
	assert.NotEmpty(t, s.Provider.URL, "map left without a background layer")
}

func TestCascadeResetAndRecovery(t *testing.T) {
	c := NewCascade(testConfig(2))
	defer c.Stop()

	reportErrors(c, 3)
	reportErrors(c, 3)
	s := c.Status()
	assert.Equal(t, StateFallback, s.State, "wrong state")
	assert.True(t, s.Overlay, "missing overlay")

	c.Reset()
	s = c.Status()
	assert.Equal(t, StateTrying, s.State, "reset must restart the candidates")
	assert.Equal(t, 0, s.CandidateIdx, "reset must restart at the first candidate")
	assert.True(t, s.Overlay, "overlay must persist until a candidate loads")

	c.Report(EventLoad)
	s = c.Status()
	assert.Equal(t, StateSteady, s.State, "wrong state")
	assert.False(t, s.Overlay, "a successful load must remove the overlay")
}

func TestCascadeStop(t *testing.T) {
	c := NewCascade(testConfig(2))
	c.Stop()

	// neither may block once stopped
	c.Report(EventError)
	c.Reset()
	s := c.Status()
	assert.NotEmpty(t, s.Provider.URL, "stopped cascade must still name a provider")
}

func TestDefaultCandidates(t *testing.T) {
	candidates := DefaultCandidates()
	assert.Equal(t, 4, len(candidates), "wrong candidate count")
	for _, p := range candidates {
		assert.NotEmpty(t, p.URL, "candidate without a URL")
		assert.Contains(t, p.URL, "{z}", "candidate URL is not templated")
	}

	fallback := FallbackProvider()
	assert.Contains(t, fallback.URL, "openstreetmap", "wrong fallback provider")
	assert.NotEmpty(t, DefaultFilter, "missing fallback filter")
}
