package sim

import "github.com/gdamore/tcell/v2"

// shortStep is the fraction of the step size taken with shift held.
const shortStep = 0.2

// HandleKeyboardEvent applies the playback keys of the current tick mode and
// reports whether the key was used.
func (c *Controller) HandleKeyboardEvent(ev *tcell.EventKey) bool {
	switch c.tickMode {
	case RealTime:
		if isSpace(ev) {
			c.RequestPlayPause()
			return true
		}
	case RealTimeAutoPause:
		if c.shouldLoop {
			return false
		}
		return c.handleStepKey(ev)
	case Manual:
		if isSpace(ev) {
			c.RequestFastForward()
			return true
		}
		return c.handleStepKey(ev)
	case AutoFastForward:
	}
	return false
}

func (c *Controller) handleStepKey(ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyRight {
		return false
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		c.RequestStep(shortStep)
	} else {
		c.RequestStep(1)
	}
	return true
}

func isSpace(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && ev.Rune() == ' '
}
