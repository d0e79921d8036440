package sim

import "fmt"

// TickMode decides how simulated time moves forward.
type TickMode int

const (
	// RealTime runs a frame loop on demand; skills requested while it runs
	// are queued.
	RealTime TickMode = iota
	// RealTimeAutoPause runs the loop after each skill until another skill
	// becomes usable.
	RealTimeAutoPause
	// AutoFastForward jumps straight to the next usable moment after each
	// skill.
	AutoFastForward
	// Manual only moves time on explicit steps.
	Manual
)

var tickModeNames = map[TickMode]string{
	RealTime:          "real-time",
	RealTimeAutoPause: "real-time-auto-pause",
	AutoFastForward:   "auto-fast-forward",
	Manual:            "manual",
}

func (m TickMode) String() string {
	if n, ok := tickModeNames[m]; ok {
		return n
	}
	return fmt.Sprintf("TickMode(%d)", int(m))
}

func (m TickMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *TickMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "real-time", "realtime":
		*m = RealTime
	case "real-time-auto-pause", "auto-pause":
		*m = RealTimeAutoPause
	case "auto-fast-forward", "fast-forward":
		*m = AutoFastForward
	case "manual":
		*m = Manual
	default:
		return fmt.Errorf("unknown tick mode: %s", text)
	}
	return nil
}

// TickModes lists every mode in declaration order.
func TickModes() []TickMode {
	return []TickMode{RealTime, RealTimeAutoPause, AutoFastForward, Manual}
}
