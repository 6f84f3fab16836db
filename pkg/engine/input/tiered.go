package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent while previewing a generation.
type Action int

const (
	ActionNone Action = iota

	// Generation control
	ActionPause
	ActionStep
	ActionSpeedUp
	ActionSlowDown

	// Reports
	ActionDump
	ActionSnapshot

	// Meta
	ActionQuit
)

// Intent is the 4th-layer, high-level description of what the user wants
// to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "space", "arrow_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after deduplication.
// Both backends (Ebiten just-pressed queries, terminal raw mode) already
// deliver one event per keypress, but the distinct type keeps the
// layering explicit and extensible.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Pause/resume the stepper
	"space": ActionPause,
	"p":     ActionPause,

	// Single step while paused (and the interactive terminal default)
	"n":     ActionStep,
	".":     ActionStep,
	"enter": ActionStep,

	// Steps per frame
	"=":          ActionSpeedUp,
	"+":          ActionSpeedUp,
	"arrow_up":   ActionSpeedUp,
	"-":          ActionSlowDown,
	"arrow_down": ActionSlowDown,

	// Text dump and HTML snapshot reports
	"d": ActionDump,
	"h": ActionSnapshot,

	// Quit
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionPause:
		return "Pause"
	case ActionStep:
		return "Step"
	case ActionSpeedUp:
		return "Speed Up"
	case ActionSlowDown:
		return "Slow Down"
	case ActionDump:
		return "Dump Map"
	case ActionSnapshot:
		return "Save Snapshot"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Quit stays reachable: its codes cannot be rebound away.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if c == "q" || c == "escape" {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && code != "q" && code != "escape" {
		bindings[code] = action
	}
}
