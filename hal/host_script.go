//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Script is a list of timed inputs replayed by the headless runner.
//
//	events:
//	  - at: 0s
//	    turn: 10
//	  - at: 500ms
//	    press: run
//	  - at: 2s
//	    hold: focus
//	  - at: 3s
//	    release: focus
type Script struct {
	Events []ScriptEvent
	next   int
}

// ScriptEvent is one input at an offset from the start of the run.
type ScriptEvent struct {
	At      time.Duration
	Press   ButtonID
	Hold    ButtonID
	Release ButtonID
	Turn    int
	Reset   bool

	hasPress, hasHold, hasRelease bool
}

type yamlScript struct {
	Events []yamlEvent `yaml:"events"`
}

type yamlEvent struct {
	At      string `yaml:"at"`
	Press   string `yaml:"press"`
	Hold    string `yaml:"hold"`
	Release string `yaml:"release"`
	Turn    int    `yaml:"turn"`
	Reset   bool   `yaml:"reset"`
}

// LoadScript reads a YAML script file.
func LoadScript(path string) (*Script, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ParseScript(raw)
}

// ParseScript decodes a YAML script. Events are sorted by time; events at the
// same time keep their file order.
func ParseScript(raw []byte) (*Script, error) {
	var file yamlScript
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse script yaml: %w", err)
	}

	s := &Script{Events: make([]ScriptEvent, 0, len(file.Events))}
	for i, e := range file.Events {
		ev, err := e.event()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		s.Events = append(s.Events, ev)
	}
	sort.SliceStable(s.Events, func(i, j int) bool { return s.Events[i].At < s.Events[j].At })
	return s, nil
}

func (e yamlEvent) event() (ScriptEvent, error) {
	var ev ScriptEvent
	if e.At != "" {
		d, err := time.ParseDuration(e.At)
		if err != nil {
			return ev, fmt.Errorf("at: %w", err)
		}
		if d < 0 {
			return ev, fmt.Errorf("at: negative offset %s", e.At)
		}
		ev.At = d
	}

	var err error
	if e.Press != "" {
		if ev.Press, err = ParseButtonID(e.Press); err != nil {
			return ev, err
		}
		ev.hasPress = true
	}
	if e.Hold != "" {
		if ev.Hold, err = ParseButtonID(e.Hold); err != nil {
			return ev, err
		}
		ev.hasHold = true
	}
	if e.Release != "" {
		if ev.Release, err = ParseButtonID(e.Release); err != nil {
			return ev, err
		}
		ev.hasRelease = true
	}
	ev.Turn = e.Turn
	ev.Reset = e.Reset

	if !ev.hasPress && !ev.hasHold && !ev.hasRelease && ev.Turn == 0 && !ev.Reset {
		return ev, fmt.Errorf("no action")
	}
	return ev, nil
}

// ParseButtonID maps a button name (mode, set, focus, run) to its ID.
func ParseButtonID(name string) (ButtonID, error) {
	for id := ButtonID(0); id < buttonCount; id++ {
		if id.String() == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown button %q", name)
}

// Done reports whether every event has fired.
func (s *Script) Done() bool {
	return s == nil || s.next >= len(s.Events)
}

// apply fires every pending event due at elapsed and returns how many fired.
func (s *Script) apply(elapsed time.Duration, enc *VirtualEncoder, buttons *virtualButtons) int {
	if s == nil {
		return 0
	}
	n := 0
	for s.next < len(s.Events) && s.Events[s.next].At <= elapsed {
		ev := s.Events[s.next]
		s.next++
		n++

		if ev.Reset {
			enc.Reset()
		}
		if ev.Turn != 0 {
			enc.Turn(ev.Turn)
		}
		if ev.hasHold {
			buttons.get(ev.Hold).Hold(true)
		}
		if ev.hasRelease {
			buttons.get(ev.Release).Hold(false)
		}
		if ev.hasPress {
			buttons.get(ev.Press).Tap()
		}
	}
	return n
}
