package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"enlarger/timer"
)

// fault puts the hardware in a safe state after a panic: lamp off, message on
// the panel and the stack on the log.
func (a *App) fault(v any) {
	if l := a.h.Lamp(); l != nil {
		l.Low()
	}

	if a.log != nil {
		a.log.WriteLineString(fmt.Sprintf("timer fault: %v", v))
		for _, line := range strings.Split(string(debug.Stack()), "\n") {
			if line == "" {
				continue
			}
			a.log.WriteLineString(line)
		}
	}

	if a.lcd == nil {
		return
	}
	a.lcd.SetBacklight(255, 0, 0)
	a.lcd.Clear()
	a.lcd.SetCursor(0, 0)
	a.lcd.Write("Timer fault")
	a.lcd.SetCursor(0, 1)
	a.lcd.Write(fitText(fmt.Sprint(v), timer.Cols))
}

func fitText(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	return s[:max]
}
