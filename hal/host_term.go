//go:build !tinygo

package hal

import (
	"fmt"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const termLogLines = 6

var (
	termTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#101010"))
	termBezel     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#6E6E6E"))
	termDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	termHelp      = "m mode  s set  f focus  r/space run  ←/→ turn  0 zero  q quit"
)

// RunTerminal runs the simulator in the terminal. It needs no cgo. Log lines
// are shown under the panel instead of being written to stdout.
func RunTerminal(newApp func(HAL) func() error, hz int) error {
	if hz <= 0 {
		hz = 100
	}
	logs := &logTail{max: termLogLines}
	h := newHostHAL(logs, newHostTime())
	m := newTermModel(h, newApp(h), logs, time.Second/time.Duration(hz))

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run terminal simulator: %w", err)
	}
	return m.err
}

type termTickMsg time.Time

type termModel struct {
	h      *hostHAL
	step   func() error
	logs   *logTail
	period time.Duration
	err    error
}

func newTermModel(h *hostHAL, step func() error, logs *logTail, period time.Duration) *termModel {
	return &termModel{h: h, step: step, logs: logs, period: period}
}

func (m *termModel) tick() tea.Cmd {
	return tea.Tick(m.period, func(t time.Time) tea.Msg { return termTickMsg(t) })
}

// Init implements tea.Model.
func (m *termModel) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m *termModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case termTickMsg:
		if m.step != nil {
			if err := m.step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, m.tick()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.h.encoder.Turn(1)
		case tea.MouseButtonWheelDown:
			m.h.encoder.Turn(-1)
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m *termModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyRight, tea.KeyUp:
		m.h.encoder.Turn(1)
	case tea.KeyLeft, tea.KeyDown:
		m.h.encoder.Turn(-1)
	case tea.KeySpace:
		m.h.buttons.get(ButtonRun).Tap()
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			switch r {
			case 'q':
				return tea.Quit
			case 'm':
				m.h.buttons.get(ButtonMode).Tap()
			case 's':
				m.h.buttons.get(ButtonSet).Tap()
			case 'f':
				m.h.buttons.get(ButtonFocus).Tap()
			case 'r', ' ':
				m.h.buttons.get(ButtonRun).Tap()
			case '0':
				m.h.encoder.Reset()
			}
		}
	}
	return nil
}

// View implements tea.Model.
func (m *termModel) View() string {
	f := m.h.lcd.snapshot()

	panel := termTextStyle
	if f.backlight {
		panel = panel.Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", f.r, f.g, f.b)))
	} else {
		panel = panel.Background(lipgloss.Color("#202020"))
	}

	lamp := "lamp off"
	if m.h.lamp.On() {
		lamp = "LAMP ON"
	}

	var b strings.Builder
	b.WriteString(termBezel.Render(panel.Render(f.printable(0)) + "\n" + panel.Render(f.printable(1))))
	b.WriteString("\n")
	b.WriteString(termDimStyle.Render(fmt.Sprintf("encoder %+d  %s", m.h.encoder.Position(), lamp)))
	b.WriteString("\n\n")
	for _, line := range m.logs.lines() {
		b.WriteString(termDimStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(termDimStyle.Render(termHelp))
	return b.String()
}

// logTail is an io.Writer keeping the last max lines written to it.
type logTail struct {
	mu      sync.Mutex
	max     int
	partial string
	tail    []string
}

func (l *logTail) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	parts := strings.Split(l.partial+string(p), "\n")
	l.partial = parts[len(parts)-1]
	for _, line := range parts[:len(parts)-1] {
		l.tail = append(l.tail, line)
	}
	if over := len(l.tail) - l.max; over > 0 {
		l.tail = append(l.tail[:0], l.tail[over:]...)
	}
	return len(p), nil
}

func (l *logTail) lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.tail...)
}
