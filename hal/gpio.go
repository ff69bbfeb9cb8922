package hal

import "sync"

// VirtualButton is a button driven by software: a held level (window key
// state) or queued taps that read as pressed for one poll each (terminal
// keys, scripts).
type VirtualButton struct {
	mu    sync.Mutex
	name  string
	level bool
	taps  int
}

func newVirtualButton(name string) *VirtualButton {
	return &VirtualButton{name: name}
}

func (b *VirtualButton) Name() string { return b.name }

// Pressed reports the level, consuming one queued tap if the button is not held.
func (b *VirtualButton) Pressed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.level {
		return true
	}
	if b.taps > 0 {
		b.taps--
		return true
	}
	return false
}

// Hold sets the held level.
func (b *VirtualButton) Hold(level bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.level = level
}

// Tap queues one press.
func (b *VirtualButton) Tap() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.taps++
}

type virtualButtons struct {
	buttons [buttonCount]*VirtualButton
}

func newVirtualButtons() *virtualButtons {
	var bs virtualButtons
	for id := ButtonID(0); id < buttonCount; id++ {
		bs.buttons[id] = newVirtualButton(id.String())
	}
	return &bs
}

func (bs *virtualButtons) Button(id ButtonID) Button {
	if b := bs.get(id); b != nil {
		return b
	}
	return nullButton{}
}

func (bs *virtualButtons) get(id ButtonID) *VirtualButton {
	if bs == nil || id >= buttonCount {
		return nil
	}
	return bs.buttons[id]
}

// VirtualEncoder is a rotary encoder turned by software, clamped like the
// hardware to [EncoderMin, EncoderMax].
type VirtualEncoder struct {
	mu  sync.Mutex
	pos int
}

func (e *VirtualEncoder) Position() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pos
}

func (e *VirtualEncoder) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pos = 0
}

// Turn moves the encoder by delta detents.
func (e *VirtualEncoder) Turn(delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pos = clampPosition(e.pos + delta)
}
