// Package input turns a raw terminal byte stream into per-tick input samples.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, so this bridges the gap between repeats.
const keyHoldDuration = 120 * time.Millisecond

// Input is the sample the simulation reads once per tick.
type Input struct {
	VerticalAxis  float64 // -1 (up) .. 1 (down)
	FireRequested bool
	SwitchWeapon  bool // Edge-triggered: true only on the tick the key arrived
	Quit          bool
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	up   time.Time
	down time.Time
	fire time.Time
	quit time.Time
}

// Stream delivers input bytes via a channel and tracks key state between reads.
type Stream struct {
	ch    chan byte
	state keyState
	now   func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r returns an error (e.g. the session closed).
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{
		ch:  make(chan byte, 128),
		now: time.Now,
	}
}

// ReadInput drains all available bytes from the stream without blocking
// and returns the sample for this tick.
func ReadInput(s *Stream) Input {
	now := s.now()
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				// Reader is gone; treat it as a quit request.
				s.state.quit = now
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	var in Input
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
			case 'B':
				s.state.down = now
			}
			i += 2
			continue
		}

		switch b {
		case 'q', 'Q', '\x03':
			s.state.quit = now
		case 'w', 'W', 'k', 'K':
			s.state.up = now
		case 's', 'S', 'j', 'J':
			s.state.down = now
		case ' ':
			s.state.fire = now
		case '\t', 'e', 'E':
			in.SwitchWeapon = true
		}
	}

	held := func(t time.Time) bool { return !t.IsZero() && now.Sub(t) < keyHoldDuration }

	if held(s.state.up) {
		in.VerticalAxis -= 1
	}
	if held(s.state.down) {
		in.VerticalAxis += 1
	}
	in.FireRequested = held(s.state.fire)
	in.Quit = held(s.state.quit)
	return in
}
