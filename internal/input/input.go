// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, so this has to bridge the repeat interval.
const keyHoldDuration = 80 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit     bool
	Activate bool // Gravity gun trigger (held key or latch)
	Latched  bool // Trigger latch is on
	Demo     int  // Demo index requested with 1-3, -1 for none
	Pressed  []byte
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit     time.Time
	activate time.Time
	demo     time.Time
	demoVal  int
	latched  bool
}

// Stream delivers input bytes via a channel and tracks key state.
type Stream struct {
	ch     chan byte
	closed bool
	state  keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:    make(chan byte, 128),
		state: keyState{demoVal: -1},
	}
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

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and keeps keys held for
// keyHoldDuration after their last repeat.
func ReadInput(s *Stream) Input {
	return readInputAt(s, time.Now())
}

func readInputAt(s *Stream, now time.Time) Input {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if buf[i+2] == 'A' { // Up arrow
				s.state.activate = now
			}
			i += 2
			continue
		}

		applyByteToState(&s.state, b, now)
	}

	held := now.Sub(s.state.activate) < keyHoldDuration
	input := Input{
		Quit:     now.Sub(s.state.quit) < keyHoldDuration,
		Activate: held || s.state.latched,
		Latched:  s.state.latched,
		Demo:     -1,
		Pressed:  buf,
	}

	if now.Sub(s.state.demo) < keyHoldDuration {
		input.Demo = s.state.demoVal
	}

	return input
}

// ResetKeyInput forgets held keys and releases the trigger latch.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.state = keyState{demoVal: -1}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl-C arrives as a byte in raw mode
		state.quit = now
	case ' ', 'w', 'W', 'k', 'K':
		state.activate = now
	case 'f', 'F':
		state.latched = !state.latched
	case '1', '2', '3':
		state.demo = now
		state.demoVal = int(b - '1')
	}
}
