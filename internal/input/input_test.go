package input

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// newTestStream builds a stream with bytes already queued and the reader closed.
func newTestStream(data string) *Stream {
	s := &Stream{ch: make(chan byte, len(data)+1), state: keyState{demoVal: -1}}
	for i := 0; i < len(data); i++ {
		s.ch <- data[i]
	}
	return s
}

func TestReadInputActivateHold(t *testing.T) {
	s := newTestStream(" ")
	now := time.Now()

	in := readInputAt(s, now)
	assert.True(t, in.Activate)
	assert.Equal(t, []byte(" "), in.Pressed)

	in = readInputAt(s, now.Add(keyHoldDuration/2))
	assert.True(t, in.Activate, "still held between key repeats")

	in = readInputAt(s, now.Add(keyHoldDuration))
	assert.False(t, in.Activate)
}

func TestReadInputArrowUpActivates(t *testing.T) {
	s := newTestStream("\x1b[A")
	in := readInputAt(s, time.Now())
	assert.True(t, in.Activate)
	assert.False(t, in.Quit, "escape sequence is not a bare escape")
}

func TestReadInputOtherArrowsIgnored(t *testing.T) {
	s := newTestStream("\x1b[B\x1b[C")
	in := readInputAt(s, time.Now())
	assert.False(t, in.Activate)
}

func TestReadInputLatch(t *testing.T) {
	s := newTestStream("f")
	now := time.Now()

	in := readInputAt(s, now)
	assert.True(t, in.Latched)
	assert.True(t, in.Activate)

	in = readInputAt(s, now.Add(time.Second))
	assert.True(t, in.Activate, "latch survives without repeats")

	s.ch <- 'F'
	in = readInputAt(s, now.Add(2*time.Second))
	assert.False(t, in.Latched)
	assert.False(t, in.Activate)
}

func TestReadInputQuitAndDemo(t *testing.T) {
	s := newTestStream("3")
	in := readInputAt(s, time.Now())
	assert.Equal(t, 2, in.Demo)
	assert.False(t, in.Quit)

	s.ch <- '\x03'
	in = readInputAt(s, time.Now())
	assert.True(t, in.Quit)
}

func TestResetKeyInput(t *testing.T) {
	s := newTestStream("f ")
	now := time.Now()
	readInputAt(s, now)

	ResetKeyInput(s)
	in := readInputAt(s, now)
	assert.False(t, in.Activate)
	assert.False(t, in.Latched)
	assert.Equal(t, -1, in.Demo)

	ResetKeyInput(nil)
}

func TestStartStreamClosesOnEOF(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("q")))

	assert.Eventually(t, func() bool {
		in := ReadInput(s)
		return s.Closed() || in.Quit
	}, time.Second, time.Millisecond)

	assert.Eventually(t, func() bool {
		ReadInput(s)
		return s.Closed()
	}, time.Second, time.Millisecond)
}
