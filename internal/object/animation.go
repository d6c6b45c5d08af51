package object

import "time"

// Animation steps through sprite frames at a fixed rate.
type Animation struct {
	Frames  []int
	FPS     float64
	Loop    bool
	elapsed time.Duration
}

// NewAnimation creates an animation starting on its first frame.
func NewAnimation(frames []int, fps float64, loop bool) *Animation {
	return &Animation{Frames: frames, FPS: fps, Loop: loop}
}

// Advance moves the animation clock forward.
func (a *Animation) Advance(dt time.Duration) {
	a.elapsed += dt
}

// Frame returns the current frame number, 0 for an empty animation.
func (a *Animation) Frame() int {
	if a == nil || len(a.Frames) == 0 || a.FPS <= 0 {
		return 0
	}
	step := int(a.elapsed.Seconds() * a.FPS)
	if a.Loop {
		step %= len(a.Frames)
	} else if step >= len(a.Frames) {
		step = len(a.Frames) - 1
	}
	return a.Frames[step]
}
