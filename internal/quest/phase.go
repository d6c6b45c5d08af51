package quest

// Phase is the scene-level state.
type Phase int

const (
	Playing    Phase = iota // Normal play
	Restarting              // Scene is torn down and rebuilt before the next tick
)

func (p Phase) String() string {
	if p == Restarting {
		return "restarting"
	}
	return "playing"
}

// NextPhase returns the phase that follows a tick's decision. Restarting
// always resolves back to a fresh Playing scene, so nothing carries over.
func NextPhase(current Phase, d Decision) Phase {
	if current == Restarting {
		return Playing
	}
	if d.Restart {
		return Restarting
	}
	return Playing
}
