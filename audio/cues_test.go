package audio

import "testing"

func TestMutedPlayerIsSilentButUsable(t *testing.T) {
	p, err := NewPlayer(true)
	if err != nil {
		t.Fatalf("NewPlayer(muted) returned error: %v", err)
	}
	// None of these may touch the speaker.
	p.Play(CueToggle)
	p.Play(CueAdjust)
	p.Play(CueClamp)
	p.Play(Cue(42))
	p.Close()
}

func TestNilPlayerIsSafe(t *testing.T) {
	var p *Player
	p.Play(CueToggle)
	p.Close()
}
