package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/vovakirdan/tui-ricochet/internal/physics"
)

// drain streams s to completion and returns the sample count.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if buf[j][0] < -1 || buf[j][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+j, buf[j][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never finished")
	return 0
}

func TestSoundsAreFinite(t *testing.T) {
	tests := []struct {
		name string
		s    beep.Streamer
		want time.Duration
	}{
		{"wall", BounceSound(physics.KindWall), 30 * time.Millisecond},
		{"pad", BounceSound(physics.KindPad), 40 * time.Millisecond},
		{"booster", BounceSound(physics.KindBooster), 100 * time.Millisecond},
		{"collect", CollectSound(), 180 * time.Millisecond},
		{"complete", CompleteSound(), 520 * time.Millisecond},
		{"fail", FailSound(), 230 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := drain(t, tt.s), sampleRate.N(tt.want); got != want {
				t.Errorf("streamed %d samples, want %d", got, want)
			}
		})
	}
}

func TestSquareAmplitude(t *testing.T) {
	buf := make([][2]float64, 64)
	n, _ := square(440, 10*time.Millisecond).Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 0.2 && v != -0.2 {
			t.Fatalf("square sample %d = %f, want ±0.2", i, v)
		}
	}
}

func TestSilentPlayerIsNoOp(t *testing.T) {
	p := Silent()
	p.Bounce(physics.KindPad)
	p.Collect()
	p.LevelComplete()
	p.RunFailed()
	p.Close()

	var nilPlayer *Player
	nilPlayer.Collect()
}
