package gameplay

import "testing"

func TestDefaultConfigUsesStandardTable(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxRounds != 0 {
		t.Errorf("MaxRounds = %d, want no limit", cfg.MaxRounds)
	}
	for players, want := range map[int]int{2: 2, 3: 2, 4: 2, 5: 1, 6: 0, 7: 0} {
		if got := cfg.faceupFor(players); got != want {
			t.Errorf("faceupFor(%d) = %d, want %d", players, got, want)
		}
	}
}

func TestConfigFixedFaceupCount(t *testing.T) {
	cfg := Config{FaceupWithheld: 1}
	for _, players := range []int{2, 4, 6} {
		if got := cfg.faceupFor(players); got != 1 {
			t.Errorf("faceupFor(%d) = %d, want the fixed 1", players, got)
		}
	}
	if got := (Config{}).faceupFor(4); got != 0 {
		t.Errorf("zero config faceupFor(4) = %d, want 0", got)
	}
}
