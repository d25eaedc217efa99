package config

import "testing"

func TestDefaultScaleStepInRange(t *testing.T) {
	if Clock.DefaultStep < 0 || Clock.DefaultStep >= len(Clock.ScaleSteps) {
		t.Fatalf("default step %d outside %d steps", Clock.DefaultStep, len(Clock.ScaleSteps))
	}
	if Clock.ScaleSteps[Clock.DefaultStep] != 1 {
		t.Fatalf("default scale = %v, want 1", Clock.ScaleSteps[Clock.DefaultStep])
	}
	for i := 1; i < len(Clock.ScaleSteps); i++ {
		if Clock.ScaleSteps[i] <= Clock.ScaleSteps[i-1] {
			t.Fatalf("scale steps not increasing at %d: %v", i, Clock.ScaleSteps)
		}
	}
}

func TestEveryActionIsBound(t *testing.T) {
	for id := ActionNone + 1; id < ActionCount; id++ {
		b, ok := Input.Bindings[id]
		if !ok || len(b.Keys) == 0 {
			t.Errorf("action %d has no key binding", id)
		}
	}
}

func TestEverySoundHasTone(t *testing.T) {
	for _, id := range []SoundID{SoundFlash, SoundRapid, SoundReroll} {
		tone, ok := Sound.Tones[id]
		if !ok || tone.Freq <= 0 || tone.Seconds <= 0 {
			t.Errorf("sound %d tone = %+v", id, tone)
		}
	}
}

func TestVolumeStepsAscendInUnitRange(t *testing.T) {
	steps := Audio.VolumeSteps
	if len(steps) == 0 {
		t.Fatal("no volume steps")
	}
	for i, v := range steps {
		if v <= 0 || v > 1 || (i > 0 && v <= steps[i-1]) {
			t.Fatalf("volume steps = %v", steps)
		}
	}
}
