package piestyle

import (
	"math"
	"testing"
)

func TestControlSizeRoundTrip(t *testing.T) {
	for f := ControlSizeMin; f <= ControlSizeMax+1e-9; f += 0.001 {
		got := FactorFromDisplay(float64(DisplayFromFactor(f)))
		if math.Abs(got-f) > sizeRange/100 {
			t.Fatalf("factor %v -> %d -> %v, off by more than one step", f, DisplayFromFactor(f), got)
		}
	}
}

func TestControlSizeDisplayRoundTrip(t *testing.T) {
	for p := 0; p <= 100; p++ {
		if got := DisplayFromFactor(FactorFromDisplay(float64(p))); got != p {
			t.Errorf("display %d -> factor -> %d", p, got)
		}
	}
}

func TestControlSizeBounds(t *testing.T) {
	if got := FactorFromDisplay(0); got != ControlSizeMin {
		t.Errorf("FactorFromDisplay(0) = %v, want %v", got, ControlSizeMin)
	}
	if got := FactorFromDisplay(100); got != ControlSizeMax {
		t.Errorf("FactorFromDisplay(100) = %v, want %v", got, ControlSizeMax)
	}
	if got := DisplayFromFactor(ControlSizeDefault); got != 44 {
		t.Errorf("DisplayFromFactor(1.0) = %d, want 44", got)
	}
}

func TestAlphaConversion(t *testing.T) {
	if got := AlphaFromDisplay(80); got != 0.8 {
		t.Errorf("AlphaFromDisplay(80) = %v, want 0.8", got)
	}
	if got := DisplayFromAlpha(DefaultBackgroundAlpha); got != 30 {
		t.Errorf("DisplayFromAlpha(0.3) = %d, want 30", got)
	}
	// Not clamped.
	if got := AlphaFromDisplay(150); got != 1.5 {
		t.Errorf("AlphaFromDisplay(150) = %v, want 1.5", got)
	}
}
