package vmath

import (
	"math"
	"math/rand"
	"testing"
)

func TestV3FClampMag(t *testing.T) {
	tests := []struct {
		name    string
		in      Vec3F
		max     float64
		wantMag float64
	}{
		{"Below max unchanged", Vec3F{1, 0, 0}, 12, 1},
		{"Above max clamped", Vec3F{30, 40, 0}, 12, 12},
		{"Zero stays zero", Vec3F{}, 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := V3FMag(V3FClampMag(tt.in, tt.max))
			if math.Abs(got-tt.wantMag) > 1e-9 {
				t.Errorf("Expected magnitude %f, got %f", tt.wantMag, got)
			}
		})
	}
}

func TestV3FClampMagKeepsDirection(t *testing.T) {
	v := V3FClampMag(Vec3F{30, 40, 0}, 5)
	if math.Abs(v.X-3) > 1e-9 || math.Abs(v.Y-4) > 1e-9 {
		t.Errorf("Expected (3,4,0), got %+v", v)
	}
}

func TestSmoothstep(t *testing.T) {
	if got := Smoothstep(0, 1, -1); got != 0 {
		t.Errorf("Expected 0 below edge0, got %f", got)
	}
	if got := Smoothstep(0, 1, 2); got != 1 {
		t.Errorf("Expected 1 above edge1, got %f", got)
	}
	if got := Smoothstep(0, 1, 0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Expected 0.5 at midpoint, got %f", got)
	}
	// Reversed edges invert the ramp
	if got := Smoothstep(1, 0, 0.25); got <= 0.5 {
		t.Errorf("Expected reversed ramp above 0.5, got %f", got)
	}
}

func TestRandUnit3(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		v := RandUnit3(rng)
		if math.Abs(V3FMag(v)-1) > 1e-9 {
			t.Fatalf("Expected unit vector, got magnitude %f", V3FMag(v))
		}
	}
}

func TestRandRangeBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := RandRange(rng, 3, 5)
		if v < 3 || v >= 5 {
			t.Fatalf("Value %f outside [3,5)", v)
		}
	}
}

func TestV2FRotate(t *testing.T) {
	v := V2FRotate(Vec2F{1, 0}, math.Pi/2)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-1) > 1e-9 {
		t.Errorf("Expected (0,1), got %+v", v)
	}
}
