package safari

import "testing"

func TestMulberry32KnownSequence(t *testing.T) {
	tests := []struct {
		seed     uint32
		expected []uint32
	}{
		{0, []uint32{1144304738, 1416247, 958946056, 627933444}},
		{1, []uint32{2693262067, 11749833, 2265367787, 4213581821}},
		{12345, []uint32{4207900869, 1317490944, 2079646450, 3513001552}},
	}

	for _, tc := range tests {
		rng := NewMulberry32(tc.seed)
		for i, want := range tc.expected {
			if got := rng.Uint32(); got != want {
				t.Errorf("seed %d call %d: got %d, expected %d", tc.seed, i, got, want)
			}
		}
	}
}

func TestMulberry32FloatRange(t *testing.T) {
	rng := NewMulberry32(99)
	for i := 0; i < 10000; i++ {
		v := rng.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v out of [0, 1)", v)
		}
	}
}

func TestMulberry32Repeatable(t *testing.T) {
	a := NewMulberry32(777)
	b := NewMulberry32(777)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("streams diverged at call %d", i)
		}
	}
}

func TestMulberry32Intn(t *testing.T) {
	rng := NewMulberry32(5)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := rng.Intn(4)
		if v < 0 || v >= 4 {
			t.Fatalf("Intn(4) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 4 {
		t.Errorf("Intn(4) only produced %v", seen)
	}
	if rng.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
}
