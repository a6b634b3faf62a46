package order

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestSetGetDelete(t *testing.T) {
	tr := New()

	if _, ok := tr.Get(5); ok {
		t.Fatal("Get(5) on empty tree reported ok")
	}

	tr.Set(5, 10)
	tr.Set(2, -4)
	tr.Set(9, 7)
	tr.Set(5, 12) // replace

	if got := tr.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if d, ok := tr.Get(5); !ok || d != 12 {
		t.Errorf("Get(5) = %v, %v, want 12, true", d, ok)
	}

	if !tr.Delete(2) {
		t.Error("Delete(2) = false, want true")
	}
	if tr.Delete(2) {
		t.Error("Delete(2) twice = true, want false")
	}
	if got := tr.Len(); got != 2 {
		t.Errorf("Len() after delete = %d, want 2", got)
	}
}

func TestSumBefore(t *testing.T) {
	tr := New()
	tr.Set(10, 5)
	tr.Set(20, -3)
	tr.Set(30, 8)

	tests := []struct {
		name string
		key  int
		want float64
	}{
		{"before all", 0, 0},
		{"at first key", 10, 0},
		{"past first key", 11, 5},
		{"at second key", 20, 5},
		{"past second key", 21, 2},
		{"past all", 100, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.SumBefore(tt.key); got != tt.want {
				t.Errorf("SumBefore(%d) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

// referenceSum recomputes a prefix sum naively from a map.
func referenceSum(m map[int]float64, key int) float64 {
	var sum float64
	for k, v := range m {
		if k < key {
			sum += v
		}
	}
	return sum
}

func TestSumBeforeRandomized(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	tr := New()
	ref := make(map[int]float64)

	for i := 0; i < 2000; i++ {
		key := rng.IntN(500)
		switch rng.IntN(3) {
		case 0, 1:
			delta := float64(rng.IntN(100)) - 20
			tr.Set(key, delta)
			ref[key] = delta
		case 2:
			got := tr.Delete(key)
			_, want := ref[key]
			if got != want {
				t.Fatalf("Delete(%d) = %v, want %v", key, got, want)
			}
			delete(ref, key)
		}
	}

	if tr.Len() != len(ref) {
		t.Fatalf("Len() = %d, want %d", tr.Len(), len(ref))
	}
	for key := 0; key <= 500; key += 7 {
		got := tr.SumBefore(key)
		want := referenceSum(ref, key)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("SumBefore(%d) = %v, want %v", key, got, want)
		}
	}
}

func TestSeekOffset(t *testing.T) {
	// scale 24, overrides: index 500 is 48 (delta 24), index 1000 is 12
	// (delta -12).
	tr := New()
	tr.Set(500, 24)
	tr.Set(1000, -12)

	tests := []struct {
		name       string
		offset     float64
		wantIndex  int
		wantPrefix float64
		wantOK     bool
	}{
		{"origin", 0, 0, 0, false},
		{"before first override", 11999, 0, 0, false},
		{"start of override 500", 12000, 500, 0, true},
		{"inside override 500", 12047.5, 500, 0, true},
		{"end of override 500", 12048, 0, 24, false},
		{"start of override 1000", 24024, 1000, 0, true},
		{"inside override 1000", 24035.9, 1000, 0, true},
		{"end of override 1000", 24036, 0, 12, false},
		{"negative offset", -5, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, prefix, ok := tr.SeekOffset(tt.offset, 24)
			if index != tt.wantIndex || prefix != tt.wantPrefix || ok != tt.wantOK {
				t.Errorf("SeekOffset(%v, 24) = %d, %v, %v, want %d, %v, %v",
					tt.offset, index, prefix, ok, tt.wantIndex, tt.wantPrefix, tt.wantOK)
			}
		})
	}
}

func TestAscend(t *testing.T) {
	tr := New()
	keys := []int{40, 10, 30, 20}
	for _, k := range keys {
		tr.Set(k, float64(k))
	}

	var got []int
	tr.Ascend(func(key int, delta float64) bool {
		got = append(got, key)
		return true
	})

	want := []int{10, 20, 30, 40}
	if len(got) != len(want) {
		t.Fatalf("Ascend visited %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Ascend order[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	// Early stop.
	var count int
	tr.Ascend(func(int, float64) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Errorf("Ascend with early stop visited %d keys, want 2", count)
	}
}
