package game

import "testing"

func TestTransformLocation_OutIsFixed(t *testing.T) {
	for _, trans := range Transformers {
		if got := TransformLocation(trans, Out); got != Out {
			t.Errorf("TransformLocation(%v, Out) = %v, want Out", trans, got)
		}
	}
}

func TestTransformLocation_Rotate90(t *testing.T) {
	tests := []struct {
		loc, want Location
	}{
		{NW, NE},
		{N, E},
		{NE, SE},
		{W, N},
		{Center, Center},
		{E, S},
		{SW, NW},
		{S, W},
		{SE, SW},
	}
	for _, tt := range tests {
		if got := TransformLocation(Rotate90, tt.loc); got != tt.want {
			t.Errorf("TransformLocation(Rotate90, %v) = %v, want %v", tt.loc, got, tt.want)
		}
	}
}

func TestTransformLocation_Invalid(t *testing.T) {
	if got := TransformLocation(TransformerInvalid, NW); got != LocationInvalid {
		t.Errorf("TransformLocation(TransformerInvalid, NW) = %v, want LocationInvalid", got)
	}
	if got := TransformLocation(Rotate90, LocationInvalid); got != LocationInvalid {
		t.Errorf("TransformLocation(Rotate90, LocationInvalid) = %v, want LocationInvalid", got)
	}
}

func TestTransformer_Invert(t *testing.T) {
	for _, trans := range Transformers {
		inv := trans.Invert()
		for _, loc := range Locations {
			if got := TransformLocation(inv, TransformLocation(trans, loc)); got != loc {
				t.Errorf("invert(%v) applied after %v maps %v to %v", trans, trans, loc, got)
			}
		}
	}
}

func TestTransformer_Bijective(t *testing.T) {
	for _, trans := range Transformers {
		seen := make(map[Location]bool)
		for _, loc := range Locations {
			seen[TransformLocation(trans, loc)] = true
		}
		if len(seen) != LocationCount {
			t.Errorf("%v maps %d locations onto %d", trans, LocationCount, len(seen))
		}
	}
}
