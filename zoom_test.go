package gridview

import "testing"

func TestClassifyZoom(t *testing.T) {
	tests := []struct {
		name string
		zoom float64
		want ZoomBucket
	}{
		{"exact tenth", 0.1, ZoomTenth},
		{"below bucket set", 0.01, ZoomTenth},
		{"just under tenth/quarter midpoint", 0.174, ZoomTenth},
		{"tenth/quarter midpoint", 0.175, ZoomQuarter},
		{"exact quarter", 0.25, ZoomQuarter},
		{"pinch drift near half", 0.52, ZoomHalf},
		{"just under half/normal midpoint", 0.74, ZoomHalf},
		{"half/normal midpoint", 0.75, ZoomNormal},
		{"exact normal", 1.0, ZoomNormal},
		{"pinch drift near normal", 1.2, ZoomNormal},
		{"normal/double midpoint", 1.5, ZoomDouble},
		{"exact double", 2.0, ZoomDouble},
		{"double/quad midpoint", 3.0, ZoomQuad},
		{"exact quad", 4.0, ZoomQuad},
		{"beyond bucket set", 10.0, ZoomQuad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyZoom(tt.zoom); got != tt.want {
				t.Errorf("ClassifyZoom(%v) = %v, want %v", tt.zoom, got, tt.want)
			}
		})
	}
}

func TestZoomBucketFactor(t *testing.T) {
	tests := []struct {
		bucket ZoomBucket
		want   float64
	}{
		{ZoomTenth, 0.1},
		{ZoomQuarter, 0.25},
		{ZoomHalf, 0.5},
		{ZoomNormal, 1.0},
		{ZoomDouble, 2.0},
		{ZoomQuad, 4.0},
	}
	for _, tt := range tests {
		t.Run(tt.bucket.String(), func(t *testing.T) {
			if got := tt.bucket.Factor(); got != tt.want {
				t.Errorf("Factor() = %v, want %v", got, tt.want)
			}
		})
	}
}

// A 256px tile at the 0.5 bucket covers 512 worksheet units.
func TestTileWorksheetExtent(t *testing.T) {
	tests := []struct {
		name     string
		bucket   ZoomBucket
		tileSize int
		want     float64
	}{
		{"half zoom doubles extent", ZoomHalf, 256, 512},
		{"normal zoom is identity", ZoomNormal, 256, 256},
		{"quad zoom shrinks extent", ZoomQuad, 256, 64},
		{"tenth zoom", ZoomTenth, 256, 2560},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bucket.TileWorksheetExtent(tt.tileSize); got != tt.want {
				t.Errorf("TileWorksheetExtent(%d) = %v, want %v", tt.tileSize, got, tt.want)
			}
		})
	}
}
