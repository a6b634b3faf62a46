package gridview

// ZoomBucket quantizes a continuous zoom factor into one of a fixed
// ordered set of cache buckets. Tiles are rendered and cached per
// bucket, so small continuous zoom changes (pinch gestures) keep
// hitting cached tiles instead of invalidating on every frame; the
// compositor scales the nearest-bucket tile until the gesture settles.
type ZoomBucket int

// Zoom buckets, ordered from farthest out to farthest in.
const (
	ZoomTenth   ZoomBucket = iota // 0.1
	ZoomQuarter                   // 0.25
	ZoomHalf                      // 0.5
	ZoomNormal                    // 1.0
	ZoomDouble                    // 2.0
	ZoomQuad                      // 4.0

	numZoomBuckets
)

// zoomFactors holds the scale factor of each bucket, index-aligned
// with the ZoomBucket constants.
var zoomFactors = [numZoomBuckets]float64{0.1, 0.25, 0.5, 1.0, 2.0, 4.0}

// Factor returns the bucket's scale factor.
// Out-of-range buckets clamp to the nearest valid one.
func (z ZoomBucket) Factor() float64 {
	return zoomFactors[clampInt(int(z), 0, int(numZoomBuckets)-1)]
}

// String returns the bucket's factor as a short label, e.g. "1x" or
// "0.25x".
func (z ZoomBucket) String() string {
	switch z {
	case ZoomTenth:
		return "0.1x"
	case ZoomQuarter:
		return "0.25x"
	case ZoomHalf:
		return "0.5x"
	case ZoomNormal:
		return "1x"
	case ZoomDouble:
		return "2x"
	case ZoomQuad:
		return "4x"
	default:
		return "invalid"
	}
}

// TileWorksheetExtent returns how much worksheet-space distance a
// fixed-size tile covers at this bucket. Lower buckets make each tile
// cover proportionally more of the worksheet.
func (z ZoomBucket) TileWorksheetExtent(tileSize int) float64 {
	return float64(tileSize) / z.Factor()
}

// ClassifyZoom maps a continuous zoom factor to the nearest bucket.
// The boundary between adjacent buckets is the midpoint of their
// factors; a zoom exactly on a midpoint classifies to the higher
// bucket. Zooms beyond the bucket set clamp to the first or last
// bucket.
func ClassifyZoom(zoom float64) ZoomBucket {
	for b := ZoomTenth; b < numZoomBuckets-1; b++ {
		mid := (zoomFactors[b] + zoomFactors[b+1]) / 2
		if zoom < mid {
			return b
		}
	}
	return numZoomBuckets - 1
}
