package cutplan

// DropDetector flags strong beats preceded by an unusually long gap since
// the previous strong beat. A drop after relative silence is the single
// strongest visual cue a cut can land on.
type DropDetector struct {
	params DropParams
}

// NewDropDetector creates a drop detector with the given parameters
func NewDropDetector(params DropParams) *DropDetector {
	return &DropDetector{params: params}
}

// DetectDrops scans the strong beats pairwise and returns the drops in time
// order. Stateless beyond the previous beat, O(n) in strong-beat count.
func (dd *DropDetector) DetectDrops(beats []BeatMarker) []DropMarker {
	strong := filterStrong(beats)

	drops := make([]DropMarker, 0)
	for i := 1; i < len(strong); i++ {
		silence := strong[i].Time - strong[i-1].Time
		if silence >= dd.params.MinSilence && strong[i].Intensity > dd.params.MinIntensity {
			drops = append(drops, DropMarker{
				BeatMarker:      strong[i],
				SilenceDuration: silence,
			})
		}
	}

	return drops
}
