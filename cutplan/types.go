package cutplan

// BeatType classifies the perceived strength of a detected beat
type BeatType string

const (
	BeatWeak   BeatType = "weak"
	BeatMedium BeatType = "medium"
	BeatStrong BeatType = "strong"
)

// BeatMarker is a single detected audio beat, produced upstream by a beat
// classifier. Markers arrive ordered ascending by Time and are never mutated
// by this package.
type BeatMarker struct {
	Time      float64  `json:"time"`      // seconds from track start
	Intensity float64  `json:"intensity"` // >= 0, typically 0-1
	Type      BeatType `json:"type"`
}

// MeasureInfo is an inferred downbeat position on the track's measure grid.
// Derived per invocation, never persisted.
type MeasureInfo struct {
	StartTime  float64 `json:"start_time"`
	BPM        float64 `json:"bpm"`
	Confidence float64 `json:"confidence"` // (0, 1]
}

// DropMarker is a strong beat that follows a stretch of relative silence
// among strong beats
type DropMarker struct {
	BeatMarker
	SilenceDuration float64 `json:"silence_duration"` // gap to the previous strong beat
}

// CutReason records which rule produced a candidate
type CutReason string

const (
	ReasonDrop         CutReason = "drop"
	ReasonMeasureStart CutReason = "measure_start"
	ReasonMeasureMid   CutReason = "measure_mid"
	ReasonStrongBeat   CutReason = "strong_beat"
)

// Candidate is a scored cut position considered during one generation call.
// Time already includes the per-category lead offset.
type Candidate struct {
	Time      float64
	Intensity float64
	Type      BeatType
	Priority  float64 // 0-100
	Reason    CutReason
}

// CutMarker is the engine's output unit. Ownership transfers to the caller
// on return; the engine never touches a CutMarker afterwards.
type CutMarker struct {
	ID       string  `json:"id"`
	Time     float64 `json:"time"`
	Color    string  `json:"color"`
	Duration float64 `json:"duration"`
}
