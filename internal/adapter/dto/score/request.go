package score

// ScoreRequest is the payload for scoring a spoken self-introduction.
// Duration is the length of the recording in seconds; zero means the
// duration is unknown and the speech rate check is skipped.
type ScoreRequest struct {
	Transcript string  `json:"transcript" validate:"required"`
	Duration   float64 `json:"duration" validate:"gte=0"`
}
