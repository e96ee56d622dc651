package grading

type Result struct {
	Correct bool `json:"correct"`
	// Distance is the edit distance between the case-folded strings. It is
	// informational only and never changes Correct.
	Distance int `json:"distance"`
}
