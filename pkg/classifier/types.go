package classifier

// PredictRequest is the body for POST /classify.
type PredictRequest struct {
	Text string `json:"text"`
}

// Prediction is the classifier service response. Intent is empty when the
// model declined to label the utterance.
type Prediction struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}
