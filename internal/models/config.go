package models

// ExamplePair is one few-shot exemplar: combining FromStr yields ResultStr.
type ExamplePair struct {
	FromStr   string `json:"from_str"`
	ResultStr string `json:"result_str"`
}

// ExampleEntry is an ExamplePair held in an editor's working list. ID is an
// opaque handle assigned when the entry enters the list.
type ExampleEntry struct {
	ID string `json:"id"`
	ExamplePair
}

// ConfigRecord is the full configuration the settings editor reads and writes.
type ConfigRecord struct {
	Model     string        `json:"model"`
	BaseURL   string        `json:"base_url"`
	SystemMsg string        `json:"system_msg"`
	Examples  []ExamplePair `json:"examples"`
}

// Clone returns a deep copy so callers can mutate examples freely.
func (r ConfigRecord) Clone() ConfigRecord {
	out := r
	if r.Examples != nil {
		out.Examples = make([]ExamplePair, len(r.Examples))
		copy(out.Examples, r.Examples)
	}
	return out
}
