package domain

// Counselor is an HR counselor. Its identifier is caller-supplied.
type Counselor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Company is an insurance company downstream of the notification relay.
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
