package response

// Envelope is the body of every JSON response. Exactly one of Data and Error
// is meaningful; Data is serialized even when nil so single-entity misses
// read as `"data": null`.
type Envelope struct {
	Data  any        `json:"data"`
	Error *ErrorBody `json:"error,omitempty"`
	Meta  Meta       `json:"meta"`
}

type ErrorBody struct {
	Code    string `json:"code"`              // e.g. "VALIDATION_FAILED"
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	Stack   string `json:"stack,omitempty"` // development only
}

type Meta struct {
	RequestID string `json:"request_id"`
}
