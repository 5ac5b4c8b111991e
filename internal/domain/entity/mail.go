package entity

// MailJob is an outgoing email queued for delivery.
type MailJob struct {
	RequestID string `json:"request_id,omitempty"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Text      string `json:"text"`
	HTML      string `json:"html,omitempty"`
}
