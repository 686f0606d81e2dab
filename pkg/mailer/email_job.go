package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Template selects an embedded template; Data feeds it.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}
