package models

// Attachment is a recorded file reference (name plus MIME type); the file
// body itself lives with the upload collaborator, not in the task.
type Attachment struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Task is a scheduled follow-up on a contact. Date and Time are kept as
// separate fields ("2006-01-02" and "15:04") and combined only for
// comparison. A task transitions once, irreversibly, to completed.
type Task struct {
	ID                     string       `json:"id"`
	ContactID              string       `json:"contact_id"`
	OwnerID                string       `json:"owner_id"`
	ContactName            string       `json:"contact_name,omitempty"`
	Title                  string       `json:"title"`
	Date                   string       `json:"date"`
	Time                   string       `json:"time"`
	Channel                string       `json:"channel"`
	Description            string       `json:"description"`
	IsCompleted            bool         `json:"is_completed"`
	FulfillmentDescription string       `json:"fulfillment_description,omitempty"`
	Attachments            []Attachment `json:"attachments,omitempty"`
}
