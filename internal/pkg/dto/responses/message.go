package responses

import "medicare-frontend/internal/app/models"

// Message is the acknowledgement body of writes that return no record.
type Message struct {
	Message  string    `json:"message"`
	ID       models.ID `json:"id,omitempty"`
	Username string    `json:"username,omitempty"`
}
