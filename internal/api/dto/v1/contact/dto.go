package contact

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ContactResponse represents the response after submitting a contact form
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
