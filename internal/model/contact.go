package model

import "strings"

// ContactSubmission is a message sent through the site's contact form.
// It is relayed by email and never stored.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (c ContactSubmission) Trimmed() ContactSubmission {
	return ContactSubmission{
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.TrimSpace(c.Email),
		Message: strings.TrimSpace(c.Message),
	}
}

// MissingFields lists the JSON names of the fields that are empty after
// trimming, in name, email, message order.
func (c ContactSubmission) MissingFields() []string {
	t := c.Trimmed()
	var missing []string
	if t.Name == "" {
		missing = append(missing, "name")
	}
	if t.Email == "" {
		missing = append(missing, "email")
	}
	if t.Message == "" {
		missing = append(missing, "message")
	}
	return missing
}
