package models

import "time"

// ContactForm is the payload posted from the contact page
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// ContactSubmission is an accepted, stored ContactForm
type ContactSubmission struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message"`
	RemoteAddr string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
