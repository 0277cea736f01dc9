// File: models/contact.go
package models

import "time"

// ContactPayload is the JSON body accepted by the contact endpoint.
type ContactPayload struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	ProjectType   string `json:"projectType"`
	PreferredDate string `json:"preferredDate"`
	SongLink      string `json:"songLink"`
	Notes         string `json:"notes"`
	Estimate      string `json:"estimate"` // already formatted summary text
}

// ContactSubmission is one stored row of the append-only clients table.
type ContactSubmission struct {
	ID            int64     `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Email         string    `bson:"email" json:"email"`
	ProjectType   string    `bson:"projectType" json:"projectType"`
	PreferredDate string    `bson:"preferredDate" json:"preferredDate"`
	SongLink      string    `bson:"songLink" json:"songLink"`
	Notes         string    `bson:"notes" json:"notes"`
	Estimate      string    `bson:"estimate" json:"estimate"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
