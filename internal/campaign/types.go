package campaign

import (
	"github.com/harshmriduhash/Cold-Emailer/pkg/ids"
	"github.com/harshmriduhash/Cold-Emailer/pkg/model"
)

// Field names a job-level input of the campaign.
type Field string

const (
	FieldJobTitle       Field = "jobTitle"
	FieldJobDescription Field = "jobDescription"
	FieldCompanyName    Field = "companyName"
)

// RecipientField names an input of a single recipient.
type RecipientField string

const (
	RecipientName  RecipientField = "name"
	RecipientEmail RecipientField = "email"
)

type Recipient struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Campaign is an immutable snapshot of the composer form. Edits in edit.go
// return a new Campaign and never touch the receiver's slice.
type Campaign struct {
	JobTitle       string      `json:"jobTitle"`
	JobDescription string      `json:"jobDescription"`
	CompanyName    string      `json:"companyName"`
	Recipients     []Recipient `json:"recipients"`
}

// New returns a blank campaign holding exactly one blank recipient.
func New(gen ids.Generator) Campaign {
	return Campaign{Recipients: []Recipient{{ID: gen.Next()}}}
}

func ParseField(s string) (Field, bool) {
	switch f := Field(s); f {
	case FieldJobTitle, FieldJobDescription, FieldCompanyName:
		return f, true
	}
	return "", false
}

func ParseRecipientField(s string) (RecipientField, bool) {
	switch f := RecipientField(s); f {
	case RecipientName, RecipientEmail:
		return f, true
	}
	return "", false
}

// Payload converts the snapshot to the dispatch wire format, keeping
// recipient order.
func (c Campaign) Payload() model.Payload {
	people := make([]model.Person, len(c.Recipients))
	for i, r := range c.Recipients {
		people[i] = model.Person{ID: r.ID, Name: r.Name, Email: r.Email}
	}
	return model.Payload{
		JobTitle:       c.JobTitle,
		JobDescription: c.JobDescription,
		CompanyName:    c.CompanyName,
		People:         people,
	}
}

type FieldValueReq struct {
	Value *string `json:"value" binding:"required"`
}

type UpdateRecipientReq struct {
	Field string  `json:"field" binding:"required,oneof=name email"`
	Value *string `json:"value" binding:"required"`
}
