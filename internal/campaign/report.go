package campaign

// RecipientErrors holds the messages for one recipient. Empty means no error.
type RecipientErrors struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

func (e RecipientErrors) empty() bool { return e.Name == "" && e.Email == "" }

// Report is the result of a validation pass. It is treated as a value:
// clearing returns a new Report and leaves the receiver's map alone.
type Report struct {
	JobTitle       string                     `json:"jobTitle,omitempty"`
	JobDescription string                     `json:"jobDescription,omitempty"`
	CompanyName    string                     `json:"companyName,omitempty"`
	Recipients     map[string]RecipientErrors `json:"recipients,omitempty"`
}

// Valid reports whether no field carries a message.
func (r Report) Valid() bool {
	if r.JobTitle != "" || r.JobDescription != "" || r.CompanyName != "" {
		return false
	}
	for _, e := range r.Recipients {
		if !e.empty() {
			return false
		}
	}
	return true
}

// ClearField removes the message of a job field, if any.
func (r Report) ClearField(field Field) Report {
	switch field {
	case FieldJobTitle:
		r.JobTitle = ""
	case FieldJobDescription:
		r.JobDescription = ""
	case FieldCompanyName:
		r.CompanyName = ""
	}
	return r
}

// ClearRecipientField removes the message of one recipient field.
// Entries left empty are pruned, and so is an empty map.
func (r Report) ClearRecipientField(id string, field RecipientField) Report {
	e, ok := r.Recipients[id]
	if !ok {
		return r
	}
	switch field {
	case RecipientName:
		e.Name = ""
	case RecipientEmail:
		e.Email = ""
	default:
		return r
	}

	out := make(map[string]RecipientErrors, len(r.Recipients))
	for k, v := range r.Recipients {
		if k != id {
			out[k] = v
		}
	}
	if !e.empty() {
		out[id] = e
	}
	if len(out) == 0 {
		out = nil
	}
	r.Recipients = out
	return r
}

// ForRecipient returns the messages recorded for id.
func (r Report) ForRecipient(id string) RecipientErrors { return r.Recipients[id] }
