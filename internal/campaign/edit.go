package campaign

import "github.com/harshmriduhash/Cold-Emailer/pkg/ids"

// AddRecipient appends a blank recipient with a fresh id.
func AddRecipient(c Campaign, gen ids.Generator) Campaign {
	out := make([]Recipient, len(c.Recipients), len(c.Recipients)+1)
	copy(out, c.Recipients)
	c.Recipients = append(out, Recipient{ID: gen.Next()})
	return c
}

// RemoveRecipient drops the recipient with the given id. The last remaining
// recipient is never removed.
func RemoveRecipient(c Campaign, id string) Campaign {
	if len(c.Recipients) <= 1 {
		return c
	}
	idx := indexOf(c.Recipients, id)
	if idx < 0 {
		return c
	}
	out := make([]Recipient, 0, len(c.Recipients)-1)
	out = append(out, c.Recipients[:idx]...)
	c.Recipients = append(out, c.Recipients[idx+1:]...)
	return c
}

// UpdateRecipient sets one field of the matching recipient.
func UpdateRecipient(c Campaign, id string, field RecipientField, value string) Campaign {
	idx := indexOf(c.Recipients, id)
	if idx < 0 {
		return c
	}
	r := c.Recipients[idx]
	switch field {
	case RecipientName:
		r.Name = value
	case RecipientEmail:
		r.Email = value
	default:
		return c
	}
	out := make([]Recipient, len(c.Recipients))
	copy(out, c.Recipients)
	out[idx] = r
	c.Recipients = out
	return c
}

func SetField(c Campaign, field Field, value string) Campaign {
	switch field {
	case FieldJobTitle:
		c.JobTitle = value
	case FieldJobDescription:
		c.JobDescription = value
	case FieldCompanyName:
		c.CompanyName = value
	}
	return c
}

// HasRecipient reports whether id names a recipient of c.
func (c Campaign) HasRecipient(id string) bool { return indexOf(c.Recipients, id) >= 0 }

func indexOf(rs []Recipient, id string) int {
	for i, r := range rs {
		if r.ID == id {
			return i
		}
	}
	return -1
}
