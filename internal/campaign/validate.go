package campaign

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const (
	MsgJobTitleRequired       = "Job title is required"
	MsgJobDescriptionRequired = "Job description is required"
	MsgCompanyNameRequired    = "Company name is required"
	MsgNameRequired           = "Name is required"
	MsgEmailRequired          = "Email is required"
	MsgEmailInvalid           = "Valid email is required"
)

// jsSpace is the whitespace set of ECMAScript \s and String.prototype.trim.
// It differs from unicode.IsSpace: U+FEFF is in, U+0085 is out.
var jsSpace = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0009, Hi: 0x000d, Stride: 1},
		{Lo: 0x0020, Hi: 0x0020, Stride: 1},
		{Lo: 0x00a0, Hi: 0x00a0, Stride: 1},
		{Lo: 0x1680, Hi: 0x1680, Stride: 1},
		{Lo: 0x2000, Hi: 0x200a, Stride: 1},
		{Lo: 0x2028, Hi: 0x2029, Stride: 1},
		{Lo: 0x202f, Hi: 0x202f, Stride: 1},
		{Lo: 0x205f, Hi: 0x205f, Stride: 1},
		{Lo: 0x3000, Hi: 0x3000, Stride: 1},
		{Lo: 0xfeff, Hi: 0xfeff, Stride: 1},
	},
	LatinOffset: 3,
}

func isSpace(r rune) bool { return unicode.Is(jsSpace, r) }

// spaceClass renders jsSpace as the body of a regexp character class.
func spaceClass() string {
	var b strings.Builder
	for _, r := range jsSpace.R16 {
		fmt.Fprintf(&b, `\x{%x}`, r.Lo)
		if r.Hi != r.Lo {
			fmt.Fprintf(&b, `-\x{%x}`, r.Hi)
		}
	}
	return b.String()
}

var emailRe = func() *regexp.Regexp {
	part := `[^@` + spaceClass() + `]+`
	return regexp.MustCompile(`^` + part + `@` + part + `\.` + part + `$`)
}()

// ValidEmail is a permissive syntactic check, not RFC 5322.
func ValidEmail(s string) bool { return emailRe.MatchString(s) }

// Validate checks every rule independently and never short-circuits.
func Validate(c Campaign) Report {
	var r Report
	if blank(c.JobTitle) {
		r.JobTitle = MsgJobTitleRequired
	}
	if blank(c.JobDescription) {
		r.JobDescription = MsgJobDescriptionRequired
	}
	if blank(c.CompanyName) {
		r.CompanyName = MsgCompanyNameRequired
	}

	for _, p := range c.Recipients {
		var e RecipientErrors
		if blank(p.Name) {
			e.Name = MsgNameRequired
		}
		switch {
		case blank(p.Email):
			e.Email = MsgEmailRequired
		case !ValidEmail(p.Email):
			e.Email = MsgEmailInvalid
		}
		if e.empty() {
			continue
		}
		if r.Recipients == nil {
			r.Recipients = make(map[string]RecipientErrors)
		}
		r.Recipients[p.ID] = e
	}
	return r
}

func blank(s string) bool { return strings.TrimFunc(s, isSpace) == "" }
