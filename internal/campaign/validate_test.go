package campaign

import (
	"reflect"
	"testing"
)

func validCampaign() Campaign {
	return Campaign{
		JobTitle:       "Backend Engineer",
		JobDescription: "Go services",
		CompanyName:    "Acme",
		Recipients:     []Recipient{{ID: "r-1", Name: "Ada", Email: "ada@example.com"}},
	}
}

func TestValidEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"a@b.co", true},
		{"first.last@sub.example.org", true},
		{"", false},
		{"a@b", false},
		{"a.com", false},
		{"a@b.", false},
		{"a@@b.co", false},
		{"a b@c.de", false},
		{" a@b.co", false},
		{"a@b .co", false},
		{"a\u00a0@b.co", false},
		{"a@b\u2028.co", false},
		{"a@b\ufeff.co", false},
		{"a@b.co\u3000", false},
		{"a\u0085@b.co", true},
	}
	for _, tc := range cases {
		if got := ValidEmail(tc.in); got != tc.want {
			t.Errorf("ValidEmail(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidate_Valid(t *testing.T) {
	r := Validate(validCampaign())
	if !r.Valid() {
		t.Fatalf("expected valid, got %+v", r)
	}
	if r.Recipients != nil {
		t.Fatalf("recipients key present: %+v", r.Recipients)
	}
}

func TestValidate_OnlyJobTitle(t *testing.T) {
	c := validCampaign()
	c.JobTitle = "   "
	got := Validate(c)
	want := Report{JobTitle: MsgJobTitleRequired}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %+v, got %+v", want, got)
	}
}

func TestValidate_AllRulesEvaluated(t *testing.T) {
	c := Campaign{Recipients: []Recipient{
		{ID: "r-1"},
		{ID: "r-2", Name: "Bob", Email: "bob@example"},
		{ID: "r-3", Name: "Cy", Email: "cy@example.com"},
		{ID: "r-4", Name: "\t", Email: "d@e.fg"},
	}}
	got := Validate(c)
	want := Report{
		JobTitle:       MsgJobTitleRequired,
		JobDescription: MsgJobDescriptionRequired,
		CompanyName:    MsgCompanyNameRequired,
		Recipients: map[string]RecipientErrors{
			"r-1": {Name: MsgNameRequired, Email: MsgEmailRequired},
			"r-2": {Email: MsgEmailInvalid},
			"r-4": {Name: MsgNameRequired},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %+v, got %+v", want, got)
	}
	if got.Valid() {
		t.Fatal("report with errors reported valid")
	}
}

func TestValidate_Pure(t *testing.T) {
	c := Campaign{Recipients: []Recipient{{ID: "r-1", Email: "x"}}}
	a, b := Validate(c), Validate(c)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("validate not deterministic: %+v vs %+v", a, b)
	}
	if c.Recipients[0].Email != "x" {
		t.Fatal("validate mutated campaign")
	}
}

func TestValidate_UnicodeWhitespace(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		blank bool
	}{
		{"nbsp", "\u00a0", true},
		{"line separator", "\u2028", true},
		{"bom", "\ufeff", true},
		{"ideographic space", " \u3000\t", true},
		{"next line", "\u0085", false},
		{"padded text", "\ufeffAda\u00a0", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validCampaign()
			c.JobTitle = tc.in
			c.Recipients[0].Name = tc.in
			c.Recipients[0].Email = tc.in
			r := Validate(c)

			if got := r.JobTitle == MsgJobTitleRequired; got != tc.blank {
				t.Errorf("job title blank=%v, want %v", got, tc.blank)
			}
			e := r.ForRecipient("r-1")
			if got := e.Name == MsgNameRequired; got != tc.blank {
				t.Errorf("name blank=%v, want %v", got, tc.blank)
			}
			wantEmail := MsgEmailInvalid
			if tc.blank {
				wantEmail = MsgEmailRequired
			}
			if e.Email != wantEmail {
				t.Errorf("email error %q, want %q", e.Email, wantEmail)
			}
		})
	}
}
