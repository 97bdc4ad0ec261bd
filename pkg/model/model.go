package model

// Payload is the JSON body posted to the dispatch endpoint.
type Payload struct {
	JobTitle       string   `json:"jobTitle"`
	JobDescription string   `json:"jobDescription"`
	CompanyName    string   `json:"companyName"`
	People         []Person `json:"people"`
}

type Person struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
