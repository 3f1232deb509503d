package models

// Student is the identity derived from one input row.
type Student struct {
	// ID is the student identifier. Never empty for emitted students.
	ID string `json:"id"`
	// FirstName is the student's first name.
	FirstName string `json:"first_name"`
	// LastName is the student's last name.
	LastName string `json:"last_name"`
	// Row is the source row index (1-based).
	Row int `json:"row"`
}

// Roles names the columns holding student identity.
type Roles struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Labels returns the identity column labels.
func (r Roles) Labels() []string {
	return []string{r.ID, r.FirstName, r.LastName}
}

// IsIdentity reports whether label is one of the identity columns.
func (r Roles) IsIdentity(label string) bool {
	return label == r.ID || label == r.FirstName || label == r.LastName
}
