package model

const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// Scope is the verified identity of the caller.
type Scope struct {
	UserID      string
	Username    string
	Role        string
	AccessToken string
}

func (s Scope) IsDoctor() bool { return s.Role == RoleDoctor }

func (s Scope) IsPatient() bool { return s.Role == RolePatient }
