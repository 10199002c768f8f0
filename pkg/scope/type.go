package scope

// Payload is the verified content of a bearer token.
type Payload struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Subject  string `json:"sub"`
	Token    string `json:"-"`
}

type payloadCtxKey struct{}
type scopeCtxKey struct{}
