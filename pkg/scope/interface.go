package scope

// Manager verifies bearer tokens and exposes their payload.
type Manager interface {
	Verify(token string) (Payload, error)
}
