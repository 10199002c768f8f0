package visualization

// Config holds the remote resource settings.
type Config struct {
	BaseURL       string
	MaxImageBytes int64
}
