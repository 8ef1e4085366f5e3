package domain

// ContextSnapshot holds environment data injected into the system prompt.
type ContextSnapshot struct {
	WorkingDir string
	Shell      string
	OS         string
	User       string
}
