package model

// Scope carries caller identity through the call chain.
type Scope struct {
	UserID    string
	RequestID string
}
