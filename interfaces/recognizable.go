package interfaces

// Recognizable is used as a constraint by logic helpers that work with
// identities. Business object interfaces should not embed it directly.
type Recognizable[K comparable] interface {
	Id() K
}
