package interfaces

// BusinessObject is the capability tag every business object interface
// embeds, preferably alone. Business object interfaces must not embed each
// other; shared properties go in an unexported interface that does not embed
// BusinessObject. The logic working on a capability lives in free functions
// next to the interface, and the interface only declares what those
// functions need.
type BusinessObject interface {
	// ToDisplayString renders the value for people to read. It has no side
	// effects and returns the same text for an unmodified value.
	ToDisplayString() string
}
