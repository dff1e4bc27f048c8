package markers

type BusinessObject interface {
	ToDisplayString() string
}
