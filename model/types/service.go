package types

// Service is an action service exposing named methods
type Service interface {
	Name() string
	Methods() Signatures
	Method(name string) (Executable, error)
}
