package assets

// Card is the drawable stand-in for an element image.
type Card struct {
	Name         string
	Symbol       string
	AtomicNumber int
	AtomicMass   float64
	Category     string
}
