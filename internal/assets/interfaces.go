package assets

type Provider interface {
	Lookup(name string) (Card, bool)
	// Missing lists the names that have no card, in input order.
	Missing(names []string) []string
}
