package domain

// Region is a region the tenancy is subscribed to.
type Region struct {
	Name       string
	HomeRegion bool
}

// Compartment is a tenancy-scoped isolation boundary, sourced verbatim
// from the identity service.
type Compartment struct {
	ID    string
	Name  string
	State string
}
