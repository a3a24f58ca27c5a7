package models

// PartyType distinguishes the two sides of the contact directory.
type PartyType string

const (
	PartyCustomer PartyType = "customer"
	PartySupplier PartyType = "supplier"
)

// Valid reports whether the value is one of the known party types.
func (p PartyType) Valid() bool {
	return p == PartyCustomer || p == PartySupplier
}

// Party is a customer or supplier contact record, keyed by (name, type).
type Party struct {
	Name string    `json:"name"`
	Type PartyType `json:"type"`
}

// PartyCreate is the POST /api/customers-suppliers request body.
type PartyCreate struct {
	Name string    `json:"name" binding:"required"`
	Type PartyType `json:"type" binding:"required"`
}
