package entities

// Address is an immutable postal value object.
//
// It is embedded by value wherever it appears (client records, order client
// snapshots, invoices), so later changes to the source record never leak into
// an already-created aggregate.
type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
}
