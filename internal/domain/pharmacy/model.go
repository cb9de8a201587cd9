// Package pharmacy tracks the facility drug inventory and answers
// natural-language stock questions for the front desk.
package pharmacy

// Drug is one inventory line.
type Drug struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
