package pharmacy

import "sync"

// Inventory is the in-memory drug stock, preserving seed order for display.
type Inventory struct {
	mu    sync.RWMutex
	drugs []Drug
}

// NewInventory creates an inventory from the given stock lines.
func NewInventory(drugs []Drug) *Inventory {
	inv := &Inventory{drugs: make([]Drug, len(drugs))}
	copy(inv.drugs, drugs)
	return inv
}

// SeedInventory returns the default facility formulary.
func SeedInventory() *Inventory {
	return NewInventory([]Drug{
		{Name: "Aspirin", Quantity: 100},
		{Name: "Ibuprofen", Quantity: 50},
		{Name: "Paracetamol", Quantity: 200},
		{Name: "Amoxicillin", Quantity: 75},
		{Name: "Lisinopril", Quantity: 30},
	})
}

// List returns a copy of all stock lines in inventory order.
func (inv *Inventory) List() []Drug {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	out := make([]Drug, len(inv.drugs))
	copy(out, inv.drugs)
	return out
}
