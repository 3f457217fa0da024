package touchstroke

import "fmt"

// Contact is one finger or pointer currently touching the surface.
//
// ID is assigned by the host platform and stays stable for the lifetime of
// a single touch. X and Y are the last known surface-relative coordinates.
type Contact struct {
	ID int
	X  float64
	Y  float64
}

// NewContact builds a Contact from the three fields the tracker needs.
// Host adapters use it to copy out of richer platform touch records.
func NewContact(id int, x, y float64) Contact {
	return Contact{ID: id, X: x, Y: y}
}

// String implements fmt.Stringer.
func (c Contact) String() string {
	return fmt.Sprintf("Contact(%d @ %g,%g)", c.ID, c.X, c.Y)
}
