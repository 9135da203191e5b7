package participant

import (
	"errors"
	"fmt"
)

// Category identifies the role a participant plays in the order flow.
type Category string

const (
	Customer        Category = "Customer"
	DeliveryPartner Category = "DeliveryPartner"
	Restaurant      Category = "Restaurant"
)

// ErrUnknownCategory is returned when a category tag is not one of the
// three known roles. No participant is produced in that case.
var ErrUnknownCategory = errors.New("unknown participant category")

// Participant is a role-tagged record. Immutable after creation.
type Participant struct {
	Category    Category `json:"category"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// New dispatches on the category tag. An empty name falls back to the
// role-specific default.
func New(category Category, name string) (Participant, error) {
	switch category {
	case Customer:
		return NewCustomer(name), nil
	case DeliveryPartner:
		return NewDeliveryPartner(name), nil
	case Restaurant:
		return NewRestaurant(name), nil
	default:
		return Participant{}, fmt.Errorf("%w: %q", ErrUnknownCategory, string(category))
	}
}

func NewCustomer(name string) Participant {
	return Participant{
		Category:    Customer,
		Name:        orDefault(name, "Anon Cust"),
		Permissions: []string{"order"},
	}
}

func NewDeliveryPartner(name string) Participant {
	return Participant{
		Category:    DeliveryPartner,
		Name:        orDefault(name, "Anon Rider"),
		Permissions: []string{"deliver"},
	}
}

func NewRestaurant(name string) Participant {
	return Participant{
		Category:    Restaurant,
		Name:        orDefault(name, "Anon Resto"),
		Permissions: []string{"menu", "receive_orders"},
	}
}

func orDefault(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
