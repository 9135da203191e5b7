package participant

import (
	"errors"
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name            string
		category        Category
		displayName     string
		wantName        string
		wantPermissions []string
		wantErr         bool
	}{
		{
			name:            "customer with name",
			category:        Customer,
			displayName:     "Ravi",
			wantName:        "Ravi",
			wantPermissions: []string{"order"},
		},
		{
			name:            "customer default name",
			category:        Customer,
			wantName:        "Anon Cust",
			wantPermissions: []string{"order"},
		},
		{
			name:            "delivery partner default name",
			category:        DeliveryPartner,
			wantName:        "Anon Rider",
			wantPermissions: []string{"deliver"},
		},
		{
			name:            "restaurant permissions",
			category:        Restaurant,
			displayName:     "Pizza Palace",
			wantName:        "Pizza Palace",
			wantPermissions: []string{"menu", "receive_orders"},
		},
		{
			name:        "unknown category",
			category:    "Alien",
			displayName: "Zorg",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.category, tt.displayName)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownCategory) {
					t.Fatalf("expected ErrUnknownCategory, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}
			if p.Category != tt.category {
				t.Errorf("category = %s, want %s", p.Category, tt.category)
			}
			if p.Name != tt.wantName {
				t.Errorf("name = %q, want %q", p.Name, tt.wantName)
			}
			if !reflect.DeepEqual(p.Permissions, tt.wantPermissions) {
				t.Errorf("permissions = %v, want %v", p.Permissions, tt.wantPermissions)
			}
		})
	}
}

func TestRestaurantDefaultName(t *testing.T) {
	p := NewRestaurant("")
	if p.Name != "Anon Resto" {
		t.Fatalf("name = %q, want %q", p.Name, "Anon Resto")
	}
}
