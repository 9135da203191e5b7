package order

// Size of a pizza. Values outside the three known sizes are stored as
// given and priced at the Medium base.
type Size string

const (
	Medium     Size = "Medium"
	Large      Size = "Large"
	ExtraLarge Size = "ExtraLarge"
)

const (
	mediumBase     = 120
	largeBase      = 200
	extraLargeBase = 300
	toppingPrice   = 30
)

// Snapshot is the finished order emitted by Build. It shares no mutable
// substructure with the assembler or with any other snapshot.
type Snapshot struct {
	Size     Size     `json:"size,omitempty"`
	Toppings []string `json:"toppings"`
	Notes    string   `json:"notes"`
	Price    int      `json:"price"`
}

// Clone returns a structurally identical copy with its own toppings slice,
// so mutating either side never affects the other.
func (s Snapshot) Clone() Snapshot {
	clone := s
	clone.Toppings = append([]string(nil), s.Toppings...)
	return clone
}

// Assembler accumulates one order at a time. Setters are chainable and
// accept any input; Build emits a snapshot and returns the assembler to
// its idle state.
type Assembler struct {
	size     Size
	toppings []string
	notes    string
	price    int
}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// Reset discards any in-progress order. Always safe to call.
func (a *Assembler) Reset() *Assembler {
	a.size = ""
	a.toppings = nil
	a.notes = ""
	a.price = 0
	return a
}

// SetSize records the size and adds its base price. The price contribution
// is additive on every call: setting a size twice charges both bases even
// though only the last size is kept.
func (a *Assembler) SetSize(size Size) *Assembler {
	a.size = size
	switch size {
	case ExtraLarge:
		a.price += extraLargeBase
	case Large:
		a.price += largeBase
	default:
		a.price += mediumBase
	}
	return a
}

// AddTopping appends the topping and adds its price. Duplicates are kept.
func (a *Assembler) AddTopping(name string) *Assembler {
	a.toppings = append(a.toppings, name)
	a.price += toppingPrice
	return a
}

// SetNotes overwrites the note text. No price effect.
func (a *Assembler) SetNotes(text string) *Assembler {
	a.notes = text
	return a
}

// Current returns an independent view of the in-progress order without
// ending it.
func (a *Assembler) Current() Snapshot {
	return Snapshot{
		Size:     a.size,
		Toppings: append([]string(nil), a.toppings...),
		Notes:    a.notes,
		Price:    a.price,
	}
}

// Build emits an independent snapshot of the current order and resets the
// assembler, so later use never mutates an already emitted snapshot.
func (a *Assembler) Build() Snapshot {
	snap := Snapshot{
		Size:     a.size,
		Toppings: append([]string(nil), a.toppings...),
		Notes:    a.notes,
		Price:    a.price,
	}
	a.Reset()
	return snap
}
