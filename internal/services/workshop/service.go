package workshop

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"pizza-workshop/internal/hub"
	"pizza-workshop/internal/order"
	"pizza-workshop/internal/participant"
	"pizza-workshop/internal/payment"
	"pizza-workshop/internal/settings"
)

// ErrNoOrderBuilt is returned when a clone is requested before any order
// has been built in this session.
var ErrNoOrderBuilt = errors.New("no order built yet")

// Service runs the toolkit for the demo page. It owns the session state
// the page relies on between clicks: the one shared settings instance, the
// single assembler, the last built snapshot and the last clone. A mutex
// serializes actions so each one runs to completion before the next.
type Service struct {
	mu        sync.Mutex
	settings  *settings.Settings
	assembler *order.Assembler
	lastBuilt *order.Snapshot
	lastClone *order.Snapshot
	hub       *hub.Hub
}

func NewService(shared *settings.Settings, h *hub.Hub) *Service {
	return &Service{
		settings:  shared,
		assembler: order.NewAssembler(),
		hub:       h,
	}
}

// announce mirrors a result line to every connected page.
func (s *Service) announce(line string) {
	if s.hub != nil {
		s.hub.Broadcast(line)
	}
}

// DescribeSettings reports the shared settings.
func (s *Service) DescribeSettings() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := s.settings.Describe()
	s.announce(line)
	return line
}

// ToggleCurrency flips the shared currency and reports the new settings.
func (s *Service) ToggleCurrency() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.ToggleCurrency()
	line := s.settings.Describe()
	s.announce(line)
	return line
}

// CreateParticipant builds a role-tagged participant record.
func (s *Service) CreateParticipant(category, name string) (participant.Participant, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := participant.New(participant.Category(category), name)
	if err != nil {
		return participant.Participant{}, "", err
	}

	line := fmt.Sprintf("%s %q can: %s", p.Category, p.Name, strings.Join(p.Permissions, ", "))
	s.announce(line)
	return p, line, nil
}

// Charge constructs a payment method and returns its receipt line.
func (s *Service) Charge(family string, opts payment.Options, amount int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := payment.New(payment.Family(family), opts)
	if err != nil {
		return "", err
	}

	line := m.Charge(amount)
	s.announce(line)
	return line, nil
}

// SetSize records the order size and reports the in-progress state.
func (s *Service) SetSize(size string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assembler.SetSize(order.Size(size))
	return s.progress(fmt.Sprintf("Size set to %s", size))
}

// AddTopping appends a topping and reports the in-progress state.
func (s *Service) AddTopping(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assembler.AddTopping(name)
	return s.progress(fmt.Sprintf("Added topping %s", name))
}

// SetNotes overwrites the order notes and reports the in-progress state.
func (s *Service) SetNotes(text string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assembler.SetNotes(text)
	return s.progress("Notes updated")
}

// BuildOrder emits the snapshot, retains it for the session, and resets
// the assembler.
func (s *Service) BuildOrder() order.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.assembler.Build()
	s.lastBuilt = &snap
	s.announce(describeOrder("Built order", snap))
	return snap
}

// ResetOrder discards the in-progress order.
func (s *Service) ResetOrder() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assembler.Reset()
	line := "Order reset"
	s.announce(line)
	return line
}

// CloneOrder copies the last built snapshot and retains the clone.
func (s *Service) CloneOrder() (order.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastBuilt == nil {
		return order.Snapshot{}, ErrNoOrderBuilt
	}

	clone := s.lastBuilt.Clone()
	s.lastClone = &clone
	s.announce(describeOrder("Cloned order", clone))
	return clone, nil
}

// LastOrders returns copies of the retained snapshot and clone; either may
// be nil before the corresponding action has run.
func (s *Service) LastOrders() (built, clone *order.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastBuilt != nil {
		b := s.lastBuilt.Clone()
		built = &b
	}
	if s.lastClone != nil {
		c := s.lastClone.Clone()
		clone = &c
	}
	return built, clone
}

// progress formats and announces the assembler's state after a setter.
// Caller must hold the mutex.
func (s *Service) progress(prefix string) string {
	line := fmt.Sprintf("%s (%s)", prefix, describeOrder("in progress", s.assembler.Current()))
	s.announce(line)
	return line
}

func describeOrder(prefix string, snap order.Snapshot) string {
	size := string(snap.Size)
	if size == "" {
		size = "unset"
	}
	toppings := "none"
	if len(snap.Toppings) > 0 {
		toppings = strings.Join(snap.Toppings, ", ")
	}
	line := fmt.Sprintf("%s: size=%s, toppings=%s, price=%d", prefix, size, toppings, snap.Price)
	if snap.Notes != "" {
		line += fmt.Sprintf(", notes=%q", snap.Notes)
	}
	return line
}
