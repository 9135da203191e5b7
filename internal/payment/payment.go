package payment

import (
	"errors"
	"fmt"
)

// Family selects one of the related payment-method constructors.
type Family string

const (
	UPI    Family = "UPI"
	Wallet Family = "Wallet"
	Card   Family = "Card"
)

// ErrUnknownFamily is returned when the family tag is not recognized.
// No method is produced in that case.
var ErrUnknownFamily = errors.New("unknown payment family")

const (
	defaultUPIID      = "user@upi"
	defaultWalletID   = "WALLET123"
	defaultCardNumber = "4242424242424242"
)

// Options carries the method-specific fields. Each family reads only its
// own key; a missing key falls back to the stated default.
type Options struct {
	ID         string `json:"id,omitempty"`
	WalletID   string `json:"wallet_id,omitempty"`
	CardNumber string `json:"card_number,omitempty"`
}

// Method is a constructed payment method. Charge returns a receipt line
// and has no other effect.
type Method interface {
	Family() Family
	Charge(amount int) string
}

// New dispatches on the family tag.
func New(family Family, opts Options) (Method, error) {
	switch family {
	case UPI:
		return UPIMethod{ID: orDefault(opts.ID, defaultUPIID)}, nil
	case Wallet:
		return WalletMethod{WalletID: orDefault(opts.WalletID, defaultWalletID)}, nil
	case Card:
		return CardMethod{Number: orDefault(opts.CardNumber, defaultCardNumber)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, string(family))
	}
}

type UPIMethod struct {
	ID string
}

func (m UPIMethod) Family() Family { return UPI }

func (m UPIMethod) Charge(amount int) string {
	return fmt.Sprintf("Paid %d via UPI (%s)", amount, m.ID)
}

type WalletMethod struct {
	WalletID string
}

func (m WalletMethod) Family() Family { return Wallet }

func (m WalletMethod) Charge(amount int) string {
	return fmt.Sprintf("Paid %d via Wallet (%s)", amount, m.WalletID)
}

type CardMethod struct {
	Number string
}

func (m CardMethod) Family() Family { return Card }

// Charge masks everything but the last four characters of the card number.
func (m CardMethod) Charge(amount int) string {
	return fmt.Sprintf("Paid %d via Card (%s)", amount, maskCard(m.Number))
}

func maskCard(number string) string {
	last := number
	if len(number) > 4 {
		last = number[len(number)-4:]
	}
	return "xxxx-" + last
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
