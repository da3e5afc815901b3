package returns

import (
	"net/mail"
	"strings"
)

// Address is a customer billing or shipping address
type Address struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Company   string
}

// FullName returns the address name, empty if none is set
func (a *Address) FullName() string {
	if a == nil {
		return ""
	}
	return joinName(a.FirstName, a.LastName)
}

// Customer is the customer who filed a return request
type Customer struct {
	ID              int64
	Username        string
	Email           string
	FirstName       string
	LastName        string
	BillingAddress  *Address
	ShippingAddress *Address
}

// FullName derives the display name from the customer name, then the
// billing address, then the shipping address. It returns an empty string
// when nothing is known.
func (c *Customer) FullName() string {
	if c == nil {
		return ""
	}
	if name := joinName(c.FirstName, c.LastName); name != "" {
		return name
	}
	if name := c.BillingAddress.FullName(); name != "" {
		return name
	}
	return c.ShippingAddress.FullName()
}

// FindEmail returns the first usable email address of the customer,
// checking the account first and then the addresses.
func (c *Customer) FindEmail() string {
	if c == nil {
		return ""
	}
	candidates := []string{c.Email}
	if c.BillingAddress != nil {
		candidates = append(candidates, c.BillingAddress.Email)
	}
	if c.ShippingAddress != nil {
		candidates = append(candidates, c.ShippingAddress.Email)
	}
	for _, candidate := range candidates {
		if isUsableEmail(candidate) {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}

// NaIfEmpty returns "N/A" for blank strings
func NaIfEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

func isUsableEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}
