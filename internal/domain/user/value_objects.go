package user

import (
	"strings"
	"unicode"
)

// Phone is the login identifier. Stored in a normalized form: an optional
// leading '+' followed by 7 to 15 digits; spaces, dashes and parentheses from
// user input are stripped.
type Phone struct {
	value string
}

func NewPhone(raw string) (Phone, error) {
	var b strings.Builder
	for i, r := range strings.TrimSpace(raw) {
		switch {
		case r == '+' && i == 0:
			b.WriteRune(r)
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')':
			// separators allowed in input, dropped in storage
		default:
			return Phone{}, ErrInvalidPhone
		}
	}

	normalized := b.String()
	digits := strings.TrimPrefix(normalized, "+")
	if len(digits) < 7 || len(digits) > 15 {
		return Phone{}, ErrInvalidPhone
	}

	return Phone{value: normalized}, nil
}

func (p Phone) Value() string {
	return p.value
}

type Credentials struct {
	phone    Phone
	password string
}

func NewCredentials(phone Phone, password string) Credentials {
	return Credentials{phone: phone, password: password}
}

func (c Credentials) Phone() Phone {
	return c.phone
}

func (c Credentials) Password() string {
	return c.password
}
