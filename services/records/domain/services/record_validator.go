// Package services contains stateless domain services for the records
// bounded context. They enforce business rules that operate purely on domain
// types and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateName enforces the rules shared by customer and item names:
//   - Must not be empty or only whitespace
//   - No control characters (Unicode category Cc)
func ValidateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("name must not be empty")
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("name must not contain control characters")
		}
	}
	return nil
}

// ValidatePhone ensures a phone value is present. No format is imposed —
// the directory treats phone numbers as opaque keys.
func ValidatePhone(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("phone must not be empty")
	}
	return nil
}
