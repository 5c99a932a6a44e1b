package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Wizard draft field sets
// ---------------------------------------------------------------------------

// Field-set structs mirror the wizard stages. Each set validates on its own;
// the wizard only runs a set's Validate when the borrower moves forward off
// that stage, never on backward navigation or resumption.

const dateOfBirthLayout = "2006-01-02"

var (
	ErrAmountExceedsEligible = errors.New("requested amount exceeds the eligible amount")
	ErrTermsNotAgreed        = errors.New("terms and conditions must be agreed")
)

// BasicInfo is the first wizard stage: the applicant's identity fields.
type BasicInfo struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	NationalID  string `json:"national_id"`
	DateOfBirth string `json:"date_of_birth"`
}

// Validate enforces the identity field rules. now anchors the date-of-birth
// check so tests can pin it.
func (b BasicInfo) Validate(now time.Time) error {
	if err := validateName("first name", b.FirstName); err != nil {
		return err
	}
	if err := validateName("last name", b.LastName); err != nil {
		return err
	}
	if len(b.NationalID) != 11 || !isDigits(b.NationalID) {
		return errors.New("national identifier must be exactly 11 digits")
	}
	dob, err := time.Parse(dateOfBirthLayout, b.DateOfBirth)
	if err != nil {
		return fmt.Errorf("date of birth must be in YYYY-MM-DD format: %w", err)
	}
	yesterday := now.AddDate(0, 0, -1).Truncate(24 * time.Hour)
	if !dob.Before(yesterday) {
		return errors.New("date of birth must be earlier than yesterday")
	}
	return nil
}

// ContactInfo is the second wizard stage: how to reach the applicant and
// where they work. Organization feeds the policy table; the employment
// reference is what the employment verifier resolves to an organization
// and net pay.
type ContactInfo struct {
	PhoneNumber         string `json:"phone_number"`
	Email               string `json:"email"`
	ResidentialAddress  string `json:"residential_address"`
	EmploymentReference string `json:"employment_reference"`
}

// Validate enforces the contact field rules. Phone numbers arrive from the
// identity provider with positions masked by '*', so masks count as valid
// characters.
func (c ContactInfo) Validate() error {
	if len(c.PhoneNumber) != 11 {
		return errors.New("phone number must be exactly 11 characters")
	}
	for _, r := range c.PhoneNumber {
		if !unicode.IsDigit(r) && r != '*' {
			return errors.New("phone number may contain only digits and mask characters")
		}
	}
	if c.Email == "" || !strings.Contains(c.Email, "@") {
		return errors.New("a valid email address is required")
	}
	if strings.TrimSpace(c.ResidentialAddress) == "" {
		return errors.New("residential address is required")
	}
	if strings.TrimSpace(c.EmploymentReference) == "" {
		return errors.New("employment reference is required")
	}
	return nil
}

// Attachment is a supporting document uploaded at the documents stage.
type Attachment struct {
	Title string `json:"title"`
	Data  string `json:"data"`
}

// Documents is the final input stage: requested terms, supporting documents,
// the applicant's signature, and the terms acknowledgement.
type Documents struct {
	PrincipalRaw string       `json:"principal_raw"`
	TenorMonths  int          `json:"tenor_months"`
	Attachments  []Attachment `json:"attachments"`
	Signature    string       `json:"signature"`
	TermsAgreed  bool         `json:"terms_agreed"`
}

// Validate enforces the documents stage rules against the current eligible
// amount. Principal arrives as display text with thousands separators.
func (d Documents) Validate(eligibleAmount decimal.Decimal) error {
	principal, err := ParseAmount(d.PrincipalRaw)
	if err != nil {
		return err
	}
	if principal.GreaterThan(eligibleAmount) {
		return ErrAmountExceedsEligible
	}
	if d.TenorMonths < 3 || d.TenorMonths > 24 {
		return errors.New("tenor must be between 3 and 24 months")
	}
	if len(d.Attachments) == 0 {
		return errors.New("at least one supporting document is required")
	}
	for i, a := range d.Attachments {
		if strings.TrimSpace(a.Title) == "" || a.Data == "" {
			return fmt.Errorf("attachment %d is missing a title or content", i)
		}
	}
	if d.Signature == "" {
		return errors.New("a signature is required")
	}
	if !d.TermsAgreed {
		return ErrTermsNotAgreed
	}
	return nil
}

// Principal parses the raw principal text. Call Validate first.
func (d Documents) Principal() (decimal.Decimal, error) {
	return ParseAmount(d.PrincipalRaw)
}

// ParseAmount parses a display amount, stripping thousands separators, and
// requires the result to be strictly positive.
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return decimal.Zero, errors.New("amount is required")
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, errors.New("amount must be positive")
	}
	return amount, nil
}

// VerificationResult is the cached outcome of the external checks run during
// the wizard. It is rehydrated on resume without being re-checked.
type VerificationResult struct {
	IdentityVerified   bool            `json:"identity_verified"`
	NationalID         string          `json:"national_id"`
	EmploymentVerified bool            `json:"employment_verified"`
	Organization       string          `json:"organization"`
	MonthlyNetPay      decimal.Decimal `json:"monthly_net_pay"`
	VerifiedAt         time.Time       `json:"verified_at"`
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func validateName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	for _, r := range value {
		if unicode.IsDigit(r) {
			return fmt.Errorf("%s must not contain digits", field)
		}
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
