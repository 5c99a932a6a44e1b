package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microlend/lending-console/internal/domain/model"
)

var anchor = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func validBasicInfo() model.BasicInfo {
	return model.BasicInfo{
		FirstName:   "Ada",
		LastName:    "Obi",
		NationalID:  "12345678901",
		DateOfBirth: "1990-03-14",
	}
}

func TestBasicInfo_Validate(t *testing.T) {
	assert.NoError(t, validBasicInfo().Validate(anchor))

	cases := []struct {
		name   string
		mutate func(*model.BasicInfo)
	}{
		{"empty first name", func(b *model.BasicInfo) { b.FirstName = "  " }},
		{"digit in last name", func(b *model.BasicInfo) { b.LastName = "Obi3" }},
		{"short national id", func(b *model.BasicInfo) { b.NationalID = "1234567890" }},
		{"long national id", func(b *model.BasicInfo) { b.NationalID = "123456789012" }},
		{"letters in national id", func(b *model.BasicInfo) { b.NationalID = "12345abc901" }},
		{"bad date format", func(b *model.BasicInfo) { b.DateOfBirth = "14/03/1990" }},
		{"born today", func(b *model.BasicInfo) { b.DateOfBirth = "2024-06-15" }},
		{"born yesterday", func(b *model.BasicInfo) { b.DateOfBirth = "2024-06-14" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := validBasicInfo()
			tc.mutate(&b)
			assert.Error(t, b.Validate(anchor))
		})
	}
}

func validContactInfo() model.ContactInfo {
	return model.ContactInfo{
		PhoneNumber:         "0803***4567",
		Email:               "ada@example.com",
		ResidentialAddress:  "12 Marina Rd, Lagos",
		EmploymentReference: "EMP-0042",
	}
}

func TestContactInfo_Validate(t *testing.T) {
	assert.NoError(t, validContactInfo().Validate())

	// fully unmasked numbers are equally valid
	c := validContactInfo()
	c.PhoneNumber = "08031234567"
	assert.NoError(t, c.Validate())

	cases := []struct {
		name   string
		mutate func(*model.ContactInfo)
	}{
		{"short phone", func(c *model.ContactInfo) { c.PhoneNumber = "080312345" }},
		{"long phone", func(c *model.ContactInfo) { c.PhoneNumber = "080312345678" }},
		{"letters in phone", func(c *model.ContactInfo) { c.PhoneNumber = "0803abc4567" }},
		{"missing email", func(c *model.ContactInfo) { c.Email = "" }},
		{"bad email", func(c *model.ContactInfo) { c.Email = "not-an-email" }},
		{"missing address", func(c *model.ContactInfo) { c.ResidentialAddress = " " }},
		{"missing employment reference", func(c *model.ContactInfo) { c.EmploymentReference = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validContactInfo()
			tc.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func validDocuments() model.Documents {
	return model.Documents{
		PrincipalRaw: "100,000",
		TenorMonths:  12,
		Attachments:  []model.Attachment{{Title: "payslip", Data: "cGF5c2xpcA=="}},
		Signature:    "c2lnbmF0dXJl",
		TermsAgreed:  true,
	}
}

func TestDocuments_Validate(t *testing.T) {
	eligible := decimal.NewFromInt(150_000)
	assert.NoError(t, validDocuments().Validate(eligible))

	t.Run("principal above eligible amount", func(t *testing.T) {
		d := validDocuments()
		d.PrincipalRaw = "150,000.01"
		assert.ErrorIs(t, d.Validate(eligible), model.ErrAmountExceedsEligible)
	})

	t.Run("terms not agreed", func(t *testing.T) {
		d := validDocuments()
		d.TermsAgreed = false
		assert.ErrorIs(t, d.Validate(eligible), model.ErrTermsNotAgreed)
	})

	cases := []struct {
		name   string
		mutate func(*model.Documents)
	}{
		{"zero principal", func(d *model.Documents) { d.PrincipalRaw = "0" }},
		{"negative principal", func(d *model.Documents) { d.PrincipalRaw = "-5,000" }},
		{"garbage principal", func(d *model.Documents) { d.PrincipalRaw = "abc" }},
		{"tenor below minimum", func(d *model.Documents) { d.TenorMonths = 2 }},
		{"tenor above maximum", func(d *model.Documents) { d.TenorMonths = 25 }},
		{"no attachments", func(d *model.Documents) { d.Attachments = nil }},
		{"untitled attachment", func(d *model.Documents) { d.Attachments[0].Title = "" }},
		{"empty attachment body", func(d *model.Documents) { d.Attachments[0].Data = "" }},
		{"missing signature", func(d *model.Documents) { d.Signature = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDocuments()
			tc.mutate(&d)
			assert.Error(t, d.Validate(eligible))
		})
	}
}

func TestParseAmount_StripsThousandsSeparators(t *testing.T) {
	amount, err := model.ParseAmount("1,250,000.50")
	require.NoError(t, err)
	assert.Equal(t, "1250000.5", amount.String())

	amount, err = model.ParseAmount(" 42000 ")
	require.NoError(t, err)
	assert.Equal(t, "42000", amount.String())

	_, err = model.ParseAmount("")
	assert.Error(t, err)
}
