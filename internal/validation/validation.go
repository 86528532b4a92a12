// Package validation contains pure per-field validators. Validators collect
// every violation they find and never stop at the first.
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/andrewch/contactbook/internal/model"
)

var (
	emailRe  = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	digitsRe = regexp.MustCompile(`^[0-9]+$`)
)

// IsNumber reports whether s parses as a positive integer.
func IsNumber(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n > 0
}

// Contact validates contact identity fields and returns all violations found.
func Contact(c model.Contact) []string {
	var out []string
	if c.Name == nil {
		out = append(out, "Name is required.")
	}
	if c.Surname == nil {
		out = append(out, "Surname is required.")
	}
	switch {
	case c.Email == nil:
		out = append(out, "Email is required.")
	case !emailRe.MatchString(*c.Email):
		out = append(out, fmt.Sprintf("Email %q has invalid format.", *c.Email))
	}
	if c.Birthday != nil {
		if _, err := time.Parse("2006-01-02", *c.Birthday); err != nil {
			out = append(out, fmt.Sprintf("Birthday %q is not a valid date.", *c.Birthday))
		}
	}
	if c.WebSite != nil {
		u, err := url.Parse(*c.WebSite)
		if err != nil || !u.IsAbs() || u.Host == "" {
			out = append(out, fmt.Sprintf("Web site %q is not a valid URL.", *c.WebSite))
		}
	}
	return out
}

// Address validates address fields independently; no cross-field rules.
func Address(a model.Address) []string {
	var out []string
	if a.ZipCode != nil && !digitsRe.MatchString(*a.ZipCode) {
		out = append(out, fmt.Sprintf("Zip code %q must contain digits only.", *a.ZipCode))
	}
	if a.HouseNumber != nil && !IsNumber(*a.HouseNumber) {
		out = append(out, fmt.Sprintf("House number %q must be a positive number.", *a.HouseNumber))
	}
	if a.FlatNumber != nil && !IsNumber(*a.FlatNumber) {
		out = append(out, fmt.Sprintf("Flat number %q must be a positive number.", *a.FlatNumber))
	}
	return out
}

// Phone validates a single phone entry. Persistence rules live in the phone
// service; this checks field shape only.
func Phone(p model.Phone) []string {
	var out []string
	switch p.Type {
	case "home", "mobile", "work":
	default:
		out = append(out, fmt.Sprintf("Phone type %q is unknown.", p.Type))
	}
	if p.Number == "" || !digitsRe.MatchString(p.Number) {
		out = append(out, fmt.Sprintf("Phone number %q must contain digits only.", p.Number))
	}
	if p.CountryCode != "" && !digitsRe.MatchString(p.CountryCode) {
		out = append(out, fmt.Sprintf("Country code %q must contain digits only.", p.CountryCode))
	}
	if p.OperatorCode != "" && !digitsRe.MatchString(p.OperatorCode) {
		out = append(out, fmt.Sprintf("Operator code %q must contain digits only.", p.OperatorCode))
	}
	return out
}
