// Package model defines domain entities used by services and repositories.
package model

import "io"

// Attachment directive states submitted by the client.
const (
	StateNew     = "new"
	StateEdit    = "edit"
	StateDeleted = "deleted"
)

// Contact is a single person record. Optional fields are nil when the client
// submitted a blank value.
type Contact struct {
	ID            int // existing contact id, positive
	Name          *string
	Surname       *string
	Patronymic    *string
	Birthday      *string // YYYY-MM-DD, joined from year/month/day form fields
	Nationality   *string
	Gender        *string
	MaritalStatus *string
	WebSite       *string
	Email         *string // lower-cased before validation and storage
	PlaceOfWork   *string
	Address       Address
}

// Address is the contact's postal address. Every field is independently
// optional; there is no cross-field invariant.
type Address struct {
	Country     *string
	City        *string
	Street      *string
	HouseNumber *string
	FlatNumber  *string
	ZipCode     *string
}

// Phone belongs to exactly one contact. State drives persistence:
// new rows are inserted, edited rows updated, deleted rows removed.
type Phone struct {
	ID           int     `json:"id"`
	ContactID    int     `json:"contactId"`
	Type         string  `json:"type"` // home, mobile or work
	CountryCode  string  `json:"countryCode"`
	OperatorCode string  `json:"operatorCode"`
	Number       string  `json:"number"`
	Comment      *string `json:"comment"`
	State        string  `json:"state"`
}

// AttachmentInfo is the metadata half of an attachment. For file parts it
// arrives URL-encoded in the part's field name; for edit/deleted directives it
// arrives in the allAttachments JSON list.
type AttachmentInfo struct {
	AttachmentID int     `json:"attachmentId"`
	ContactID    int     `json:"contactId"`
	State        string  `json:"state"`
	FileName     string  `json:"fileName"`
	Comment      *string `json:"comment"`
	UploadDate   string  `json:"uploadDate"`
}

// Attachment pairs metadata with the uploaded byte stream. The stream is
// request-scoped: creation must fully consume it.
type Attachment struct {
	Info AttachmentInfo
	Data io.Reader
}

// StrPtr returns a pointer to s, or nil when s is empty. Form decoding uses it
// to normalize blank submissions to absent values.
func StrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
