package httpserver

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/andrewch/contactbook/internal/errs"
	"github.com/andrewch/contactbook/internal/model"
)

// defaultMaxUploadBytes caps the whole multipart body, files included, when
// no cap is configured.
const defaultMaxUploadBytes = 5000 << 10 // 5000 KiB

// editForm is the typed decode of a contact edit submission. Scalar fields
// keep their raw string values; normalization happens in the entity builder.
type editForm struct {
	ID string

	Name          string
	Surname       string
	Patronymic    string
	Year          string
	Month         string
	Day           string
	Nationality   string
	Gender        string
	MaritalStatus string
	WebSite       string
	Email         string
	PlaceOfWork   string

	Country     string
	City        string
	Street      string
	HouseNumber string
	FlatNumber  string
	ZipCode     string

	Photo string

	AllPhones      []model.Phone
	AllAttachments []model.AttachmentInfo

	// Files carries one entry per uploaded file part, metadata decoded from
	// the part's URL-encoded field name.
	Files []model.Attachment

	closers []io.Closer
}

// Close releases every opened file part. Safe on every exit path.
func (f *editForm) Close() {
	for _, c := range f.closers {
		_ = c.Close()
	}
	f.closers = nil
}

// decodeEditForm parses the multipart body into an editForm. Any failure is a
// decode failure tagged errs.ErrDecode: it happens before the first attachment
// is created, so a bad body never leaves partial state behind.
func decodeEditForm(c *gin.Context, maxBytes int64) (*editForm, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	if err := c.Request.ParseMultipartForm(maxBytes); err != nil {
		return nil, fmt.Errorf("parse multipart: %w: %w", errs.ErrDecode, err)
	}
	mf := c.Request.MultipartForm

	first := func(name string) string {
		if v := mf.Value[name]; len(v) > 0 {
			return v[0]
		}
		return ""
	}

	f := &editForm{
		ID:            first("id"),
		Name:          first("name"),
		Surname:       first("surname"),
		Patronymic:    first("patronymic"),
		Year:          first("year"),
		Month:         first("month"),
		Day:           first("day"),
		Nationality:   first("nationality"),
		Gender:        first("gender"),
		MaritalStatus: first("maritalStatus"),
		WebSite:       first("webSite"),
		Email:         first("email"),
		PlaceOfWork:   first("placeOfWork"),
		Country:       first("country"),
		City:          first("city"),
		Street:        first("street"),
		HouseNumber:   first("houseNumber"),
		FlatNumber:    first("flatNumber"),
		ZipCode:       first("zipCode"),
		Photo:         first("photo"),
	}

	if raw := first("allPhones"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &f.AllPhones); err != nil {
			return nil, fmt.Errorf("decode allPhones: %w: %w", errs.ErrDecode, err)
		}
	}
	if raw := first("allAttachments"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &f.AllAttachments); err != nil {
			return nil, fmt.Errorf("decode allAttachments: %w: %w", errs.ErrDecode, err)
		}
	}

	// File parts: the field name is URL-encoded JSON of the attachment
	// metadata, the part body is the payload.
	for field, headers := range mf.File {
		meta, err := url.QueryUnescape(field)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("decode attachment field name: %w: %w", errs.ErrDecode, err)
		}
		var info model.AttachmentInfo
		if err := json.Unmarshal([]byte(meta), &info); err != nil {
			f.Close()
			return nil, fmt.Errorf("decode attachment metadata: %w: %w", errs.ErrDecode, err)
		}
		for _, fh := range headers {
			rc, err := fh.Open()
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("open file part: %w: %w", errs.ErrDecode, err)
			}
			f.closers = append(f.closers, rc)
			f.Files = append(f.Files, model.Attachment{Info: info, Data: rc})
		}
	}
	return f, nil
}

// buildContact assembles the Contact (with nested Address) from decoded
// scalar fields. Birthday is the plain join of the three date parts; calendar
// validity is the validator's concern.
func buildContact(id int, f *editForm) model.Contact {
	var birthday string
	if f.Year != "" || f.Month != "" || f.Day != "" {
		birthday = strings.Join([]string{f.Year, f.Month, f.Day}, "-")
	}
	return model.Contact{
		ID:            id,
		Name:          model.StrPtr(f.Name),
		Surname:       model.StrPtr(f.Surname),
		Patronymic:    model.StrPtr(f.Patronymic),
		Birthday:      model.StrPtr(birthday),
		Nationality:   model.StrPtr(f.Nationality),
		Gender:        model.StrPtr(f.Gender),
		MaritalStatus: model.StrPtr(f.MaritalStatus),
		WebSite:       model.StrPtr(f.WebSite),
		Email:         model.StrPtr(f.Email),
		PlaceOfWork:   model.StrPtr(f.PlaceOfWork),
		Address: model.Address{
			Country:     model.StrPtr(f.Country),
			City:        model.StrPtr(f.City),
			Street:      model.StrPtr(f.Street),
			HouseNumber: model.StrPtr(f.HouseNumber),
			FlatNumber:  model.StrPtr(f.FlatNumber),
			ZipCode:     model.StrPtr(f.ZipCode),
		},
	}
}
