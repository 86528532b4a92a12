package validation

import (
	"strings"
	"testing"

	"github.com/andrewch/contactbook/internal/model"
)

func str(s string) *string { return &s }

func TestIsNumber(t *testing.T) {
	cases := map[string]bool{
		"1":   true,
		"42":  true,
		"0":   false,
		"-5":  false,
		"":    false,
		"abc": false,
		"1.5": false,
	}
	for in, want := range cases {
		if got := IsNumber(in); got != want {
			t.Errorf("IsNumber(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestContact_Valid(t *testing.T) {
	c := model.Contact{
		ID:       7,
		Name:     str("Ivan"),
		Surname:  str("Petrov"),
		Email:    str("ivan@example.com"),
		Birthday: str("1990-05-02"),
		WebSite:  str("https://example.com"),
	}
	if v := Contact(c); len(v) != 0 {
		t.Fatalf("want no violations, got %v", v)
	}
}

func TestContact_CollectsAllViolations(t *testing.T) {
	c := model.Contact{ID: 7, Birthday: str("1990-13-40"), WebSite: str("not a url")}
	v := Contact(c)
	if len(v) != 5 {
		t.Fatalf("want 5 violations, got %d: %v", len(v), v)
	}
	// Deterministic order: name, surname, email, birthday, web site.
	wantSubstr := []string{"Name", "Surname", "Email", "Birthday", "Web site"}
	for i, sub := range wantSubstr {
		if !strings.Contains(v[i], sub) {
			t.Errorf("violation[%d] = %q, want mention of %s", i, v[i], sub)
		}
	}
}

func TestContact_EmailFormat(t *testing.T) {
	for _, bad := range []string{"plain", "a@b", "@example.com", "a b@example.com"} {
		c := model.Contact{Name: str("a"), Surname: str("b"), Email: str(bad)}
		if v := Contact(c); len(v) != 1 {
			t.Errorf("email %q: want 1 violation, got %v", bad, v)
		}
	}
}

func TestContact_Deterministic(t *testing.T) {
	c := model.Contact{Birthday: str("nope")}
	first := Contact(c)
	for i := 0; i < 3; i++ {
		again := Contact(c)
		if len(again) != len(first) {
			t.Fatalf("run %d: length changed", i)
		}
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("run %d: order changed at %d", i, j)
			}
		}
	}
}

func TestAddress(t *testing.T) {
	if v := Address(model.Address{}); len(v) != 0 {
		t.Fatalf("empty address must be valid, got %v", v)
	}
	a := model.Address{
		ZipCode:     str("12a45"),
		HouseNumber: str("-3"),
		FlatNumber:  str("x"),
	}
	if v := Address(a); len(v) != 3 {
		t.Fatalf("want 3 violations, got %v", v)
	}
	ok := model.Address{ZipCode: str("220030"), HouseNumber: str("12"), FlatNumber: str("4")}
	if v := Address(ok); len(v) != 0 {
		t.Fatalf("want no violations, got %v", v)
	}
}

func TestPhone(t *testing.T) {
	good := model.Phone{Type: "mobile", CountryCode: "375", OperatorCode: "29", Number: "1234567"}
	if v := Phone(good); len(v) != 0 {
		t.Fatalf("want no violations, got %v", v)
	}
	bad := model.Phone{Type: "fax", Number: "12-34"}
	if v := Phone(bad); len(v) != 2 {
		t.Fatalf("want 2 violations, got %v", v)
	}
}
