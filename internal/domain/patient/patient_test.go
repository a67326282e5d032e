package patient

import (
	"testing"
	"time"
)

func TestUFCodes(t *testing.T) {
	cases := []struct {
		uf   UF
		code string
	}{
		{UFAC, "AC"},
		{UFDF, "DF"},
		{UFRJ, "RJ"},
		{UFSP, "SP"},
		{UFTO, "TO"},
	}
	for _, c := range cases {
		if got := c.uf.String(); got != c.code {
			t.Errorf("UF(%d).String() = %q, want %q", c.uf, got, c.code)
		}
	}

	if UFSP != 25 {
		t.Errorf("UFSP = %d, want 25", UFSP)
	}
	if UFTO != 27 {
		t.Errorf("UFTO = %d, want 27", UFTO)
	}
}

func TestUFIsValid(t *testing.T) {
	for _, u := range []UF{0, -1, 28} {
		if u.IsValid() {
			t.Errorf("UF(%d) should be invalid", u)
		}
		if u.String() != "" {
			t.Errorf("UF(%d).String() = %q, want empty", u, u.String())
		}
	}
	for u := UFAC; u <= UFTO; u++ {
		if !u.IsValid() {
			t.Errorf("UF(%d) should be valid", u)
		}
	}
}

func TestGender(t *testing.T) {
	if !GenderMale.IsValid() || !GenderFemale.IsValid() || !GenderOther.IsValid() {
		t.Error("defined genders should be valid")
	}
	for _, g := range []Gender{0, 4, -1} {
		if g.IsValid() {
			t.Errorf("Gender(%d) should be invalid", g)
		}
	}
	if GenderFemale.String() != "female" {
		t.Errorf("GenderFemale.String() = %q", GenderFemale.String())
	}
	if Gender(9).String() != "unknown" {
		t.Errorf("Gender(9).String() = %q", Gender(9).String())
	}
}

func TestFullName(t *testing.T) {
	p := &Patient{FirstName: "João", LastName: "Silva"}
	if p.FullName() != "João Silva" {
		t.Errorf("full name = %q", p.FullName())
	}

	p = &Patient{FirstName: "Cher"}
	if p.FullName() != "Cher" {
		t.Errorf("full name = %q", p.FullName())
	}
}

func TestAge(t *testing.T) {
	now := time.Now()

	p := &Patient{BirthDate: now.AddDate(-30, 0, 0)}
	if p.Age() != 30 {
		t.Errorf("age = %d, want 30", p.Age())
	}

	// Birthday tomorrow: still a year younger.
	p = &Patient{BirthDate: now.AddDate(-30, 0, 1)}
	if p.Age() != 29 {
		t.Errorf("age = %d, want 29", p.Age())
	}
}
