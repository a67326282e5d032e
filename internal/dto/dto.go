// Package dto holds the transfer shapes exchanged with API clients.
// Dates travel as YYYY-MM-DD strings; enums travel as their numeric
// codes, exactly as the frontend has always sent them.
package dto

// DateLayout is the wire format for birthDate and cardExpiry.
const DateLayout = "2006-01-02"

// PatientInput is the payload for both create and update. The id and
// active flag are never client-writable.
type PatientInput struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	BirthDate     string `json:"birthDate"`
	Gender        int    `json:"gender"`
	CPF           string `json:"cpf,omitempty"`
	RG            string `json:"rg"`
	StateCode     int    `json:"stateCode"`
	Email         string `json:"email"`
	MobilePhone   string `json:"mobilePhone,omitempty"`
	LandlinePhone string `json:"landlinePhone,omitempty"`
	PlanID        *int64 `json:"planId,omitempty"`
	CardNumber    string `json:"cardNumber,omitempty"`
	CardExpiry    string `json:"cardExpiry,omitempty"`
}

type PatientOutput struct {
	ID            int64       `json:"id"`
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
	BirthDate     string      `json:"birthDate"`
	Gender        int         `json:"gender"`
	CPF           string      `json:"cpf,omitempty"`
	RG            string      `json:"rg"`
	StateCode     int         `json:"stateCode"`
	Email         string      `json:"email"`
	MobilePhone   string      `json:"mobilePhone,omitempty"`
	LandlinePhone string      `json:"landlinePhone,omitempty"`
	PlanID        *int64      `json:"planId,omitempty"`
	CardNumber    string      `json:"cardNumber,omitempty"`
	CardExpiry    string      `json:"cardExpiry,omitempty"`
	Active        bool        `json:"active"`
	Plan          *PlanOutput `json:"plan,omitempty"`
}

type PlanOutput struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshInput struct {
	RefreshToken string `json:"refreshToken"`
}
