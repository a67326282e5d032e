package patient

import (
	"strings"
	"time"

	"github.com/be3health/patient-registry/internal/domain/plan"
)

// Gender matches the numeric codes the registry has always stored.
type Gender int

const (
	GenderMale   Gender = 1
	GenderFemale Gender = 2
	GenderOther  Gender = 3
)

func (g Gender) IsValid() bool {
	return g >= GenderMale && g <= GenderOther
}

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	case GenderOther:
		return "other"
	}
	return "unknown"
}

// UF is a Brazilian federative unit, numbered 1..27 in alphabetical
// order of the two-letter abbreviation (AC=1 .. TO=27).
type UF int

const (
	UFAC UF = iota + 1
	UFAL
	UFAP
	UFAM
	UFBA
	UFCE
	UFDF
	UFES
	UFGO
	UFMA
	UFMT
	UFMS
	UFMG
	UFPA
	UFPB
	UFPR
	UFPE
	UFPI
	UFRJ
	UFRN
	UFRS
	UFRO
	UFRR
	UFSC
	UFSP
	UFSE
	UFTO
)

var ufCodes = [...]string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA",
	"MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI", "RJ", "RN",
	"RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

func (u UF) IsValid() bool {
	return u >= UFAC && u <= UFTO
}

func (u UF) String() string {
	if !u.IsValid() {
		return ""
	}
	return ufCodes[u-1]
}

type Patient struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	FirstName string    `gorm:"column:first_name;type:varchar(100);not null"`
	LastName  string    `gorm:"column:last_name;type:varchar(100);not null"`
	BirthDate time.Time `gorm:"column:birth_date;not null"`
	Gender    Gender    `gorm:"column:gender;not null"`

	// CPF is stored normalized (digits only); empty when not informed.
	CPF     string `gorm:"column:cpf;type:varchar(11);index"`
	RG      string `gorm:"column:rg;type:varchar(20);not null"`
	RGState UF     `gorm:"column:rg_state;not null"`

	Email         string `gorm:"column:email;type:varchar(255);not null"`
	MobilePhone   string `gorm:"column:mobile_phone;type:varchar(20)"`
	LandlinePhone string `gorm:"column:landline_phone;type:varchar(20)"`

	PlanID     *int64     `gorm:"column:plan_id;index"`
	CardNumber string     `gorm:"column:card_number;type:varchar(50)"`
	CardExpiry *time.Time `gorm:"column:card_expiry"`

	Active bool `gorm:"column:active;default:true;index"`

	// Read-side association; resolved by the repository, never cascaded.
	Plan *plan.Plan `gorm:"foreignKey:PlanID"`
}

func (Patient) TableName() string {
	return "registry.patients"
}

func (p *Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p *Patient) Age() int {
	now := time.Now()
	years := now.Year() - p.BirthDate.Year()
	if now.Month() < p.BirthDate.Month() ||
		(now.Month() == p.BirthDate.Month() && now.Day() < p.BirthDate.Day()) {
		years--
	}
	return years
}
