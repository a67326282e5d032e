package validation

import (
	"net/mail"
	"strings"
	"time"

	"github.com/be3health/patient-registry/internal/domain/patient"
	"github.com/be3health/patient-registry/internal/dto"
)

const maxAge = 150

// DigitsOnly strips everything that is not an ASCII digit. CPFs and
// phone numbers arrive formatted ("111.444.777-35", "(11) 99999-9999")
// and are compared and stored by their digits.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func checkRequired(in *dto.PatientInput, res *Result) {
	if strings.TrimSpace(in.FirstName) == "" {
		res.Add("Nome", "Nome é obrigatório.")
	}
	if strings.TrimSpace(in.LastName) == "" {
		res.Add("Sobrenome", "Sobrenome é obrigatório.")
	}
	if strings.TrimSpace(in.RG) == "" {
		res.Add("RG", "RG é obrigatório.")
	}
	if strings.TrimSpace(in.Email) == "" {
		res.Add("Email", "Email é obrigatório.")
	}
}

// checkEmail rejects anything that does not parse as a single bare
// address equal to its own normalized form (no display names, no
// groups). A blank value is left to the required check.
func checkEmail(email string, res *Result) {
	if strings.TrimSpace(email) == "" {
		return
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		res.Add("Email", "Email inválido.")
	}
}

func checkPhones(mobile, landline string, res *Result) {
	if strings.TrimSpace(mobile) == "" && strings.TrimSpace(landline) == "" {
		res.Add("Telefone", "Pelo menos um telefone (Celular ou Fixo) deve ser informado.")
		return
	}

	if strings.TrimSpace(mobile) != "" && !validPhone(mobile) {
		res.Add("Celular", "Celular inválido. Use o formato (XX) XXXXX-XXXX ou (XX) XXXX-XXXX.")
	}
	if strings.TrimSpace(landline) != "" && !validPhone(landline) {
		res.Add("TelefoneFixo", "Telefone fixo inválido. Use o formato (XX) XXXX-XXXX.")
	}
}

func validPhone(phone string) bool {
	n := len(DigitsOnly(phone))
	return n >= 10 && n <= 11
}

func checkBirthDate(raw string, res *Result) {
	d, err := time.Parse(dto.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		res.Add("DataNascimento", "Data de nascimento inválida.")
		return
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if d.After(today) {
		res.Add("DataNascimento", "Data de nascimento não pode ser futura.")
	}

	age := today.Year() - d.Year()
	if today.Month() < d.Month() || (today.Month() == d.Month() && today.Day() < d.Day()) {
		age--
	}
	if age > maxAge {
		res.Add("DataNascimento", "Data de nascimento inválida.")
	}
}

func checkUF(code int, res *Result) {
	if !patient.UF(code).IsValid() {
		res.Add("UfRG", "UF do RG inválida.")
	}
}

func checkCardExpiry(raw string, res *Result) {
	if strings.TrimSpace(raw) == "" {
		return
	}
	if _, err := time.Parse(dto.DateLayout, strings.TrimSpace(raw)); err != nil {
		res.Add("ValidadeCarteirinha", "Validade da carteirinha inválida.")
	}
}

// checkCPF runs the structural checks on a non-blank CPF and reports
// whether they passed; the uniqueness lookup only runs on a
// structurally valid CPF.
func checkCPF(cpf string, res *Result) bool {
	digits := DigitsOnly(cpf)

	if len(digits) != 11 {
		res.Add("CPF", "CPF deve conter 11 dígitos.")
		return false
	}

	allSame := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		res.Add("CPF", "CPF inválido.")
		return false
	}

	if !cpfChecksumOK(digits) {
		res.Add("CPF", "CPF inválido.")
		return false
	}

	return true
}

// cpfChecksumOK verifies the two check digits of an 11-digit CPF using
// the standard weighted-sum-mod-11 algorithm: weights 10..2 over the
// first nine digits for the tenth digit, weights 11..2 over the first
// ten for the eleventh; remainder < 2 yields check digit 0, otherwise
// 11 - remainder.
func cpfChecksumOK(digits string) bool {
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * (10 - i)
	}
	d1 := 11 - sum%11
	if sum%11 < 2 {
		d1 = 0
	}

	sum = 0
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * (11 - i)
	}
	sum += d1 * 2
	d2 := 11 - sum%11
	if sum%11 < 2 {
		d2 = 0
	}

	return int(digits[9]-'0') == d1 && int(digits[10]-'0') == d2
}
