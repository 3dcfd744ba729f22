package reservation

import (
	"regexp"
	"strings"
	"time"
)

// Form carries the reservation fields exactly as entered. Everything
// is a string until validation passes; Personas is parsed on submit.
type Form struct {
	Nombre   string `form:"nombre"`
	Apellido string `form:"apellido"`
	Email    string `form:"email"`
	Telefono string `form:"telefono"`
	Personas string `form:"personas"`
	Fecha    string `form:"fecha"`
	Hora     string `form:"hora"`
}

// TimeSlots are the bookable hours, midday through ten at night.
var TimeSlots = []string{
	"12:00", "13:00", "14:00", "15:00", "16:00",
	"17:00", "18:00", "19:00", "20:00", "21:00", "22:00",
}

// PartySizes offered by the form select.
var PartySizes = []string{"1", "2", "3", "4", "5", "6"}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9+\-\s()]+$`)
	digitRe = regexp.MustCompile(`[^0-9]`)
)

// ValidateField checks a single field and returns the error message
// to show next to it, or "". now anchors the date check to the
// current calendar day; time of day is ignored.
func ValidateField(name, value string, now time.Time) string {
	switch name {
	case "nombre":
		if strings.TrimSpace(value) == "" {
			return "El nombre es requerido"
		}
		if len([]rune(strings.TrimSpace(value))) < 2 {
			return "El nombre debe tener al menos 2 caracteres"
		}
	case "apellido":
		if strings.TrimSpace(value) == "" {
			return "El apellido es requerido"
		}
		if len([]rune(strings.TrimSpace(value))) < 2 {
			return "El apellido debe tener al menos 2 caracteres"
		}
	case "email":
		if strings.TrimSpace(value) == "" {
			return "El email es requerido"
		}
		if !emailRe.MatchString(value) {
			return "Ingrese un email válido"
		}
	case "telefono":
		if strings.TrimSpace(value) == "" {
			return "El teléfono es requerido"
		}
		if !phoneRe.MatchString(value) {
			return "El teléfono solo puede contener números y símbolos válidos"
		}
		if len(digitRe.ReplaceAllString(value, "")) < 8 {
			return "El teléfono debe tener al menos 8 dígitos"
		}
	case "personas":
		if value == "" {
			return "Seleccione el número de personas"
		}
	case "fecha":
		if value == "" {
			return "Seleccione una fecha"
		}
		selected, err := time.ParseInLocation("2006-01-02", value, now.Location())
		if err != nil {
			return "Seleccione una fecha"
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if selected.Before(today) {
			return "La fecha no puede ser en el pasado"
		}
	case "hora":
		if value == "" {
			return "Seleccione una hora"
		}
	}
	return ""
}

// Validate re-checks every field together, as done on submit.
// Submission may proceed only when the returned map is empty.
func Validate(f Form, now time.Time) map[string]string {
	fields := map[string]string{
		"nombre":   f.Nombre,
		"apellido": f.Apellido,
		"email":    f.Email,
		"telefono": f.Telefono,
		"personas": f.Personas,
		"fecha":    f.Fecha,
		"hora":     f.Hora,
	}
	errs := make(map[string]string)
	for name, value := range fields {
		if msg := ValidateField(name, value, now); msg != "" {
			errs[name] = msg
		}
	}
	return errs
}
