package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/rencanalab/rpm-backend/internal/domain"
)

// New builds the validator used for plan inputs arriving over the wire.
// Enum membership and session-list consistency are struct-level rules.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(rpmInputStructLevel, domain.RPMInput{})
	return v
}

func rpmInputStructLevel(sl validator.StructLevel) {
	in := sl.Current().Interface().(domain.RPMInput)

	if !domain.ValidEducationLevel(string(in.Jenjang)) {
		sl.ReportError(in.Jenjang, "jenjang", "Jenjang", "education_level", "")
	}
	if !domain.ValidSemester(in.Semester) {
		sl.ReportError(in.Semester, "semester", "Semester", "semester", "")
	}
	if in.JumlahPertemuan < 1 {
		sl.ReportError(in.JumlahPertemuan, "jumlahPertemuan", "JumlahPertemuan", "min_sessions", "")
	}
	if len(in.PedagogiPerPertemuan) != in.JumlahPertemuan {
		sl.ReportError(in.PedagogiPerPertemuan, "pedagogiPerPertemuan", "PedagogiPerPertemuan", "session_list_length", "")
	}
	for _, m := range in.PedagogiPerPertemuan {
		if !domain.ValidPedagogicalPractice(string(m.Pedagogy)) {
			sl.ReportError(m.Pedagogy, "pedagogiPerPertemuan", "PedagogiPerPertemuan", "pedagogical_practice", "")
			break
		}
	}
	for _, d := range in.DimensiLulusan {
		if !domain.ValidGraduateDimension(string(d)) {
			sl.ReportError(d, "dimensiLulusan", "DimensiLulusan", "graduate_dimension", "")
			break
		}
	}
}
