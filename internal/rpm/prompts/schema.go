package prompts

import "github.com/rencanalab/rpm-backend/internal/domain"

// ---------- shared fragments ----------

func StringSchema() map[string]any {
	return map[string]any{"type": "STRING"}
}

func IntSchema() map[string]any {
	return map[string]any{"type": "INTEGER"}
}

func EnumSchema(values ...string) map[string]any {
	return map[string]any{"type": "STRING", "enum": values}
}

func ArraySchema(items map[string]any) map[string]any {
	return map[string]any{"type": "ARRAY", "items": items}
}

func ObjectSchema(properties map[string]any, required ...string) map[string]any {
	return map[string]any{
		"type":       "OBJECT",
		"properties": properties,
		"required":   required,
	}
}

// ---------- RPM output contract ----------

func activityPhaseValues() []string {
	phases := domain.ActivityPhases()
	out := make([]string, len(phases))
	for i, p := range phases {
		out[i] = string(p)
	}
	return out
}

func principleValues() []string {
	principles := domain.DeepLearningPrinciples()
	out := make([]string, len(principles))
	for i, p := range principles {
		out[i] = string(p)
	}
	return out
}

// StepSchema restricts the phase tag to exactly the three activity literals
// and requires at least one deep-learning principle per step. The renderer
// depends on these enums; anything else it treats as an unrecognized value.
func StepSchema() map[string]any {
	prinsip := ArraySchema(EnumSchema(principleValues()...))
	prinsip["minItems"] = 1
	return ObjectSchema(map[string]any{
		"kegiatan":  EnumSchema(activityPhaseValues()...),
		"fase":      StringSchema(),
		"deskripsi": StringSchema(),
		"prinsip":   prinsip,
	}, "kegiatan", "fase", "deskripsi", "prinsip")
}

func MeetingExperienceSchema() map[string]any {
	return ObjectSchema(map[string]any{
		"meetingNumber":  IntSchema(),
		"pedagogy":       StringSchema(),
		"langkahLangkah": ArraySchema(StepSchema()),
	}, "meetingNumber", "pedagogy", "langkahLangkah")
}

func MaterialReferenceSchema() map[string]any {
	return ObjectSchema(map[string]any{
		"judul":     StringSchema(),
		"url":       StringSchema(),
		"tipe":      EnumSchema("Video", "Artikel", "Gambar", "E-Book", "LKPD", "Game Edukasi"),
		"deskripsi": StringSchema(),
	}, "judul", "url", "tipe", "deskripsi")
}

func IdentificationSchema() map[string]any {
	return ObjectSchema(map[string]any{
		"murid":              StringSchema(),
		"lintasDisiplin":     StringSchema(),
		"topik":              StringSchema(),
		"kemitraan":          StringSchema(),
		"lingkungan":         StringSchema(),
		"pemanfaatanDigital": StringSchema(),
		"mediaAjar":          StringSchema(),
	}, "murid", "lintasDisiplin", "topik", "kemitraan", "lingkungan", "pemanfaatanDigital", "mediaAjar")
}

func LearningExperienceSchema() map[string]any {
	return ObjectSchema(map[string]any{
		"perPertemuan":    ArraySchema(MeetingExperienceSchema()),
		"referensiMateri": ArraySchema(MaterialReferenceSchema()),
		"lkpdDigital":     StringSchema(),
		"gameEdukasi":     StringSchema(),
	}, "perPertemuan", "referensiMateri", "lkpdDigital", "gameEdukasi")
}

func AssessmentSchema() map[string]any {
	return ObjectSchema(map[string]any{
		"awal":   StringSchema(),
		"proses": StringSchema(),
		"akhir":  StringSchema(),
	}, "awal", "proses", "akhir")
}

// RPMOutputSchema is the full structural contract handed to the generative
// service. Required properties are declared at every nesting level; the
// open-ended cardinalities (sessions, steps, references) stay arrays.
func RPMOutputSchema() map[string]any {
	return ObjectSchema(map[string]any{
		"identifikasi":      IdentificationSchema(),
		"pengalamanBelajar": LearningExperienceSchema(),
		"asesmen":           AssessmentSchema(),
		"glosarium":         StringSchema(),
		"daftarPustaka":     StringSchema(),
	}, "identifikasi", "pengalamanBelajar", "asesmen", "glosarium", "daftarPustaka")
}
