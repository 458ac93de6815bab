package rpm

import (
	"fmt"
	"strings"

	"github.com/rencanalab/rpm-backend/internal/domain"
)

// ValidateOutput checks the decoded model payload against the structural
// contract: every required property present and non-empty, at least one
// session, at least one step per session, at least one principle per step.
// A violation here is a hard failure; the renderer is never called with a
// partially-populated output.
func ValidateOutput(out domain.RPMGeneratedOutput) error {
	requiredTexts := map[string]string{
		"identifikasi.murid":              out.Identifikasi.Murid,
		"identifikasi.lintasDisiplin":     out.Identifikasi.LintasDisiplin,
		"identifikasi.topik":              out.Identifikasi.Topik,
		"identifikasi.kemitraan":          out.Identifikasi.Kemitraan,
		"identifikasi.lingkungan":         out.Identifikasi.Lingkungan,
		"identifikasi.pemanfaatanDigital": out.Identifikasi.PemanfaatanDigital,
		"identifikasi.mediaAjar":          out.Identifikasi.MediaAjar,
		"asesmen.awal":                    out.Asesmen.Awal,
		"asesmen.proses":                  out.Asesmen.Proses,
		"asesmen.akhir":                   out.Asesmen.Akhir,
		"glosarium":                       out.Glosarium,
		"daftarPustaka":                   out.DaftarPustaka,
	}
	for path, v := range requiredTexts {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("missing required property %q", path)
		}
	}

	if len(out.PengalamanBelajar.PerPertemuan) == 0 {
		return fmt.Errorf("missing required property %q", "pengalamanBelajar.perPertemuan")
	}

	for i, meeting := range out.PengalamanBelajar.PerPertemuan {
		if len(meeting.LangkahSteps) == 0 {
			return fmt.Errorf("pertemuan %d has no steps", meeting.MeetingNumber)
		}
		for j, step := range meeting.LangkahSteps {
			where := fmt.Sprintf("perPertemuan[%d].langkahLangkah[%d]", i, j)
			if strings.TrimSpace(step.Kegiatan) == "" {
				return fmt.Errorf("%s: missing kegiatan", where)
			}
			if strings.TrimSpace(step.Deskripsi) == "" {
				return fmt.Errorf("%s: missing deskripsi", where)
			}
			if len(step.Prinsip) == 0 {
				return fmt.Errorf("%s: empty prinsip tags", where)
			}
		}
	}

	for i, ref := range out.PengalamanBelajar.ReferensiMateri {
		if strings.TrimSpace(ref.Judul) == "" {
			return fmt.Errorf("referensiMateri[%d]: missing judul", i)
		}
	}

	return nil
}

// SessionMismatches reports generated meeting numbers that do not correspond
// to a declared input session. The contract expects exact correspondence, but
// a mismatch is tolerated downstream (the renderer shows what it got), so
// this is diagnostic rather than fatal.
func SessionMismatches(input domain.RPMInput, out domain.RPMGeneratedOutput) []int {
	declared := make(map[int]bool, len(input.PedagogiPerPertemuan))
	for _, m := range input.PedagogiPerPertemuan {
		declared[m.MeetingNumber] = true
	}
	var mismatched []int
	for _, m := range out.PengalamanBelajar.PerPertemuan {
		if !declared[m.MeetingNumber] {
			mismatched = append(mismatched, m.MeetingNumber)
		}
	}
	return mismatched
}
