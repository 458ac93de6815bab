package render

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/rencanalab/rpm-backend/internal/domain"
)

// Badge is one colored principle tag in the step table. Colors are fixed CSS
// literals, safe to emit into a style attribute.
type Badge struct {
	Label     string
	Color     template.CSS
	TextColor template.CSS
}

// PrincipleBadge maps a principle tag to its badge style. Matching is a
// case-insensitive substring check; anything outside the three known values
// gets the fallback style with its raw label, so an out-of-contract tag from
// the generative service renders instead of failing.
func PrincipleBadge(p string) Badge {
	clean := strings.ToLower(p)
	switch {
	case strings.Contains(clean, "berkesadaran"):
		return Badge{Label: "BERKESADARAN", Color: "#4f46e5", TextColor: "#ffffff"}
	case strings.Contains(clean, "bermakna"):
		return Badge{Label: "BERMAKNA", Color: "#059669", TextColor: "#ffffff"}
	case strings.Contains(clean, "menggembirakan"):
		return Badge{Label: "MENGGEMBIRAKAN", Color: "#fbbf24", TextColor: "#000000"}
	default:
		return Badge{Label: strings.ToUpper(p), Color: "#334155", TextColor: "#ffffff"}
	}
}

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDate renders an ISO date as the id-ID long form ("2 Januari 2026").
// An unparseable value passes through verbatim.
func FormatDate(iso string) string {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(iso))
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
}

type stepView struct {
	MeetingNumber int
	Kegiatan      string
	Fase          string
	Deskripsi     string
	Badges        []Badge
}

type sessionView struct {
	MeetingNumber int
	Pedagogy      string
	Steps         []stepView
}

type referenceView struct {
	Tipe      string
	Judul     string
	URL       string
	Deskripsi string
}

type documentView struct {
	SatuanPendidikan string
	Mapel            string
	Materi           string
	Elemen           string
	Kelas            string
	Semester         string
	TahunPelajaran   string
	JumlahPertemuan  int
	DurasiPertemuan  string
	CP               string
	TP               string

	Murid              string
	DimensiLulusan     string
	LintasDisiplin     string
	MediaAjar          string
	PemanfaatanDigital string

	Sessions []sessionView

	AsesmenAwal   string
	AsesmenProses string
	AsesmenAkhir  string
	References    []referenceView
	Glosarium     string
	DaftarPustaka string

	KepalaSekolah string
	NIPKepsek     string
	Guru          string
	NIPGuru       string
	Tempat        string
	Tanggal       string
}

func buildView(data domain.FullRPMData) documentView {
	dims := make([]string, 0, len(data.DimensiLulusan))
	for _, d := range data.DimensiLulusan {
		dims = append(dims, string(d))
	}

	sessions := make([]sessionView, 0, len(data.PengalamanBelajar.PerPertemuan))
	for _, meeting := range data.PengalamanBelajar.PerPertemuan {
		steps := make([]stepView, 0, len(meeting.LangkahSteps))
		for _, step := range meeting.LangkahSteps {
			badges := make([]Badge, 0, len(step.Prinsip))
			for _, p := range step.Prinsip {
				badges = append(badges, PrincipleBadge(string(p)))
			}
			steps = append(steps, stepView{
				MeetingNumber: meeting.MeetingNumber,
				Kegiatan:      strings.ToUpper(step.Kegiatan),
				Fase:          step.Fase,
				Deskripsi:     step.Deskripsi,
				Badges:        badges,
			})
		}
		sessions = append(sessions, sessionView{
			MeetingNumber: meeting.MeetingNumber,
			Pedagogy:      meeting.Pedagogy,
			Steps:         steps,
		})
	}

	refs := make([]referenceView, 0, len(data.PengalamanBelajar.ReferensiMateri))
	for _, r := range data.PengalamanBelajar.ReferensiMateri {
		refs = append(refs, referenceView{
			Tipe:      r.Tipe,
			Judul:     r.Judul,
			URL:       r.URL,
			Deskripsi: r.Deskripsi,
		})
	}

	elemen := data.Elemen
	if strings.TrimSpace(elemen) == "" {
		elemen = "-"
	}

	return documentView{
		SatuanPendidikan:   data.SatuanPendidikan,
		Mapel:              data.Mapel,
		Materi:             data.Materi,
		Elemen:             elemen,
		Kelas:              data.Kelas,
		Semester:           data.Semester,
		TahunPelajaran:     data.TahunPelajaran,
		JumlahPertemuan:    data.JumlahPertemuan,
		DurasiPertemuan:    data.DurasiPertemuan,
		CP:                 data.CP,
		TP:                 data.TP,
		Murid:              data.Identifikasi.Murid,
		DimensiLulusan:     strings.Join(dims, ", "),
		LintasDisiplin:     data.Identifikasi.LintasDisiplin,
		MediaAjar:          data.Identifikasi.MediaAjar,
		PemanfaatanDigital: data.Identifikasi.PemanfaatanDigital,
		Sessions:           sessions,
		AsesmenAwal:        data.Asesmen.Awal,
		AsesmenProses:      data.Asesmen.Proses,
		AsesmenAkhir:       data.Asesmen.Akhir,
		References:         refs,
		Glosarium:          data.Glosarium,
		DaftarPustaka:      data.DaftarPustaka,
		KepalaSekolah:      strings.ToUpper(data.NamaKepalaSekolah),
		NIPKepsek:          data.NIPKepalaSekolah,
		Guru:               strings.ToUpper(data.NamaGuru),
		NIPGuru:            data.NIPGuru,
		Tempat:             data.Tempat,
		Tanggal:            FormatDate(data.Tanggal),
	}
}

var documentTmpl = template.Must(template.New("rpm").Parse(documentTemplate))

// Render serializes the merged plan into the printable HTML document. It is a
// pure transformation: identical input produces byte-identical output. The
// markup is self-contained (inline styles) so it survives a clipboard paste
// into a document editor.
func Render(data domain.FullRPMData) (string, error) {
	var b strings.Builder
	if err := documentTmpl.Execute(&b, buildView(data)); err != nil {
		return "", fmt.Errorf("render rpm document: %w", err)
	}
	return b.String(), nil
}
