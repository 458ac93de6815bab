package prompts

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rencanalab/rpm-backend/internal/domain"
)

var pjokRE = regexp.MustCompile(`(?i)pjok|olahraga|jasmani|kesehatan`)

// IsPJOKSubject reports whether the subject is a physical-education subject,
// which switches the opening-activity directive from ice breaking to a
// dynamic warm-up.
func IsPJOKSubject(mapel string) bool {
	return pjokRE.MatchString(mapel)
}

// BuildSystem returns the role instruction for the generative service.
func BuildSystem() string {
	return strings.TrimSpace(`
Bertindaklah sebagai pakar Kurikulum Merdeka dan Pembelajaran Mendalam (Deep Learning).
Buatlah Perencanaan Pembelajaran Mendalam (RPM) yang SANGAT DETAIL, PROFESIONAL, dan KOMPREHENSIF.
Hasilkan output JSON yang sangat detail dan sesuai skema.
`)
}

// BuildUser renders the instruction embedding every scalar input field plus
// the presentational directives (numbered lists, emoji, quotes). The
// directives shape the generated prose only; parsing relies solely on the
// response schema.
func BuildUser(input domain.RPMInput) string {
	pedagogies := make([]string, 0, len(input.PedagogiPerPertemuan))
	perMeeting := make([]string, 0, len(input.PedagogiPerPertemuan))
	for _, m := range input.PedagogiPerPertemuan {
		pedagogies = append(pedagogies, string(m.Pedagogy))
		perMeeting = append(perMeeting, fmt.Sprintf("  - Pertemuan %d: %s", m.MeetingNumber, m.Pedagogy))
	}

	dims := make([]string, 0, len(input.DimensiLulusan))
	for _, d := range input.DimensiLulusan {
		dims = append(dims, string(d))
	}

	jurusan := strings.TrimSpace(input.Jurusan)
	if jurusan == "" {
		jurusan = "N/A"
	}

	opening := "Sertakan instruksi detail Ice Breaking di Kegiatan Awal."
	if IsPJOKSubject(input.Mapel) {
		opening = "Sertakan instruksi detail Pemanasan Dinamis di Kegiatan Awal (mapel PJOK)."
	}

	var b strings.Builder
	b.WriteString("DATA INPUT:\n")
	fmt.Fprintf(&b, "- Satuan Pendidikan: %s\n", input.SatuanPendidikan)
	fmt.Fprintf(&b, "- Jenjang: %s, Jurusan: %s\n", input.Jenjang, jurusan)
	fmt.Fprintf(&b, "- Kelas: %s, Mapel: %s, Elemen: %s\n", input.Kelas, input.Mapel, input.Elemen)
	fmt.Fprintf(&b, "- Semester: %s, Tahun Pelajaran: %s\n", input.Semester, input.TahunPelajaran)
	fmt.Fprintf(&b, "- Materi: %s\n", input.Materi)
	fmt.Fprintf(&b, "- CP: %s\n", input.CP)
	fmt.Fprintf(&b, "- TP: %s\n", input.TP)
	fmt.Fprintf(&b, "- Jumlah Pertemuan: %d (@ %s)\n", input.JumlahPertemuan, input.DurasiPertemuan)
	b.WriteString("- Model Pedagogis per Pertemuan:\n")
	b.WriteString(strings.Join(perMeeting, "\n"))
	b.WriteString("\n")
	if len(dims) > 0 {
		fmt.Fprintf(&b, "- Dimensi Lulusan yang dituju: %s\n", strings.Join(dims, ", "))
	}

	b.WriteString("\nINSTRUKSI STRUKTUR TABEL (WAJIB):\n")
	b.WriteString("1. Kolom \"Kegiatan\" HANYA boleh berisi: \"Kegiatan Awal\", \"Kegiatan Inti\", atau \"Kegiatan Penutup\".\n")
	fmt.Fprintf(&b, "2. Kolom \"Fase / Sintak\" berisi: Sintak pedagogis sesuai model %s.\n", strings.Join(pedagogies, ", "))
	b.WriteString("3. Kolom \"Langkah Pembelajaran\":\n")
	b.WriteString("   - WAJIB gunakan format daftar bernomor (1., 2., 3., dst).\n")
	b.WriteString("   - Gunakan baris baru (Enter/Newline) di setiap nomor agar rapi.\n")
	b.WriteString("   - Tambahkan emoji yang relevan di setiap awal poin untuk daya tarik visual.\n")
	fmt.Fprintf(&b, "4. Buat tepat %d pertemuan, dengan meetingNumber 1..%d sesuai model pedagogis di atas.\n",
		input.JumlahPertemuan, input.JumlahPertemuan)

	b.WriteString("\nINSTRUKSI KONTEN KHUSUS:\n")
	fmt.Fprintf(&b, "- KEGIATAN AWAL: %s\n", opening)
	fmt.Fprintf(&b, "- KEGIATAN PENUTUP: Sertakan motivasi berupa QUOTES dari tokoh hebat/ilmuwan/atlet yang berbeda di setiap pertemuan, relevan dengan materi %s.\n", input.Materi)
	b.WriteString("- MEDIA & MATERI: Berikan link YouTube, Portal Guru, atau Game Edukasi (Wordwall/Quizizz/Blooket) yang BENAR-BENAR RELEVAN.\n")

	b.WriteString("\nPRINSIP DEEP LEARNING (Label Indonesia & Inggris):\n")
	b.WriteString("1. Berkesadaran Mindful\n")
	b.WriteString("2. Bermakna Meaningful\n")
	b.WriteString("3. Menggembirakan Joyful\n")

	return b.String()
}
