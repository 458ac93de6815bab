package prompts

import (
	"strings"
	"testing"

	"github.com/rencanalab/rpm-backend/internal/domain"
)

func TestIsPJOKSubject(t *testing.T) {
	cases := []struct {
		mapel string
		want  bool
	}{
		{"PJOK", true},
		{"Pendidikan Jasmani", true},
		{"pendidikan OLAHRAGA dan kesehatan", true},
		{"Matematika", false},
		{"IPA", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsPJOKSubject(tc.mapel); got != tc.want {
			t.Fatalf("IsPJOKSubject(%q) = %v, want %v", tc.mapel, got, tc.want)
		}
	}
}

func sampleInput() domain.RPMInput {
	return domain.RPMInput{
		SatuanPendidikan: "SDN 1 Merdeka",
		Jenjang:          domain.LevelSD,
		Kelas:            "V",
		Mapel:            "IPA",
		Elemen:           "Makhluk hidup",
		CP:               "Peserta didik memahami ekosistem.",
		TP:               "Menjelaskan rantai makanan.",
		Materi:           "Ekosistem Sawah",
		Semester:         "Ganjil",
		TahunPelajaran:   "2025/2026",
		JumlahPertemuan:  2,
		DurasiPertemuan:  "2 x 35 menit",
		PedagogiPerPertemuan: []domain.MeetingConfig{
			{MeetingNumber: 1, Pedagogy: domain.PracticeInkuiri},
			{MeetingNumber: 2, Pedagogy: domain.PracticePjBL},
		},
		DimensiLulusan: []domain.GraduateDimension{
			domain.DimensionPenalaran,
			domain.DimensionKolaborasi,
		},
	}
}

func TestBuildUserEmbedsEveryInputField(t *testing.T) {
	got := BuildUser(sampleInput())

	for _, want := range []string{
		"SDN 1 Merdeka",
		"Jenjang: SD",
		"Kelas: V",
		"Mapel: IPA",
		"Ekosistem Sawah",
		"Peserta didik memahami ekosistem.",
		"Menjelaskan rantai makanan.",
		"Jumlah Pertemuan: 2 (@ 2 x 35 menit)",
		"Pertemuan 1: Inkuiri-Discovery",
		"Pertemuan 2: PjBL (Project Based Learning)",
		"Penalaran Kritis, Kolaborasi",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("prompt missing %q:\n%s", want, got)
		}
	}
}

func TestBuildUserPhaseLiteralsAndDirectives(t *testing.T) {
	got := BuildUser(sampleInput())

	for _, want := range []string{
		`"Kegiatan Awal"`,
		`"Kegiatan Inti"`,
		`"Kegiatan Penutup"`,
		"Ice Breaking",
		"QUOTES",
		"Wordwall/Quizizz/Blooket",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestBuildUserSwitchesWarmupForPJOK(t *testing.T) {
	in := sampleInput()
	in.Mapel = "PJOK"

	got := BuildUser(in)
	if !strings.Contains(got, "Pemanasan Dinamis") {
		t.Fatalf("expected PJOK warm-up directive:\n%s", got)
	}
	if strings.Contains(got, "Ice Breaking") {
		t.Fatal("ice-breaking directive should be replaced for PJOK")
	}
}

func TestBuildUserBlankJurusanBecomesNA(t *testing.T) {
	in := sampleInput()
	in.Jurusan = "  "

	if got := BuildUser(in); !strings.Contains(got, "Jurusan: N/A") {
		t.Fatalf("expected N/A jurusan:\n%s", got)
	}
}
