package domain

// Domain model for the RPM (Rencana Pembelajaran Mendalam) generator.
// JSON keys follow the Indonesian curriculum vocabulary; they are the wire
// contract shared with the browser client and with the generative service.

type EducationLevel string

const (
	LevelSD  EducationLevel = "SD"
	LevelSMP EducationLevel = "SMP"
	LevelSMA EducationLevel = "SMA"
	LevelSMK EducationLevel = "SMK"
)

func EducationLevels() []EducationLevel {
	return []EducationLevel{LevelSD, LevelSMP, LevelSMA, LevelSMK}
}

type PedagogicalPractice string

const (
	PracticeInkuiri        PedagogicalPractice = "Inkuiri-Discovery"
	PracticePjBL           PedagogicalPractice = "PjBL (Project Based Learning)"
	PracticeProblemSolving PedagogicalPractice = "Problem Solving"
	PracticeProblemBased   PedagogicalPractice = "Problem Based Learning"
	PracticeGameBased      PedagogicalPractice = "Game Based Learning"
	PracticeStation        PedagogicalPractice = "Station Learning"
)

// DefaultPractice is assigned to sessions created by a session-count grow.
const DefaultPractice = PracticeInkuiri

func PedagogicalPractices() []PedagogicalPractice {
	return []PedagogicalPractice{
		PracticeInkuiri,
		PracticePjBL,
		PracticeProblemSolving,
		PracticeProblemBased,
		PracticeGameBased,
		PracticeStation,
	}
}

type GraduateDimension string

const (
	DimensionKeimanan    GraduateDimension = "Keimanan & Ketakwaan"
	DimensionKewargaan   GraduateDimension = "Kewargaan"
	DimensionPenalaran   GraduateDimension = "Penalaran Kritis"
	DimensionKreativitas GraduateDimension = "Kreativitas"
	DimensionKolaborasi  GraduateDimension = "Kolaborasi"
	DimensionKemandirian GraduateDimension = "Kemandirian"
	DimensionKesehatan   GraduateDimension = "Kesehatan"
	DimensionKomunikasi  GraduateDimension = "Komunikasi"
)

func GraduateDimensions() []GraduateDimension {
	return []GraduateDimension{
		DimensionKeimanan,
		DimensionKewargaan,
		DimensionPenalaran,
		DimensionKreativitas,
		DimensionKolaborasi,
		DimensionKemandirian,
		DimensionKesehatan,
		DimensionKomunikasi,
	}
}

// DeepLearningPrinciple is one of the three qualitative tags attached to
// every instructional step.
type DeepLearningPrinciple string

const (
	PrincipleBerkesadaran   DeepLearningPrinciple = "Berkesadaran"
	PrincipleBermakna       DeepLearningPrinciple = "Bermakna"
	PrincipleMenggembirakan DeepLearningPrinciple = "Menggembirakan"
)

func DeepLearningPrinciples() []DeepLearningPrinciple {
	return []DeepLearningPrinciple{PrincipleBerkesadaran, PrincipleBermakna, PrincipleMenggembirakan}
}

// ActivityPhase is the step's place within a session. The generative service
// is contractually limited to these three literals; the renderer treats
// anything else as an unrecognized value and falls back softly.
type ActivityPhase string

const (
	PhaseOpening ActivityPhase = "Kegiatan Awal"
	PhaseMain    ActivityPhase = "Kegiatan Inti"
	PhaseClosing ActivityPhase = "Kegiatan Penutup"
)

func ActivityPhases() []ActivityPhase {
	return []ActivityPhase{PhaseOpening, PhaseMain, PhaseClosing}
}

type MaterialType string

const (
	MaterialVideo   MaterialType = "Video"
	MaterialArtikel MaterialType = "Artikel"
	MaterialGambar  MaterialType = "Gambar"
	MaterialEBook   MaterialType = "E-Book"
	MaterialLKPD    MaterialType = "LKPD"
	MaterialGame    MaterialType = "Game Edukasi"
)

// MeetingConfig assigns a pedagogical practice to one numbered session.
type MeetingConfig struct {
	MeetingNumber int                 `json:"meetingNumber"`
	Pedagogy      PedagogicalPractice `json:"pedagogy"`
}

// RPMInput is the teacher-authored half of the plan.
type RPMInput struct {
	SatuanPendidikan  string         `json:"satuanPendidikan"`
	NamaGuru          string         `json:"namaGuru"`
	NIPGuru           string         `json:"nipGuru"`
	NamaKepalaSekolah string         `json:"namaKepalaSekolah"`
	NIPKepalaSekolah  string         `json:"nipKepalaSekolah"`
	Jenjang           EducationLevel `json:"jenjang"`
	Jurusan           string         `json:"jurusan"`
	Kelas             string         `json:"kelas"`
	Mapel             string         `json:"mapel"`
	Elemen            string         `json:"elemen"`
	CP                string         `json:"cp"`
	TP                string         `json:"tp"`
	Materi            string         `json:"materi"`
	Semester          string         `json:"semester"`
	TahunPelajaran    string         `json:"tahunPelajaran"`
	Tempat            string         `json:"tempat"`
	Tanggal           string         `json:"tanggal"`
	JumlahPertemuan   int            `json:"jumlahPertemuan"`
	DurasiPertemuan   string         `json:"durasiPertemuan"`

	PedagogiPerPertemuan []MeetingConfig     `json:"pedagogiPerPertemuan"`
	DimensiLulusan       []GraduateDimension `json:"dimensiLulusan"`
}

// StepDetail is one row of a session's learning-experience table.
type StepDetail struct {
	Kegiatan  string                  `json:"kegiatan"`
	Fase      string                  `json:"fase"`
	Deskripsi string                  `json:"deskripsi"`
	Prinsip   []DeepLearningPrinciple `json:"prinsip"`
}

// MeetingExperience is the generated step sequence for one session.
type MeetingExperience struct {
	MeetingNumber int          `json:"meetingNumber"`
	Pedagogy      string       `json:"pedagogy"`
	LangkahSteps  []StepDetail `json:"langkahLangkah"`
}

type MaterialReference struct {
	Judul     string `json:"judul"`
	URL       string `json:"url"`
	Tipe      string `json:"tipe"`
	Deskripsi string `json:"deskripsi"`
}

type Identification struct {
	Murid              string `json:"murid"`
	LintasDisiplin     string `json:"lintasDisiplin"`
	Topik              string `json:"topik"`
	Kemitraan          string `json:"kemitraan"`
	Lingkungan         string `json:"lingkungan"`
	PemanfaatanDigital string `json:"pemanfaatanDigital"`
	MediaAjar          string `json:"mediaAjar"`
}

type LearningExperience struct {
	PerPertemuan    []MeetingExperience `json:"perPertemuan"`
	ReferensiMateri []MaterialReference `json:"referensiMateri"`
	LKPDDigital     string              `json:"lkpdDigital"`
	GameEdukasi     string              `json:"gameEdukasi"`
}

type Assessment struct {
	Awal   string `json:"awal"`
	Proses string `json:"proses"`
	Akhir  string `json:"akhir"`
}

// RPMGeneratedOutput is the model-authored half of the plan, schema-validated
// before it ever reaches the renderer.
type RPMGeneratedOutput struct {
	Identifikasi      Identification     `json:"identifikasi"`
	PengalamanBelajar LearningExperience `json:"pengalamanBelajar"`
	Asesmen           Assessment         `json:"asesmen"`
	Glosarium         string             `json:"glosarium"`
	DaftarPustaka     string             `json:"daftarPustaka"`
}

// FullRPMData is the immutable union assembled once generation succeeds.
// It is replaced wholesale on the next successful generation.
type FullRPMData struct {
	RPMInput
	RPMGeneratedOutput
}

func ValidEducationLevel(v string) bool {
	for _, l := range EducationLevels() {
		if string(l) == v {
			return true
		}
	}
	return false
}

func ValidPedagogicalPractice(v string) bool {
	for _, p := range PedagogicalPractices() {
		if string(p) == v {
			return true
		}
	}
	return false
}

func ValidGraduateDimension(v string) bool {
	for _, d := range GraduateDimensions() {
		if string(d) == v {
			return true
		}
	}
	return false
}

func ValidSemester(v string) bool {
	return v == "Ganjil" || v == "Genap"
}
