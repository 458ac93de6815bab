package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rencanalab/rpm-backend/internal/domain"
)

// GenerationFailedMessage is the single user-facing message for every
// generation failure category.
const GenerationFailedMessage = "Gagal menghasilkan RPM. Silakan coba lagi nanti."

var (
	// ErrSubmissionInFlight rejects overlapping submissions: the client has
	// no cancellation or de-duplication mechanism, so a second request while
	// one is pending is refused outright.
	ErrSubmissionInFlight = errors.New("a generation request is already in flight")

	ErrUnknownField = errors.New("unknown form field")
	ErrInvalidValue = errors.New("invalid field value")
)

// Generator is the structured-generation dependency of a form session.
type Generator interface {
	Generate(ctx context.Context, input domain.RPMInput) (domain.RPMGeneratedOutput, error)
}

// Session owns one teacher's draft RPMInput and the loading/error/result
// cell around it. All mutations are whole-value field replacements guarded by
// the session mutex.
type Session struct {
	mu          sync.Mutex
	maxSessions int

	input   domain.RPMInput
	loading bool
	lastErr string
	result  *domain.FullRPMData
}

// NewDefaultInput builds the draft a session starts from.
func NewDefaultInput(now time.Time) domain.RPMInput {
	return domain.RPMInput{
		Jenjang:         domain.LevelSD,
		Semester:        "Ganjil",
		TahunPelajaran:  "2025/2026",
		Tanggal:         now.Format("2006-01-02"),
		JumlahPertemuan: 1,
		PedagogiPerPertemuan: []domain.MeetingConfig{
			{MeetingNumber: 1, Pedagogy: domain.DefaultPractice},
		},
		DimensiLulusan: []domain.GraduateDimension{},
	}
}

func NewSession(now time.Time, maxSessions int) *Session {
	if maxSessions < 1 {
		maxSessions = 1
	}
	return &Session{
		maxSessions: maxSessions,
		input:       NewDefaultInput(now),
	}
}

// cloneInput copies the draft including its slices, so a frozen request or a
// snapshot never shares backing arrays with the live draft.
func cloneInput(in domain.RPMInput) domain.RPMInput {
	out := in
	out.PedagogiPerPertemuan = append([]domain.MeetingConfig(nil), in.PedagogiPerPertemuan...)
	out.DimensiLulusan = append([]domain.GraduateDimension(nil), in.DimensiLulusan...)
	return out
}

// Snapshot is the read model handed to the UI.
type Snapshot struct {
	Input     domain.RPMInput     `json:"input"`
	Loading   bool                `json:"loading"`
	Error     string              `json:"error,omitempty"`
	HasResult bool                `json:"hasResult"`
	Result    *domain.FullRPMData `json:"result,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Input:     cloneInput(s.input),
		Loading:   s.loading,
		Error:     s.lastErr,
		HasResult: s.result != nil,
	}
	if s.result != nil {
		res := *s.result
		snap.Result = &res
	}
	return snap
}

// Result returns the last successful generation, if any.
func (s *Session) Result() (domain.FullRPMData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return domain.FullRPMData{}, false
	}
	return *s.result, true
}

// SetField replaces exactly one named scalar field; all other fields are
// untouched. Field names are the wire (JSON) names.
func (s *Session) SetField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch name {
	case "satuanPendidikan":
		s.input.SatuanPendidikan = value
	case "namaGuru":
		s.input.NamaGuru = value
	case "nipGuru":
		s.input.NIPGuru = value
	case "namaKepalaSekolah":
		s.input.NamaKepalaSekolah = value
	case "nipKepalaSekolah":
		s.input.NIPKepalaSekolah = value
	case "jenjang":
		if !domain.ValidEducationLevel(value) {
			return fmt.Errorf("%w: jenjang %q", ErrInvalidValue, value)
		}
		s.input.Jenjang = domain.EducationLevel(value)
	case "jurusan":
		s.input.Jurusan = value
	case "kelas":
		s.input.Kelas = value
	case "mapel":
		s.input.Mapel = value
	case "elemen":
		s.input.Elemen = value
	case "cp":
		s.input.CP = value
	case "tp":
		s.input.TP = value
	case "materi":
		s.input.Materi = value
	case "semester":
		if !domain.ValidSemester(value) {
			return fmt.Errorf("%w: semester %q", ErrInvalidValue, value)
		}
		s.input.Semester = value
	case "tahunPelajaran":
		s.input.TahunPelajaran = value
	case "tempat":
		s.input.Tempat = value
	case "tanggal":
		s.input.Tanggal = value
	case "durasiPertemuan":
		s.input.DurasiPertemuan = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// SetSessionCount clamps the requested count to [1, max] and re-derives the
// per-session pedagogy list: entries up to min(old, new) keep their
// assignment, new indices get the default practice, indices beyond the new
// count are dropped. Existing assignments are never reordered.
func (s *Session) SetSessionCount(n int) domain.RPMInput {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n < 1 {
		n = 1
	}
	if n > s.maxSessions {
		n = s.maxSessions
	}

	newList := make([]domain.MeetingConfig, 0, n)
	for i := 1; i <= n; i++ {
		if i <= len(s.input.PedagogiPerPertemuan) {
			newList = append(newList, s.input.PedagogiPerPertemuan[i-1])
			continue
		}
		newList = append(newList, domain.MeetingConfig{
			MeetingNumber: i,
			Pedagogy:      domain.DefaultPractice,
		})
	}

	s.input.JumlahPertemuan = n
	s.input.PedagogiPerPertemuan = newList
	return cloneInput(s.input)
}

// SetMeetingPedagogy replaces the practice assigned to one session.
func (s *Session) SetMeetingPedagogy(meetingNumber int, pedagogy string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !domain.ValidPedagogicalPractice(pedagogy) {
		return fmt.Errorf("%w: pedagogy %q", ErrInvalidValue, pedagogy)
	}
	for i, m := range s.input.PedagogiPerPertemuan {
		if m.MeetingNumber == meetingNumber {
			s.input.PedagogiPerPertemuan[i].Pedagogy = domain.PedagogicalPractice(pedagogy)
			return nil
		}
	}
	return fmt.Errorf("%w: no session %d", ErrInvalidValue, meetingNumber)
}

// ToggleDimension applies symmetric-difference semantics: toggling a selected
// dimension removes it, otherwise it is appended. Order of the remaining
// selection is preserved; it carries no semantic weight.
func (s *Session) ToggleDimension(dim string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !domain.ValidGraduateDimension(dim) {
		return fmt.Errorf("%w: dimension %q", ErrInvalidValue, dim)
	}
	d := domain.GraduateDimension(dim)
	for i, existing := range s.input.DimensiLulusan {
		if existing == d {
			s.input.DimensiLulusan = append(
				s.input.DimensiLulusan[:i:i],
				s.input.DimensiLulusan[i+1:]...,
			)
			return nil
		}
	}
	s.input.DimensiLulusan = append(s.input.DimensiLulusan, d)
	return nil
}

// Submit freezes the current input into a request, invokes the generator,
// and on success replaces the merged result wholesale. A failure records the
// single user-facing message and leaves any prior result untouched. The
// loading flag is cleared on every path.
func (s *Session) Submit(ctx context.Context, gen Generator) (domain.FullRPMData, error) {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return domain.FullRPMData{}, ErrSubmissionInFlight
	}
	s.loading = true
	s.lastErr = ""
	frozen := cloneInput(s.input)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	out, err := gen.Generate(ctx, frozen)
	if err != nil {
		s.mu.Lock()
		s.lastErr = GenerationFailedMessage
		s.mu.Unlock()
		return domain.FullRPMData{}, err
	}

	full := domain.FullRPMData{RPMInput: frozen, RPMGeneratedOutput: out}
	s.mu.Lock()
	s.result = &full
	s.mu.Unlock()
	return full, nil
}

// Replace swaps the whole draft, used by the stateless API path and by
// clients that edit locally and sync in one shot.
func (s *Session) Replace(input domain.RPMInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = cloneInput(input)
}

// Store keys sessions by principal username (case-insensitive, matching the
// access gate).
type Store struct {
	mu          sync.Mutex
	maxSessions int
	sessions    map[string]*Session
}

func NewStore(maxSessions int) *Store {
	return &Store{
		maxSessions: maxSessions,
		sessions:    map[string]*Session{},
	}
}

func (st *Store) GetOrCreate(username string, now time.Time) *Session {
	key := strings.ToLower(strings.TrimSpace(username))
	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[key]; ok {
		return s
	}
	s := NewSession(now, st.maxSessions)
	st.sessions[key] = s
	return s
}

func (st *Store) MaxSessions() int { return st.maxSessions }
