package form

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rencanalab/rpm-backend/internal/domain"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC), 12)
}

func TestNewDefaultInput(t *testing.T) {
	in := NewDefaultInput(time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC))
	if in.Jenjang != domain.LevelSD {
		t.Fatalf("unexpected jenjang: %#v", in.Jenjang)
	}
	if in.Semester != "Ganjil" || in.TahunPelajaran != "2025/2026" {
		t.Fatalf("unexpected defaults: %#v", in)
	}
	if in.Tanggal != "2025-07-14" {
		t.Fatalf("unexpected tanggal: %q", in.Tanggal)
	}
	if in.JumlahPertemuan != 1 || len(in.PedagogiPerPertemuan) != 1 {
		t.Fatalf("unexpected session setup: %#v", in)
	}
	if in.PedagogiPerPertemuan[0].Pedagogy != domain.DefaultPractice {
		t.Fatalf("unexpected default pedagogy: %#v", in.PedagogiPerPertemuan[0])
	}
}

func TestSetFieldReplacesOnlyNamedField(t *testing.T) {
	s := newTestSession(t)
	if err := s.SetField("mapel", "Matematika"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SetField("namaGuru", "Budi Santoso"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap := s.Snapshot()
	if snap.Input.Mapel != "Matematika" || snap.Input.NamaGuru != "Budi Santoso" {
		t.Fatalf("fields not applied: %#v", snap.Input)
	}
	if snap.Input.Semester != "Ganjil" {
		t.Fatalf("unrelated field changed: %#v", snap.Input)
	}
}

func TestSetFieldRejectsInvalidEnum(t *testing.T) {
	s := newTestSession(t)
	if err := s.SetField("jenjang", "Universitas"); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if err := s.SetField("noSuchField", "x"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestSetSessionCountGrowPreservesAndAppendsDefaults(t *testing.T) {
	s := newTestSession(t)
	s.SetSessionCount(2)
	if err := s.SetMeetingPedagogy(2, string(domain.PracticePjBL)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := s.SetSessionCount(4)
	if in.JumlahPertemuan != 4 || len(in.PedagogiPerPertemuan) != 4 {
		t.Fatalf("unexpected session list: %#v", in.PedagogiPerPertemuan)
	}
	if in.PedagogiPerPertemuan[1].Pedagogy != domain.PracticePjBL {
		t.Fatalf("existing assignment lost: %#v", in.PedagogiPerPertemuan[1])
	}
	for i := 2; i < 4; i++ {
		m := in.PedagogiPerPertemuan[i]
		if m.MeetingNumber != i+1 || m.Pedagogy != domain.DefaultPractice {
			t.Fatalf("new session %d not defaulted: %#v", i+1, m)
		}
	}
}

func TestSetSessionCountShrinkTruncates(t *testing.T) {
	s := newTestSession(t)
	s.SetSessionCount(5)
	if err := s.SetMeetingPedagogy(1, string(domain.PracticeProblemBased)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := s.SetSessionCount(2)
	if len(in.PedagogiPerPertemuan) != 2 {
		t.Fatalf("unexpected session list: %#v", in.PedagogiPerPertemuan)
	}
	if in.PedagogiPerPertemuan[0].Pedagogy != domain.PracticeProblemBased {
		t.Fatalf("surviving assignment lost: %#v", in.PedagogiPerPertemuan[0])
	}
}

func TestSetSessionCountClamps(t *testing.T) {
	s := newTestSession(t)
	if in := s.SetSessionCount(0); in.JumlahPertemuan != 1 {
		t.Fatalf("expected clamp to 1, got %d", in.JumlahPertemuan)
	}
	if in := s.SetSessionCount(99); in.JumlahPertemuan != 12 {
		t.Fatalf("expected clamp to 12, got %d", in.JumlahPertemuan)
	}
}

func TestToggleDimensionSymmetricDifference(t *testing.T) {
	s := newTestSession(t)
	a := string(domain.DimensionPenalaran)
	b := string(domain.DimensionKreativitas)

	if err := s.ToggleDimension(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.ToggleDimension(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.ToggleDimension(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := s.Snapshot().Input.DimensiLulusan
	if len(got) != 1 || got[0] != domain.DimensionKreativitas {
		t.Fatalf("unexpected selection: %#v", got)
	}

	if err := s.ToggleDimension("Kesaktian"); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

type stubGenerator struct {
	mu      sync.Mutex
	calls   int
	release chan struct{}
	out     domain.RPMGeneratedOutput
	err     error
}

func (g *stubGenerator) Generate(ctx context.Context, in domain.RPMInput) (domain.RPMGeneratedOutput, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	if g.release != nil {
		<-g.release
	}
	return g.out, g.err
}

func minimalOutput() domain.RPMGeneratedOutput {
	return domain.RPMGeneratedOutput{
		Identifikasi: domain.Identification{Topik: "Ekosistem"},
		PengalamanBelajar: domain.LearningExperience{
			PerPertemuan: []domain.MeetingExperience{{
				MeetingNumber: 1,
				Pedagogy:      string(domain.DefaultPractice),
				LangkahSteps: []domain.StepDetail{{
					Kegiatan:  string(domain.PhaseOpening),
					Deskripsi: "1. Guru membuka pembelajaran.",
					Prinsip:   []domain.DeepLearningPrinciple{domain.PrincipleBerkesadaran},
				}},
			}},
		},
		Glosarium:     "istilah: makna",
		DaftarPustaka: "Kemdikbud. 2024.",
	}
}

func TestSubmitSuccessMergesInputAndOutput(t *testing.T) {
	s := newTestSession(t)
	if err := s.SetField("mapel", "IPA"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gen := &stubGenerator{out: minimalOutput()}

	full, err := s.Submit(context.Background(), gen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if full.Mapel != "IPA" {
		t.Fatalf("input not merged: %#v", full.RPMInput)
	}
	if full.Identifikasi.Topik != "Ekosistem" {
		t.Fatalf("output not merged: %#v", full.RPMGeneratedOutput)
	}

	snap := s.Snapshot()
	if snap.Loading || snap.Error != "" || !snap.HasResult {
		t.Fatalf("unexpected snapshot after success: %#v", snap)
	}
}

func TestSubmitFailureKeepsPriorResult(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.Submit(context.Background(), &stubGenerator{out: minimalOutput()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	boom := errors.New("upstream unavailable")
	if _, err := s.Submit(context.Background(), &stubGenerator{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped upstream error, got %v", err)
	}

	snap := s.Snapshot()
	if snap.Error != GenerationFailedMessage {
		t.Fatalf("unexpected error message: %q", snap.Error)
	}
	if !snap.HasResult || snap.Result.Identifikasi.Topik != "Ekosistem" {
		t.Fatalf("prior result lost: %#v", snap)
	}
	if snap.Loading {
		t.Fatalf("loading flag not cleared: %#v", snap)
	}
}

func TestSubmitRejectsOverlappingRequests(t *testing.T) {
	s := newTestSession(t)
	gen := &stubGenerator{out: minimalOutput(), release: make(chan struct{})}

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background(), gen)
		done <- err
	}()

	deadline := time.After(2 * time.Second)
	for {
		if s.Snapshot().Loading {
			break
		}
		select {
		case <-deadline:
			t.Fatal("first submission never entered flight")
		case <-time.After(5 * time.Millisecond):
		}
	}

	if _, err := s.Submit(context.Background(), gen); !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
	}

	close(gen.release)
	if err := <-done; err != nil {
		t.Fatalf("first submission failed: %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("generator called %d times", gen.calls)
	}
}

func TestStoreSessionsAreIsolatedPerUser(t *testing.T) {
	st := NewStore(12)
	now := time.Now()

	a := st.GetOrCreate("User01", now)
	b := st.GetOrCreate("user02", now)
	if a == b {
		t.Fatal("distinct users shared a session")
	}
	if again := st.GetOrCreate("USER01", now); again != a {
		t.Fatal("username lookup is not case-insensitive")
	}
}
