package validation

import (
	"testing"

	"github.com/rencanalab/rpm-backend/internal/domain"
)

func validInput() domain.RPMInput {
	return domain.RPMInput{
		Jenjang:         domain.LevelSMA,
		Semester:        "Genap",
		JumlahPertemuan: 2,
		PedagogiPerPertemuan: []domain.MeetingConfig{
			{MeetingNumber: 1, Pedagogy: domain.PracticeInkuiri},
			{MeetingNumber: 2, Pedagogy: domain.PracticeGameBased},
		},
		DimensiLulusan: []domain.GraduateDimension{domain.DimensionKemandirian},
	}
}

func TestValidInputPasses(t *testing.T) {
	if err := New().Struct(validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRejectsBadEnumValues(t *testing.T) {
	v := New()

	in := validInput()
	in.Jenjang = "Universitas"
	if err := v.Struct(in); err == nil {
		t.Fatal("expected jenjang violation")
	}

	in = validInput()
	in.Semester = "Ketiga"
	if err := v.Struct(in); err == nil {
		t.Fatal("expected semester violation")
	}

	in = validInput()
	in.PedagogiPerPertemuan[0].Pedagogy = "Ceramah"
	if err := v.Struct(in); err == nil {
		t.Fatal("expected pedagogy violation")
	}

	in = validInput()
	in.DimensiLulusan = []domain.GraduateDimension{"Kesaktian"}
	if err := v.Struct(in); err == nil {
		t.Fatal("expected dimension violation")
	}
}

func TestRejectsSessionListMismatch(t *testing.T) {
	v := New()

	in := validInput()
	in.JumlahPertemuan = 3
	if err := v.Struct(in); err == nil {
		t.Fatal("expected session list length violation")
	}

	in = validInput()
	in.JumlahPertemuan = 0
	in.PedagogiPerPertemuan = nil
	if err := v.Struct(in); err == nil {
		t.Fatal("expected minimum session violation")
	}
}
