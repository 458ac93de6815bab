package prompts

import (
	"reflect"
	"testing"
)

func TestRPMOutputSchemaTopLevel(t *testing.T) {
	schema := RPMOutputSchema()

	if schema["type"] != "OBJECT" {
		t.Fatalf("unexpected type: %#v", schema["type"])
	}
	wantRequired := []string{"identifikasi", "pengalamanBelajar", "asesmen", "glosarium", "daftarPustaka"}
	if got := schema["required"]; !reflect.DeepEqual(got, wantRequired) {
		t.Fatalf("unexpected required list: %#v", got)
	}

	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatalf("unexpected properties: %#v", schema["properties"])
	}
	for _, key := range wantRequired {
		if _, ok := props[key]; !ok {
			t.Fatalf("missing property %q", key)
		}
	}
}

func TestStepSchemaConstraints(t *testing.T) {
	step := StepSchema()
	props := step["properties"].(map[string]any)

	kegiatan := props["kegiatan"].(map[string]any)
	wantPhases := []string{"Kegiatan Awal", "Kegiatan Inti", "Kegiatan Penutup"}
	if got := kegiatan["enum"]; !reflect.DeepEqual(got, wantPhases) {
		t.Fatalf("unexpected kegiatan enum: %#v", got)
	}

	prinsip := props["prinsip"].(map[string]any)
	if prinsip["minItems"] != 1 {
		t.Fatalf("unexpected prinsip minItems: %#v", prinsip["minItems"])
	}
	items := prinsip["items"].(map[string]any)
	wantPrinciples := []string{"Berkesadaran", "Bermakna", "Menggembirakan"}
	if got := items["enum"]; !reflect.DeepEqual(got, wantPrinciples) {
		t.Fatalf("unexpected prinsip enum: %#v", got)
	}
}

func TestMeetingExperienceSchemaUsesWireNames(t *testing.T) {
	props := MeetingExperienceSchema()["properties"].(map[string]any)
	for _, key := range []string{"meetingNumber", "pedagogy", "langkahLangkah"} {
		if _, ok := props[key]; !ok {
			t.Fatalf("missing property %q: %#v", key, props)
		}
	}
}
