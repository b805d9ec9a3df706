package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/wellnest-health/wellnest-backend/internal/llm"
)

func TestDiagnose_PersistsFullRecord(t *testing.T) {
	t.Parallel()

	oracle := &stubOracle{results: []stubResult{{text: "Likely a common cold. Rest and fluids."}}}
	store := &memStore{}
	svc := NewDiagnosisService(oracle, store)

	rec, err := svc.Diagnose(context.Background(), "user-1", "runny nose and sore throat")
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if rec.Symptoms != "runny nose and sore throat" || rec.Diagnosis == "" {
		t.Errorf("record incomplete: %+v", rec)
	}
	if rec.ID.IsZero() || rec.CreatedAt.IsZero() {
		t.Error("ID and CreatedAt must be assigned at persistence")
	}
	if !strings.Contains(oracle.prompts[0], "runny nose and sore throat") {
		t.Errorf("prompt missing symptoms: %q", oracle.prompts[0])
	}
}

func TestDiagnose_EmptySymptoms(t *testing.T) {
	t.Parallel()

	oracle := &stubOracle{}
	store := &memStore{}
	svc := NewDiagnosisService(oracle, store)

	_, err := svc.Diagnose(context.Background(), "user-1", "  ")
	if !errors.Is(err, ErrEmptySymptoms) {
		t.Fatalf("err=%v, want ErrEmptySymptoms", err)
	}
	if len(oracle.prompts) != 0 || len(store.diagnoses) != 0 {
		t.Error("validation failure must make zero oracle calls and zero writes")
	}
}

func TestDiagnose_OracleFailureWritesNothing(t *testing.T) {
	t.Parallel()

	oracle := &stubOracle{results: []stubResult{{err: llm.ErrUnavailable}}}
	store := &memStore{}
	svc := NewDiagnosisService(oracle, store)

	_, err := svc.Diagnose(context.Background(), "user-1", "headache")
	if !errors.Is(err, llm.ErrUnavailable) {
		t.Fatalf("err=%v, want ErrUnavailable", err)
	}
	if len(store.diagnoses) != 0 {
		t.Errorf("store has %d records, want 0", len(store.diagnoses))
	}
}

func TestVitalsAnalyze_PersistsFullRecord(t *testing.T) {
	t.Parallel()

	oracle := &stubOracle{results: []stubResult{{text: "Vitals look stable."}}}
	store := &memStore{}
	svc := NewVitalsService(oracle, store)

	in := VitalsInput{BloodPressure: "120/80", SugarLevel: "95", HeartRate: 72, Temperature: 98.6}
	rec, err := svc.Analyze(context.Background(), "user-1", in)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rec.Analysis == "" || rec.BloodPressure != "120/80" || rec.HeartRate != 72 {
		t.Errorf("record incomplete: %+v", rec)
	}

	prompt := oracle.prompts[0]
	for _, want := range []string{"120/80", "95", "72", "98.6"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q: %q", want, prompt)
		}
	}
}

func TestVitalsAnalyze_InvalidMeasurements(t *testing.T) {
	t.Parallel()

	cases := []VitalsInput{
		{BloodPressure: "", SugarLevel: "95", HeartRate: 72, Temperature: 98.6},
		{BloodPressure: "120/80", SugarLevel: " ", HeartRate: 72, Temperature: 98.6},
		{BloodPressure: "120/80", SugarLevel: "95", HeartRate: 0, Temperature: 98.6},
		{BloodPressure: "120/80", SugarLevel: "95", HeartRate: 72, Temperature: -1},
	}

	for i, in := range cases {
		oracle := &stubOracle{}
		store := &memStore{}
		svc := NewVitalsService(oracle, store)

		_, err := svc.Analyze(context.Background(), "user-1", in)
		if !errors.Is(err, ErrInvalidVitals) {
			t.Errorf("case %d: err=%v, want ErrInvalidVitals", i, err)
		}
		if len(oracle.prompts) != 0 || len(store.vitals) != 0 {
			t.Errorf("case %d: validation failure must make zero oracle calls and zero writes", i)
		}
	}
}

func TestVitalsAnalyze_OracleFailureWritesNothing(t *testing.T) {
	t.Parallel()

	oracle := &stubOracle{results: []stubResult{{err: llm.ErrUnavailable}}}
	store := &memStore{}
	svc := NewVitalsService(oracle, store)

	in := VitalsInput{BloodPressure: "120/80", SugarLevel: "95", HeartRate: 72, Temperature: 98.6}
	if _, err := svc.Analyze(context.Background(), "user-1", in); !errors.Is(err, llm.ErrUnavailable) {
		t.Fatalf("err=%v, want ErrUnavailable", err)
	}
	if len(store.vitals) != 0 {
		t.Errorf("store has %d records, want 0", len(store.vitals))
	}
}
