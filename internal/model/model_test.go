package model_test

import (
	"encoding/json"
	"testing"

	"dentalflow/internal/model"
)

func TestNewUserLinkRule(t *testing.T) {
	tests := []struct {
		name      string
		isAdmin   bool
		patientID string
		wantErr   bool
	}{
		{"admin without link", true, "", false},
		{"admin with link", true, "p1", true},
		{"patient with link", false, "p1", false},
		{"patient without link", false, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.NewUser("u9", "X", "x@example.com", "digest", tt.isAdmin, tt.patientID)
			if (err != nil) != tt.wantErr {
				t.Errorf("got err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestNewPatientValidation(t *testing.T) {
	if _, err := model.NewPatient("", "1990-05-10", "555", ""); err == nil {
		t.Error("expected error for missing name")
	}
	if _, err := model.NewPatient("X", "10/05/1990", "555", ""); err == nil {
		t.Error("expected error for bad dob")
	}
	p, err := model.NewPatient("X", "1990-05-10", "555", "none")
	if err != nil {
		t.Fatalf("valid patient: %v", err)
	}
	if p.ID != "" {
		t.Errorf("id should be unassigned, got %q", p.ID)
	}
}

func TestNewIncidentValidation(t *testing.T) {
	tests := []struct {
		name      string
		patientID string
		title     string
		date      string
		cost      float64
		status    model.Status
		wantErr   bool
	}{
		{"valid", "p1", "Checkup", "2025-07-01T10:00:00", 50, model.StatusScheduled, false},
		{"missing patient", "", "Checkup", "2025-07-01T10:00:00", 50, model.StatusScheduled, true},
		{"missing title", "p1", "", "2025-07-01T10:00:00", 50, model.StatusScheduled, true},
		{"bad date", "p1", "Checkup", "July 1st", 50, model.StatusScheduled, true},
		{"negative cost", "p1", "Checkup", "2025-07-01T10:00:00", -5, model.StatusScheduled, true},
		{"unknown status", "p1", "Checkup", "2025-07-01T10:00:00", 50, model.Status("Done"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.NewIncident(tt.patientID, tt.title, "", "", tt.date, tt.cost, tt.status, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("got err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []model.Status{
		model.StatusScheduled, model.StatusInProgress, model.StatusCompleted,
		model.StatusCancelled, model.StatusPending,
	} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if model.Status("Archived").Valid() {
		t.Error("unknown status accepted")
	}
}

// The JSON field names are the persisted contract: a store written by the
// original application must parse unchanged.
func TestPersistedFieldNames(t *testing.T) {
	raw := `{
		"id": "i1", "patientId": "p1", "title": "Toothache",
		"description": "Upper molar pain", "comments": "Sensitive to cold",
		"appointmentDate": "2025-07-01T10:00:00", "cost": 80,
		"status": "Completed",
		"files": [{"name": "invoice.pdf", "url": "data:application/pdf;base64,AA==", "type": "application/pdf"}]
	}`
	var inc model.Incident
	if err := json.Unmarshal([]byte(raw), &inc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if inc.PatientID != "p1" || inc.Status != model.StatusCompleted || len(inc.Files) != 1 {
		t.Errorf("parsed: %+v", inc)
	}

	out, _ := json.Marshal(model.SessionFor(model.User{ID: "u1", Name: "A", Email: "a@b.c", IsAdmin: true, HashedPassword: "secret"}))
	if !json.Valid(out) {
		t.Fatal("bad session json")
	}
	var round map[string]any
	json.Unmarshal(out, &round)
	if _, leaked := round["hashedPassword"]; leaked {
		t.Error("session projection leaked the password digest")
	}
	if _, has := round["patientId"]; has {
		t.Error("admin session should omit patientId")
	}
}
