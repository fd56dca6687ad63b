// Package provider owns the three entity collections (users, patients,
// incidents) and their CRUD contract. It is a thin consistency layer: every
// mutation updates in-memory state and rewrites the full collection to the
// persistent store in the same call, so store and memory never diverge.
// It performs no field validation; that lives with the callers assembling
// records (see model constructors).
package provider

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"dentalflow/internal/auth"
	"dentalflow/internal/model"
	"dentalflow/internal/seed"
	"dentalflow/internal/storage"
)

// Store keys. One key per collection plus the first-run sentinel; each value
// is the whole collection as a JSON array.
const (
	KeyInitialized = "dentalflow_initialized"
	KeyUsers       = "dentalflow_users"
	KeyPatients    = "dentalflow_patients"
	KeyIncidents   = "dentalflow_incidents"
)

// Provider is the single source of truth for entity data. Construct one per
// process and pass it by reference; it is not safe for concurrent use.
type Provider struct {
	kv storage.KV

	users     []model.User
	patients  []model.Patient
	incidents []model.Incident
	loaded    bool

	patientID  func(count int) string
	incidentID func(count int) string
}

// Option configures a Provider.
type Option func(*Provider)

// WithUUIDIDs replaces the historical "p<n>"/"i<n>" id scheme with random
// UUIDs. The default scheme derives the ordinal from the current collection
// length and can re-issue an id after a deletion; this option trades that
// compatibility for collision-free ids.
func WithUUIDIDs() Option {
	return func(p *Provider) {
		p.patientID = func(int) string { return uuid.New().String() }
		p.incidentID = func(int) string { return uuid.New().String() }
	}
}

// New runs the initialization protocol: seed the store on first run, then
// unconditionally load all collections from it. Malformed persisted JSON is
// fatal here; there is no recovery tier.
func New(kv storage.KV, opts ...Option) (*Provider, error) {
	p := &Provider{
		kv:         kv,
		patientID:  func(count int) string { return fmt.Sprintf("p%d", count+1) },
		incidentID: func(count int) string { return fmt.Sprintf("i%d", count+1) },
	}
	for _, opt := range opts {
		opt(p)
	}

	_, initialized, err := kv.Get(KeyInitialized)
	if err != nil {
		return nil, fmt.Errorf("read init sentinel: %w", err)
	}
	if !initialized {
		if err := p.writeSeed(); err != nil {
			return nil, err
		}
		if err := kv.Set(KeyInitialized, "true"); err != nil {
			return nil, fmt.Errorf("write init sentinel: %w", err)
		}
	}

	if err := p.loadAll(); err != nil {
		return nil, err
	}
	p.loaded = true
	return p, nil
}

// Loaded reports whether the initial load has completed.
func (p *Provider) Loaded() bool { return p.loaded }

func (p *Provider) writeSeed() error {
	if err := persist(p.kv, KeyUsers, seed.Users()); err != nil {
		return err
	}
	if err := persist(p.kv, KeyPatients, seed.Patients()); err != nil {
		return err
	}
	return persist(p.kv, KeyIncidents, seed.Incidents())
}

func (p *Provider) loadAll() error {
	if err := load(p.kv, KeyUsers, &p.users); err != nil {
		return err
	}
	if err := load(p.kv, KeyPatients, &p.patients); err != nil {
		return err
	}
	return load(p.kv, KeyIncidents, &p.incidents)
}

func persist[T any](kv storage.KV, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := kv.Set(key, string(raw)); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

func load[T any](kv storage.KV, key string, into *[]T) error {
	raw, ok, err := kv.Get(key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if !ok || raw == "" {
		*into = []T{}
		return nil
	}
	if err := json.Unmarshal([]byte(raw), into); err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	return nil
}

// Users returns a copy of the loaded user collection.
func (p *Provider) Users() []model.User {
	out := make([]model.User, len(p.users))
	copy(out, p.users)
	return out
}

// Patients returns a copy of the loaded patient collection, in insertion order.
func (p *Provider) Patients() []model.Patient {
	out := make([]model.Patient, len(p.patients))
	copy(out, p.patients)
	return out
}

// Incidents returns a copy of the loaded incident collection, in insertion order.
func (p *Provider) Incidents() []model.Incident {
	out := make([]model.Incident, len(p.incidents))
	copy(out, p.incidents)
	return out
}

// ValidateUser digests the password and looks up a matching (email, digest)
// pair in the seed catalog — the original reference list, not live state.
// User records cannot be edited at runtime, so the two never differ; the
// catalog stays the authority on purpose (see DESIGN.md).
func (p *Provider) ValidateUser(email, password string) (model.User, bool) {
	digest := auth.HashPassword(password)
	for _, u := range seed.Users() {
		if u.Email == email && u.HashedPassword == digest {
			return u, true
		}
	}
	return model.User{}, false
}

// AddPatient assigns the next patient id, appends, and persists. The stored
// record is returned with its id filled in.
func (p *Provider) AddPatient(patient model.Patient) (model.Patient, error) {
	patient.ID = p.patientID(len(p.patients))
	next := append(p.patients, patient)
	if err := persist(p.kv, KeyPatients, next); err != nil {
		return model.Patient{}, err
	}
	p.patients = next
	return patient, nil
}

// UpdatePatient replaces the patient whose id matches. The replacement is
// total, not a merge. An unknown id is a silent no-op.
func (p *Provider) UpdatePatient(patientID string, patient model.Patient) error {
	next := make([]model.Patient, len(p.patients))
	for i, existing := range p.patients {
		if existing.ID == patientID {
			next[i] = patient
		} else {
			next[i] = existing
		}
	}
	if err := persist(p.kv, KeyPatients, next); err != nil {
		return err
	}
	p.patients = next
	return nil
}

// DeletePatient removes the matching patient in place. An unknown id is a
// silent no-op. Incidents referencing the patient are left untouched; readers
// must tolerate dangling patient ids.
func (p *Provider) DeletePatient(patientID string) error {
	next := make([]model.Patient, 0, len(p.patients))
	for _, existing := range p.patients {
		if existing.ID != patientID {
			next = append(next, existing)
		}
	}
	if err := persist(p.kv, KeyPatients, next); err != nil {
		return err
	}
	p.patients = next
	return nil
}

// AddIncident assigns the next incident id, appends, and persists.
func (p *Provider) AddIncident(incident model.Incident) (model.Incident, error) {
	incident.ID = p.incidentID(len(p.incidents))
	next := append(p.incidents, incident)
	if err := persist(p.kv, KeyIncidents, next); err != nil {
		return model.Incident{}, err
	}
	p.incidents = next
	return incident, nil
}

// UpdateIncident replaces the incident whose id matches; silent no-op otherwise.
func (p *Provider) UpdateIncident(incidentID string, incident model.Incident) error {
	next := make([]model.Incident, len(p.incidents))
	for i, existing := range p.incidents {
		if existing.ID == incidentID {
			next[i] = incident
		} else {
			next[i] = existing
		}
	}
	if err := persist(p.kv, KeyIncidents, next); err != nil {
		return err
	}
	p.incidents = next
	return nil
}

// DeleteIncident removes the matching incident in place; silent no-op otherwise.
func (p *Provider) DeleteIncident(incidentID string) error {
	next := make([]model.Incident, 0, len(p.incidents))
	for _, existing := range p.incidents {
		if existing.ID != incidentID {
			next = append(next, existing)
		}
	}
	if err := persist(p.kv, KeyIncidents, next); err != nil {
		return err
	}
	p.incidents = next
	return nil
}

// IncidentsByPatient returns all incidents for a patient id, in collection
// order. The result is empty (never nil) when there are none.
func (p *Provider) IncidentsByPatient(patientID string) []model.Incident {
	out := []model.Incident{}
	for _, inc := range p.incidents {
		if inc.PatientID == patientID {
			out = append(out, inc)
		}
	}
	return out
}

// PatientByID looks up a patient by id.
func (p *Provider) PatientByID(patientID string) (model.Patient, bool) {
	for _, patient := range p.patients {
		if patient.ID == patientID {
			return patient, true
		}
	}
	return model.Patient{}, false
}

// Reload discards every edit and returns the store to factory data: clear the
// sentinel and all collection keys, rewrite the seed catalog, and reload.
func (p *Provider) Reload() error {
	for _, key := range []string{KeyInitialized, KeyUsers, KeyPatients, KeyIncidents} {
		if err := p.kv.Delete(key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	if err := p.writeSeed(); err != nil {
		return err
	}
	if err := p.kv.Set(KeyInitialized, "true"); err != nil {
		return fmt.Errorf("write init sentinel: %w", err)
	}
	return p.loadAll()
}
