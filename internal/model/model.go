package model

import (
	"errors"
	"fmt"
	"time"
)

// Status is the lifecycle state of an incident.
type Status string

const (
	StatusScheduled  Status = "Scheduled"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
	StatusPending    Status = "Pending"
)

var statuses = map[Status]bool{
	StatusScheduled:  true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusCancelled:  true,
	StatusPending:    true,
}

// Valid reports whether s is one of the known incident statuses.
func (s Status) Valid() bool { return statuses[s] }

// User is an account record. PatientID is set only on non-admin users, linking
// them to their patient record. Users exist only in the seed catalog; there is
// no user-creation operation at runtime.
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	HashedPassword string `json:"hashedPassword"`
	IsAdmin        bool   `json:"isAdmin"`
	PatientID      string `json:"patientId,omitempty"`
}

// Patient is a clinic patient record. DOB is a YYYY-MM-DD date string.
type Patient struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	DOB        string `json:"dob"`
	Contact    string `json:"contact"`
	HealthInfo string `json:"healthInfo"`
}

// Incident is an appointment/treatment record. AppointmentDate is an ISO
// datetime string without zone, as persisted by the original data layer.
type Incident struct {
	ID              string           `json:"id"`
	PatientID       string           `json:"patientId"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Comments        string           `json:"comments"`
	AppointmentDate string           `json:"appointmentDate"`
	Cost            float64          `json:"cost"`
	Status          Status           `json:"status"`
	Files           []FileAttachment `json:"files"`
}

// FileAttachment is a file embedded in its parent incident as a base64 data
// URI. It has no identity or lifecycle of its own.
type FileAttachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// SessionUser is the reduced projection of User persisted for the current
// session. The password digest is deliberately excluded.
type SessionUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
	PatientID string `json:"patientId,omitempty"`
}

// SessionFor reduces a full user record to its session projection.
func SessionFor(u User) SessionUser {
	return SessionUser{ID: u.ID, Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin, PatientID: u.PatientID}
}

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02T15:04:05"
)

// ParseAppointmentDate parses an incident's appointment datetime.
func ParseAppointmentDate(s string) (time.Time, error) {
	return time.Parse(datetimeLayout, s)
}

// FormatAppointmentDate renders t in the persisted appointment format.
func FormatAppointmentDate(t time.Time) string {
	return t.Format(datetimeLayout)
}

// NewUser validates the admin/patient link rule at construction: admins carry
// no patient id, non-admins must carry one.
func NewUser(id, name, email, hashedPassword string, isAdmin bool, patientID string) (User, error) {
	if id == "" || name == "" || email == "" {
		return User{}, errors.New("user: id, name and email are required")
	}
	if isAdmin && patientID != "" {
		return User{}, fmt.Errorf("user %s: admin cannot be linked to patient %s", id, patientID)
	}
	if !isAdmin && patientID == "" {
		return User{}, fmt.Errorf("user %s: non-admin must be linked to a patient", id)
	}
	return User{ID: id, Name: name, Email: email, HashedPassword: hashedPassword, IsAdmin: isAdmin, PatientID: patientID}, nil
}

// NewPatient validates a patient record shape. The id is left empty; the data
// provider assigns it on add.
func NewPatient(name, dob, contact, healthInfo string) (Patient, error) {
	if name == "" {
		return Patient{}, errors.New("patient: name is required")
	}
	if _, err := time.Parse(dateLayout, dob); err != nil {
		return Patient{}, fmt.Errorf("patient: bad dob %q: %w", dob, err)
	}
	return Patient{Name: name, DOB: dob, Contact: contact, HealthInfo: healthInfo}, nil
}

// NewIncident validates an incident record shape. The id is left empty; the
// data provider assigns it on add.
func NewIncident(patientID, title, description, comments, appointmentDate string, cost float64, status Status, files []FileAttachment) (Incident, error) {
	if patientID == "" || title == "" {
		return Incident{}, errors.New("incident: patientId and title are required")
	}
	if _, err := ParseAppointmentDate(appointmentDate); err != nil {
		return Incident{}, fmt.Errorf("incident: bad appointment date %q: %w", appointmentDate, err)
	}
	if cost < 0 {
		return Incident{}, fmt.Errorf("incident: negative cost %v", cost)
	}
	if !status.Valid() {
		return Incident{}, fmt.Errorf("incident: unknown status %q", status)
	}
	return Incident{
		PatientID:       patientID,
		Title:           title,
		Description:     description,
		Comments:        comments,
		AppointmentDate: appointmentDate,
		Cost:            cost,
		Status:          status,
		Files:           files,
	}, nil
}
