package portal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"dentalflow/internal/attachment"
	"dentalflow/internal/model"
	"dentalflow/internal/session"
)

func (pt *Portal) adminView() (session.Route, error) {
	user, _ := pt.session.User()
	fmt.Fprintf(pt.out, "\n== Admin dashboard — %s ==\n", user.Name)
	pt.renderStats()

	for {
		line, err := pt.prompt("admin")
		if err != nil {
			return session.RouteLogin, err
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "", "help":
			fmt.Fprintln(pt.out, "commands: stats patients incidents calendar [YYYY-MM] add-patient edit-patient <id> delete-patient <id> add-incident edit-incident <id> delete-incident <id> attach <id> <path> files <id> reset logout quit")
		case "stats":
			pt.renderStats()
		case "patients":
			renderPatients(pt.out, pt.data.Patients())
		case "incidents":
			renderIncidents(pt.out, pt.data.Incidents(), pt.data.Patients())
		case "calendar":
			pt.renderCalendar(arg)
		case "add-patient":
			err = pt.addPatient()
		case "edit-patient":
			err = pt.editPatient(arg)
		case "delete-patient":
			err = pt.data.DeletePatient(arg)
			if err == nil {
				fmt.Fprintf(pt.out, "deleted %s\n", arg)
			}
		case "add-incident":
			err = pt.addIncident("")
		case "edit-incident":
			err = pt.editIncident(arg)
		case "delete-incident":
			err = pt.data.DeleteIncident(arg)
			if err == nil {
				fmt.Fprintf(pt.out, "deleted %s\n", arg)
			}
		case "attach":
			id, path, _ := strings.Cut(arg, " ")
			err = pt.attachFile(id, strings.TrimSpace(path))
		case "files":
			pt.renderFiles(arg)
		case "reset":
			if err = pt.data.Reload(); err == nil {
				fmt.Fprintln(pt.out, "store reset to seed data")
			}
		case "logout":
			return pt.logOut()
		case "quit":
			return session.RouteAdminDashboard, errQuit
		default:
			fmt.Fprintf(pt.out, "unknown command %q\n", cmd)
		}
		if err != nil {
			if isInputEnd(err) {
				return session.RouteAdminDashboard, err
			}
			fmt.Fprintf(pt.out, "error: %v\n", err)
		}
	}
}

type stats struct {
	totalPatients     int
	pendingTreatments int
	completed         int
	totalRevenue      float64
	upcoming          []model.Incident
	topPatients       []patientVisits
}

type patientVisits struct {
	patientID string
	visits    int
}

func (pt *Portal) computeStats() stats {
	patients := pt.data.Patients()
	incidents := pt.data.Incidents()
	now := pt.now()

	st := stats{totalPatients: len(patients)}
	visits := map[string]int{}
	for _, inc := range incidents {
		visits[inc.PatientID]++
		switch inc.Status {
		case model.StatusCompleted:
			st.completed++
			st.totalRevenue += inc.Cost
		case model.StatusCancelled:
		default:
			st.pendingTreatments++
		}
		if when, err := model.ParseAppointmentDate(inc.AppointmentDate); err == nil && !when.Before(now) {
			st.upcoming = append(st.upcoming, inc)
		}
	}
	sort.SliceStable(st.upcoming, func(i, j int) bool {
		return st.upcoming[i].AppointmentDate < st.upcoming[j].AppointmentDate
	})
	if len(st.upcoming) > 5 {
		st.upcoming = st.upcoming[:5]
	}

	for id, n := range visits {
		st.topPatients = append(st.topPatients, patientVisits{patientID: id, visits: n})
	}
	sort.SliceStable(st.topPatients, func(i, j int) bool {
		if st.topPatients[i].visits != st.topPatients[j].visits {
			return st.topPatients[i].visits > st.topPatients[j].visits
		}
		return st.topPatients[i].patientID < st.topPatients[j].patientID
	})
	if len(st.topPatients) > 3 {
		st.topPatients = st.topPatients[:3]
	}
	return st
}

func (pt *Portal) renderStats() {
	st := pt.computeStats()
	fmt.Fprintf(pt.out, "patients: %d  pending treatments: %d  completed: %d  revenue: $%.2f\n",
		st.totalPatients, st.pendingTreatments, st.completed, st.totalRevenue)

	if len(st.upcoming) > 0 {
		fmt.Fprintln(pt.out, "upcoming appointments:")
		for _, inc := range st.upcoming {
			fmt.Fprintf(pt.out, "  %s  %s  %s (%s)\n", inc.AppointmentDate, inc.ID, inc.Title, pt.patientName(inc.PatientID))
		}
	}
	if len(st.topPatients) > 0 {
		fmt.Fprintln(pt.out, "top patients:")
		for _, tp := range st.topPatients {
			fmt.Fprintf(pt.out, "  %s — %d visits\n", pt.patientName(tp.patientID), tp.visits)
		}
	}
}

// patientName resolves a patient id for display, tolerating dangling
// references left behind by patient deletion.
func (pt *Portal) patientName(patientID string) string {
	if p, ok := pt.data.PatientByID(patientID); ok {
		return p.Name
	}
	return patientID + " (unknown)"
}

func renderPatients(out io.Writer, patients []model.Patient) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDOB\tCONTACT\tHEALTH INFO")
	for _, p := range patients {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.DOB, p.Contact, p.HealthInfo)
	}
	w.Flush()
}

func renderIncidents(out io.Writer, incidents []model.Incident, patients []model.Patient) {
	names := map[string]string{}
	for _, p := range patients {
		names[p.ID] = p.Name
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATIENT\tTITLE\tDATE\tCOST\tSTATUS\tFILES")
	for _, inc := range incidents {
		name := names[inc.PatientID]
		if name == "" {
			name = inc.PatientID
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t$%.2f\t%s\t%d\n",
			inc.ID, name, inc.Title, inc.AppointmentDate, inc.Cost, inc.Status, len(inc.Files))
	}
	w.Flush()
}

func (pt *Portal) addPatient() error {
	name, err := pt.prompt("name")
	if err != nil {
		return err
	}
	dob, err := pt.prompt("dob (YYYY-MM-DD)")
	if err != nil {
		return err
	}
	contact, err := pt.prompt("contact")
	if err != nil {
		return err
	}
	health, err := pt.prompt("health info")
	if err != nil {
		return err
	}

	patient, err := model.NewPatient(name, dob, contact, health)
	if err != nil {
		return err
	}
	stored, err := pt.data.AddPatient(patient)
	if err != nil {
		return err
	}
	fmt.Fprintf(pt.out, "added patient %s\n", stored.ID)
	return nil
}

func (pt *Portal) editPatient(id string) error {
	existing, ok := pt.data.PatientByID(id)
	if !ok {
		fmt.Fprintf(pt.out, "no patient %q\n", id)
		return nil
	}
	fmt.Fprintf(pt.out, "editing %s (blank keeps the current value)\n", existing.ID)

	name, err := pt.promptDefault("name", existing.Name)
	if err != nil {
		return err
	}
	dob, err := pt.promptDefault("dob", existing.DOB)
	if err != nil {
		return err
	}
	contact, err := pt.promptDefault("contact", existing.Contact)
	if err != nil {
		return err
	}
	health, err := pt.promptDefault("health info", existing.HealthInfo)
	if err != nil {
		return err
	}

	patient, err := model.NewPatient(name, dob, contact, health)
	if err != nil {
		return err
	}
	patient.ID = existing.ID
	if err := pt.data.UpdatePatient(existing.ID, patient); err != nil {
		return err
	}
	fmt.Fprintf(pt.out, "updated %s\n", existing.ID)
	return nil
}

// addIncident prompts for a new incident. A non-empty forPatient pins the
// patient id (self-service booking); otherwise the admin picks one.
func (pt *Portal) addIncident(forPatient string) error {
	patientID := forPatient
	if patientID == "" {
		id, err := pt.prompt("patient id")
		if err != nil {
			return err
		}
		patientID = id
	}
	title, err := pt.prompt("title")
	if err != nil {
		return err
	}
	description, err := pt.prompt("description")
	if err != nil {
		return err
	}
	comments, err := pt.prompt("comments")
	if err != nil {
		return err
	}
	when, err := pt.prompt("appointment (YYYY-MM-DDTHH:MM:SS)")
	if err != nil {
		return err
	}
	cost, err := pt.promptFloat("cost")
	if err != nil {
		return err
	}

	status := model.StatusPending
	if forPatient == "" {
		raw, err := pt.prompt("status")
		if err != nil {
			return err
		}
		if raw != "" {
			status = model.Status(raw)
		} else {
			status = model.StatusScheduled
		}
	}

	incident, err := model.NewIncident(patientID, title, description, comments, when, cost, status, []model.FileAttachment{})
	if err != nil {
		return err
	}
	stored, err := pt.data.AddIncident(incident)
	if err != nil {
		return err
	}
	fmt.Fprintf(pt.out, "added incident %s\n", stored.ID)
	return nil
}

func (pt *Portal) editIncident(id string) error {
	existing, ok := pt.incidentByID(id)
	if !ok {
		fmt.Fprintf(pt.out, "no incident %q\n", id)
		return nil
	}
	fmt.Fprintf(pt.out, "editing %s (blank keeps the current value)\n", existing.ID)

	title, err := pt.promptDefault("title", existing.Title)
	if err != nil {
		return err
	}
	description, err := pt.promptDefault("description", existing.Description)
	if err != nil {
		return err
	}
	comments, err := pt.promptDefault("comments", existing.Comments)
	if err != nil {
		return err
	}
	when, err := pt.promptDefault("appointment", existing.AppointmentDate)
	if err != nil {
		return err
	}
	rawCost, err := pt.promptDefault("cost", fmt.Sprintf("%g", existing.Cost))
	if err != nil {
		return err
	}
	cost := existing.Cost
	if _, perr := fmt.Sscanf(rawCost, "%f", &cost); perr != nil {
		return fmt.Errorf("bad cost %q", rawCost)
	}
	rawStatus, err := pt.promptDefault("status", string(existing.Status))
	if err != nil {
		return err
	}

	incident, err := model.NewIncident(existing.PatientID, title, description, comments, when, cost, model.Status(rawStatus), existing.Files)
	if err != nil {
		return err
	}
	incident.ID = existing.ID
	if err := pt.data.UpdateIncident(existing.ID, incident); err != nil {
		return err
	}
	fmt.Fprintf(pt.out, "updated %s\n", existing.ID)
	return nil
}

func (pt *Portal) promptDefault(label, current string) (string, error) {
	v, err := pt.prompt(fmt.Sprintf("%s [%s]", label, current))
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

func (pt *Portal) incidentByID(id string) (model.Incident, bool) {
	for _, inc := range pt.data.Incidents() {
		if inc.ID == id {
			return inc, true
		}
	}
	return model.Incident{}, false
}

// attachFile reads a file from disk, checks it against the upload policy, and
// appends it to the incident's attachments.
func (pt *Portal) attachFile(incidentID, path string) error {
	if incidentID == "" || path == "" {
		fmt.Fprintln(pt.out, "usage: attach <incident id> <path>")
		return nil
	}
	existing, ok := pt.incidentByID(incidentID)
	if !ok {
		fmt.Fprintf(pt.out, "no incident %q\n", incidentID)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(path[strings.LastIndexByte(path, '/')+1:])
	mimeType := attachment.DetectType(name)
	if err := pt.policy.Check(existing.Files, name, mimeType, int64(len(data))); err != nil {
		return err
	}

	existing.Files = append(existing.Files, attachment.Encode(name, mimeType, data))
	if err := pt.data.UpdateIncident(existing.ID, existing); err != nil {
		return err
	}
	fmt.Fprintf(pt.out, "attached %s to %s\n", name, existing.ID)
	return nil
}

func (pt *Portal) renderFiles(incidentID string) {
	inc, ok := pt.incidentByID(incidentID)
	if !ok {
		fmt.Fprintf(pt.out, "no incident %q\n", incidentID)
		return
	}
	if len(inc.Files) == 0 {
		fmt.Fprintln(pt.out, "no attachments")
		return
	}
	for _, f := range inc.Files {
		fmt.Fprintf(pt.out, "  %s  %s  %d bytes\n", f.Name, f.Type, attachment.Size(f))
	}
}

func isInputEnd(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, errQuit)
}
