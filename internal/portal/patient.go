package portal

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"dentalflow/internal/attachment"
	"dentalflow/internal/model"
	"dentalflow/internal/session"
)

func (pt *Portal) patientView() (session.Route, error) {
	user, ok := pt.session.User()
	if !ok {
		return session.RouteLogin, nil
	}
	fmt.Fprintf(pt.out, "\n== Patient dashboard — %s ==\n", user.Name)
	pt.renderNextAppointment(user.PatientID)

	for {
		line, err := pt.prompt("patient")
		if err != nil {
			return session.RouteLogin, err
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "", "help":
			fmt.Fprintln(pt.out, "commands: upcoming history book files <id> export <id> <dir> logout quit")
		case "upcoming":
			pt.renderVisits(user.PatientID, true)
		case "history":
			pt.renderVisits(user.PatientID, false)
		case "book":
			err = pt.addIncident(user.PatientID)
		case "files":
			pt.renderPatientFiles(user.PatientID, arg)
		case "export":
			id, dir, _ := strings.Cut(arg, " ")
			err = pt.exportFiles(user.PatientID, id, strings.TrimSpace(dir))
		case "logout":
			return pt.logOut()
		case "quit":
			return session.RoutePatientDashboard, errQuit
		default:
			fmt.Fprintf(pt.out, "unknown command %q\n", cmd)
		}
		if err != nil {
			if isInputEnd(err) {
				return session.RoutePatientDashboard, err
			}
			fmt.Fprintf(pt.out, "error: %v\n", err)
		}
	}
}

func (pt *Portal) renderNextAppointment(patientID string) {
	upcoming := pt.splitVisits(patientID, true)
	if len(upcoming) == 0 {
		fmt.Fprintln(pt.out, "no upcoming appointments")
		return
	}
	next := upcoming[0]
	fmt.Fprintf(pt.out, "next appointment: %s — %s (%s)\n", next.AppointmentDate, next.Title, next.Status)
	fmt.Fprintf(pt.out, "%d appointments scheduled\n", len(upcoming))
}

// splitVisits partitions the patient's incidents by appointment date relative
// to now. Upcoming is sorted soonest first; history keeps collection order.
func (pt *Portal) splitVisits(patientID string, upcoming bool) []model.Incident {
	now := pt.now()
	var out []model.Incident
	for _, inc := range pt.data.IncidentsByPatient(patientID) {
		when, err := model.ParseAppointmentDate(inc.AppointmentDate)
		future := err == nil && !when.Before(now)
		if future == upcoming {
			out = append(out, inc)
		}
	}
	if upcoming {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].AppointmentDate < out[j].AppointmentDate
		})
	}
	return out
}

func (pt *Portal) renderVisits(patientID string, upcoming bool) {
	visits := pt.splitVisits(patientID, upcoming)
	if len(visits) == 0 {
		if upcoming {
			fmt.Fprintln(pt.out, "no upcoming appointments found")
		} else {
			fmt.Fprintln(pt.out, "no past appointments")
		}
		return
	}
	w := tabwriter.NewWriter(pt.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTITLE\tSTATUS\tCOST\tFILES")
	for _, inc := range visits {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t$%.2f\t%d\n",
			inc.ID, inc.AppointmentDate, inc.Title, inc.Status, inc.Cost, len(inc.Files))
	}
	w.Flush()
}

// ownIncident restricts lookups to the signed-in patient's own records.
func (pt *Portal) ownIncident(patientID, incidentID string) (model.Incident, bool) {
	for _, inc := range pt.data.IncidentsByPatient(patientID) {
		if inc.ID == incidentID {
			return inc, true
		}
	}
	return model.Incident{}, false
}

func (pt *Portal) renderPatientFiles(patientID, incidentID string) {
	inc, ok := pt.ownIncident(patientID, incidentID)
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

// exportFiles decodes an incident's attachments and writes them into dir.
func (pt *Portal) exportFiles(patientID, incidentID, dir string) error {
	if incidentID == "" || dir == "" {
		fmt.Fprintln(pt.out, "usage: export <incident id> <dir>")
		return nil
	}
	inc, ok := pt.ownIncident(patientID, incidentID)
	if !ok {
		fmt.Fprintf(pt.out, "no incident %q\n", incidentID)
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, f := range inc.Files {
		data, err := attachment.Decode(f)
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.Base(f.Name))
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(pt.out, "wrote %s\n", target)
	}
	return nil
}
