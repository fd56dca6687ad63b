package portal

import (
	"fmt"
	"io"
	"time"

	"dentalflow/internal/model"
)

// renderCalendar prints the month grid for "YYYY-MM", defaulting to the
// current month, followed by the day's appointments for each busy day.
func (pt *Portal) renderCalendar(arg string) {
	month := pt.now()
	if arg != "" {
		parsed, err := time.Parse("2006-01", arg)
		if err != nil {
			fmt.Fprintf(pt.out, "bad month %q, want YYYY-MM\n", arg)
			return
		}
		month = parsed
	}
	RenderCalendar(pt.out, month.Year(), month.Month(), pt.data.Incidents(), pt.data.Patients())
}

// RenderCalendar draws a month grid with the appointment count per day, then
// lists each busy day's appointments with patient names resolved.
func RenderCalendar(out io.Writer, year int, month time.Month, incidents []model.Incident, patients []model.Patient) {
	byDay := map[int][]model.Incident{}
	for _, inc := range incidents {
		when, err := model.ParseAppointmentDate(inc.AppointmentDate)
		if err != nil || when.Year() != year || when.Month() != month {
			continue
		}
		byDay[when.Day()] = append(byDay[when.Day()], inc)
	}

	names := map[string]string{}
	for _, p := range patients {
		names[p.ID] = p.Name
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	fmt.Fprintf(out, "%s %d\n", month, year)
	fmt.Fprintln(out, "Sun    Mon    Tue    Wed    Thu    Fri    Sat")

	// leading blanks up to the first weekday
	col := int(first.Weekday())
	for i := 0; i < col; i++ {
		fmt.Fprint(out, "       ")
	}
	for day := 1; day <= daysInMonth; day++ {
		cell := fmt.Sprintf("%2d", day)
		if n := len(byDay[day]); n > 0 {
			cell = fmt.Sprintf("%2d(%d)", day, n)
		}
		fmt.Fprintf(out, "%-7s", cell)
		col++
		if col == 7 {
			fmt.Fprintln(out)
			col = 0
		}
	}
	if col != 0 {
		fmt.Fprintln(out)
	}

	for day := 1; day <= daysInMonth; day++ {
		for _, inc := range byDay[day] {
			name := names[inc.PatientID]
			if name == "" {
				name = inc.PatientID
			}
			fmt.Fprintf(out, "  %s  %s — %s (%s)\n", inc.AppointmentDate, inc.Title, name, inc.Status)
		}
	}
}
