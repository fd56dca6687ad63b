package portal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"dentalflow/internal/provider"
	"dentalflow/internal/seed"
	"dentalflow/internal/session"
	"dentalflow/internal/storage"
)

// fixedNow sits between the seed's past incidents and i1 (2025-07-01), so
// exactly one seed appointment counts as upcoming.
var fixedNow = time.Date(2025, time.June, 30, 12, 0, 0, 0, time.UTC)

// run scripts a full portal session against a freshly seeded store and
// returns everything it printed.
func run(t *testing.T, script ...string) string {
	t.Helper()
	kv := storage.NewMemory()
	data, err := provider.New(kv)
	if err != nil {
		t.Fatalf("provider: %v", err)
	}
	sess, route, err := session.Restore(kv)
	if err != nil {
		t.Fatalf("session: %v", err)
	}

	var out bytes.Buffer
	pt := New(data, sess, strings.NewReader(strings.Join(script, "\n")+"\n"), &out)
	pt.now = func() time.Time { return fixedNow }

	if err := pt.Run(route); err != nil {
		t.Fatalf("run: %v\noutput:\n%s", err, out.String())
	}
	return out.String()
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	out := run(t,
		"admin@dentalflow.com", "wrong",
		"quit",
	)
	if !strings.Contains(out, "invalid email or password") {
		t.Errorf("missing rejection message:\n%s", out)
	}
	if strings.Contains(out, "Admin dashboard") {
		t.Errorf("bad credentials reached a dashboard:\n%s", out)
	}
}

func TestAdminDashboardFlow(t *testing.T) {
	out := run(t,
		"admin@dentalflow.com", "admin123",
		"patients",
		"incidents",
		"stats",
		"quit",
	)
	for _, want := range []string{
		"welcome, Admin User",
		"Admin dashboard",
		"John Doe",     // patient table
		"Toothache",    // incident table
		"patients: 11", // KPI line
		"Migraine",     // incident table includes scheduled i9
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestAdminUpcomingAppointments(t *testing.T) {
	out := run(t,
		"admin@dentalflow.com", "admin123",
		"stats",
		"quit",
	)
	// only i1 (2025-07-01) is on or after the pinned clock
	if !strings.Contains(out, "upcoming appointments:") {
		t.Fatalf("missing upcoming section:\n%s", out)
	}
	if !strings.Contains(out, "i1") {
		t.Errorf("expected i1 to be upcoming:\n%s", out)
	}
	if strings.Contains(out, "2025-05-20T17:45:00  i10") {
		t.Errorf("past appointment listed as upcoming:\n%s", out)
	}
}

func TestAdminAddAndDeletePatient(t *testing.T) {
	out := run(t,
		"admin@dentalflow.com", "admin123",
		"add-patient",
		"Greg House", "1959-06-11", "5559110000", "Chronic leg pain",
		"delete-patient p5",
		"patients",
		"quit",
	)
	if !strings.Contains(out, "added patient p12") {
		t.Errorf("expected next seed ordinal p12:\n%s", out)
	}
	if !strings.Contains(out, "Greg House") {
		t.Errorf("new patient missing from table:\n%s", out)
	}
	if strings.Contains(out, "Emily Davis") {
		t.Errorf("p5 still present after delete:\n%s", out)
	}
}

func TestLogoutReturnsToLogin(t *testing.T) {
	out := run(t,
		"admin@dentalflow.com", "admin123",
		"logout",
		"quit",
	)
	if !strings.Contains(out, "signed out") {
		t.Errorf("missing sign-out message:\n%s", out)
	}
	// back at the login banner after logout
	if strings.Count(out, "DentalFlow — sign in") != 2 {
		t.Errorf("expected to land on login twice:\n%s", out)
	}
}

func TestPatientDashboardFlow(t *testing.T) {
	out := run(t,
		"john.doe@example.com", "patient123",
		"upcoming",
		"history",
		"quit",
	)
	for _, want := range []string{
		"welcome, John Doe",
		"Patient dashboard",
		"next appointment: 2025-07-01T10:00:00 — Toothache", // i1 is upcoming at the pinned clock
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestPatientSelfServiceBooking(t *testing.T) {
	out := run(t,
		"john.doe@example.com", "patient123",
		"book",
		"Checkup", "Routine visit", "", "2025-07-10T09:00:00", "45",
		"upcoming",
		"quit",
	)
	if !strings.Contains(out, "added incident i11") {
		t.Errorf("expected next seed ordinal i11:\n%s", out)
	}
	if !strings.Contains(out, "Checkup") || !strings.Contains(out, "Pending") {
		t.Errorf("booked appointment missing or not pending:\n%s", out)
	}
}

func TestPatientCannotSeeOthersFiles(t *testing.T) {
	// i3 belongs to p4; John Doe is p1
	out := run(t,
		"john.doe@example.com", "patient123",
		"files i3",
		"quit",
	)
	if !strings.Contains(out, `no incident "i3"`) {
		t.Errorf("expected ownership check to hide i3:\n%s", out)
	}
}

func TestCalendarRendering(t *testing.T) {
	var out bytes.Buffer
	RenderCalendar(&out, 2025, time.June, seed.Incidents(), seed.Patients())
	got := out.String()

	for _, want := range []string{
		"June 2025",
		"Sun    Mon    Tue    Wed    Thu    Fri    Sat",
		"28(1)", // i2 on the 28th
		"10(1)", // i6 on the 10th
		"Routine Checkup — Alice Johnson (Completed)",
		"Blood Test — Emily Davis (Pending)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in calendar:\n%s", want, got)
		}
	}
	// July incidents stay out of the June grid
	if strings.Contains(got, "Toothache") {
		t.Errorf("July incident leaked into June:\n%s", got)
	}
}

func TestCalendarToleratesDanglingPatient(t *testing.T) {
	incidents := seed.Incidents()
	var out bytes.Buffer
	// no patients at all: every reference dangles
	RenderCalendar(&out, 2025, time.June, incidents, nil)
	if !strings.Contains(out.String(), "Routine Checkup — p3 (Completed)") {
		t.Errorf("dangling patient id not shown raw:\n%s", out.String())
	}
}
