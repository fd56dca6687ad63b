package session_test

import (
	"testing"

	"dentalflow/internal/model"
	"dentalflow/internal/session"
	"dentalflow/internal/storage"
)

func admin() model.SessionUser {
	return model.SessionUser{ID: "u1", Name: "Admin User", Email: "admin@dentalflow.com", IsAdmin: true}
}

func patient() model.SessionUser {
	return model.SessionUser{ID: "u2", Name: "John Doe", Email: "john.doe@example.com", PatientID: "p1"}
}

func TestRestoreWithoutPersistedSession(t *testing.T) {
	s, route, err := session.Restore(storage.NewMemory())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if route != session.RouteLogin {
		t.Errorf("route: got %v", route)
	}
	if _, ok := s.User(); ok {
		t.Error("expected no user")
	}
}

func TestLogInRoutesByRole(t *testing.T) {
	tests := []struct {
		name string
		user model.SessionUser
		want session.Route
	}{
		{"admin", admin(), session.RouteAdminDashboard},
		{"patient", patient(), session.RoutePatientDashboard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := session.Restore(storage.NewMemory())
			route, err := s.LogIn(tt.user)
			if err != nil {
				t.Fatalf("login: %v", err)
			}
			if route != tt.want {
				t.Errorf("route: got %v, want %v", route, tt.want)
			}
			got, ok := s.User()
			if !ok || got.ID != tt.user.ID {
				t.Errorf("user: ok=%v got=%+v", ok, got)
			}
		})
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	kv := storage.NewMemory()

	s, _, _ := session.Restore(kv)
	if _, err := s.LogIn(patient()); err != nil {
		t.Fatalf("login: %v", err)
	}

	// a second Restore over the same store models a process restart
	s2, route, err := session.Restore(kv)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if route != session.RoutePatientDashboard {
		t.Errorf("route: got %v", route)
	}
	u, ok := s2.User()
	if !ok || u.PatientID != "p1" {
		t.Errorf("user: ok=%v got=%+v", ok, u)
	}
}

func TestLogOutClearsMemoryAndStore(t *testing.T) {
	kv := storage.NewMemory()

	s, _, _ := session.Restore(kv)
	s.LogIn(admin())
	route, err := s.LogOut()
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	if route != session.RouteLogin {
		t.Errorf("route: got %v", route)
	}
	if _, ok := s.User(); ok {
		t.Error("user survived logout in memory")
	}
	if _, ok, _ := kv.Get(session.Key); ok {
		t.Error("user survived logout in store")
	}
}

func TestRestoreRejectsMalformedRecord(t *testing.T) {
	kv := storage.NewMemory()
	kv.Set(session.Key, "{broken")

	if _, _, err := session.Restore(kv); err == nil {
		t.Fatal("expected parse error")
	}
}
