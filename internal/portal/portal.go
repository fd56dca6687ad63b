// Package portal is the terminal view layer: a login view plus role-based
// dashboards, all pure consumers of the data provider and the session. It
// holds no state of its own beyond the input cursor.
package portal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"dentalflow/internal/attachment"
	"dentalflow/internal/model"
	"dentalflow/internal/provider"
	"dentalflow/internal/session"
)

// ErrQuit ends the portal loop.
var errQuit = errors.New("quit")

type Portal struct {
	data    *provider.Provider
	session *session.Session
	in      *bufio.Scanner
	out     io.Writer
	policy  attachment.Policy
	now     func() time.Time
}

func New(data *provider.Provider, sess *session.Session, in io.Reader, out io.Writer) *Portal {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	return &Portal{
		data:    data,
		session: sess,
		in:      sc,
		out:     out,
		policy:  attachment.DefaultPolicy(),
		now:     time.Now,
	}
}

// Run drives the portal from the given route until the user quits or input
// ends. Log-out returns to the login view, not out of the loop.
func (pt *Portal) Run(route session.Route) error {
	for {
		var err error
		switch route {
		case session.RouteAdminDashboard:
			route, err = pt.adminView()
		case session.RoutePatientDashboard:
			route, err = pt.patientView()
		default:
			route, err = pt.loginView()
		}
		if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (pt *Portal) loginView() (session.Route, error) {
	fmt.Fprintln(pt.out, "DentalFlow — sign in (or 'quit')")
	for {
		email, err := pt.prompt("email")
		if err != nil {
			return session.RouteLogin, err
		}
		if email == "quit" {
			return session.RouteLogin, errQuit
		}
		password, err := pt.prompt("password")
		if err != nil {
			return session.RouteLogin, err
		}

		user, ok := pt.data.ValidateUser(email, password)
		if !ok {
			fmt.Fprintln(pt.out, "invalid email or password")
			continue
		}
		route, err := pt.session.LogIn(model.SessionFor(user))
		if err != nil {
			return session.RouteLogin, err
		}
		fmt.Fprintf(pt.out, "welcome, %s\n", user.Name)
		return route, nil
	}
}

// prompt reads one trimmed line of input. io.EOF when input runs out.
func (pt *Portal) prompt(label string) (string, error) {
	fmt.Fprintf(pt.out, "%s> ", label)
	if !pt.in.Scan() {
		if err := pt.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(pt.in.Text()), nil
}

func (pt *Portal) promptFloat(label string) (float64, error) {
	raw, err := pt.prompt(label)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

// logOut ends the current dashboard view and routes back to login.
func (pt *Portal) logOut() (session.Route, error) {
	route, err := pt.session.LogOut()
	if err != nil {
		return session.RouteLogin, err
	}
	fmt.Fprintln(pt.out, "signed out")
	return route, nil
}
