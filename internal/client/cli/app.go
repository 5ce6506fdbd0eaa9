package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/hrmportal/internal/client/api"
	"github.com/dmitrijs2005/hrmportal/internal/client/models"
	"github.com/dmitrijs2005/hrmportal/internal/client/services"
	"github.com/dmitrijs2005/hrmportal/internal/logging"
)

// Mode is the connectivity state shown in the prompt. It follows the outcome
// of the latest backend call and is offline until a call gets an answer.
type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// Services bundles the domain clients the CLI drives.
type Services struct {
	Auth       services.AuthService
	Users      services.UserService
	Attendance services.AttendanceService
	Leaves     services.LeaveService
	Calendar   services.CalendarService
}

type App struct {
	svc    Services
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	mu   sync.Mutex
	Mode Mode

	now      func() time.Time
	readFile func(string) ([]byte, error)
}

func NewApp(svc Services, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		svc:      svc,
		log:      log,
		reader:   bufio.NewReader(in),
		out:      out,
		Mode:     ModeOffline,
		now:      time.Now,
		readFile: os.ReadFile,
	}
}

// Run starts the REPL on the app's input and blocks until the user exits or
// the input ends.
func (a *App) Run(ctx context.Context) {
	a.printf("Welcome to the HRM portal CLI (type 'help' for commands)\n")
	if u := a.svc.Auth.CurrentUser(); u != nil && a.svc.Auth.IsAuthenticated() {
		a.printf("Signed in as %s\n", displayName(u))
	}
	runREPL(ctx, a, a.status, a.reader, a.out)
}

// SessionExpired is registered with the session store and runs after the
// backend rejected the token mid-session.
func (a *App) SessionExpired() {
	a.printf("Session Expired. Please log in again.\n")
}

func (a *App) isLoggedIn() bool {
	return a.svc.Auth.IsAuthenticated()
}

func (a *App) currentUser() *models.UserSummary {
	return a.svc.Auth.CurrentUser()
}

func (a *App) myID() models.ID {
	if u := a.currentUser(); u != nil {
		return u.ID
	}
	return ""
}

func (a *App) isManager() bool {
	u := a.currentUser()
	return u != nil && u.Role.IsManager()
}

func (a *App) status() string {
	who := ""
	if u := a.currentUser(); u != nil && a.isLoggedIn() {
		who = displayName(u) + " "
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return fmt.Sprintf("(%s%s)", who, a.Mode)
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

// track updates the connectivity mode from a call outcome.
func (a *App) track(err error) {
	switch {
	case err == nil:
		a.setMode(ModeOnline)
	case errors.Is(err, api.ErrNetwork):
		a.setMode(ModeOffline)
	case errors.Is(err, api.ErrConfig):
	default:
		a.setMode(ModeOnline)
	}
}

// check reports a failed result to the user and returns its error.
func (a *App) check(res *api.Result) error {
	err := res.AsError()
	a.track(err)
	if err != nil {
		a.printf("Error: %s\n", res.Message())
	}
	return err
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) prompt(text string) (string, error) {
	return getSimpleText(a.reader, text, a.out)
}

func displayName(u *models.UserSummary) string {
	switch {
	case u.Name != "":
		return u.Name
	case u.Email != "":
		return u.Email
	default:
		return u.ID.String()
	}
}
