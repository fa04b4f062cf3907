package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"photostudio-backend/internal/auth"
	"photostudio-backend/internal/config"
	"photostudio-backend/internal/database/models"
	"photostudio-backend/internal/repository"
	"photostudio-backend/internal/seed"
	"photostudio-backend/internal/service"
	"photostudio-backend/internal/session"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"gorm.io/gorm"
)

const usage = `Usage: studioctl <command> [flags]

Commands:
  login     select the studio or team member identity used by later commands
  logout    clear the selected identity
  whoami    print the selected identity
  token     print the bearer token issued at login
  seed      load yaml fixtures into the database
  events    list events visible to the selected identity
  schedule  print an event's ceremonies and crew
  share     print a gallery's share link
`

var errUsage = errors.New("usage")

type app struct {
	cfg     *config.Config
	session *session.Session
	out     io.Writer
	openDB  func(cfg *config.Config) (*gorm.DB, error)
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return errUsage
	}

	var cmd func(context.Context, []string) error
	switch args[0] {
	case "login":
		cmd = a.login
	case "logout":
		cmd = a.logout
	case "whoami":
		cmd = a.whoami
	case "token":
		cmd = a.token
	case "seed":
		cmd = a.seed
	case "events":
		cmd = a.events
	case "schedule":
		cmd = a.schedule
	case "share":
		cmd = a.share
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}

	err := cmd(ctx, args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	return err
}

func (a *app) flagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *app) services() (*service.Services, error) {
	db, err := a.openDB(a.cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return service.NewServices(repository.NewStore(db), service.NewValidator(), a.cfg.GalleryBaseURL), nil
}

func (a *app) login(_ context.Context, args []string) error {
	fs := a.flagSet("login")
	studio := fs.String("studio", "", "studio ID")
	member := fs.String("member", "", "team member ID (omit to act as the studio owner)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	studioID, err := uuid.Parse(*studio)
	if err != nil {
		return fmt.Errorf("invalid --studio: %w", err)
	}
	caller := auth.StudioCaller(studioID)
	if *member != "" {
		memberID, err := uuid.Parse(*member)
		if err != nil {
			return fmt.Errorf("invalid --member: %w", err)
		}
		caller = auth.TeamMemberCaller(studioID, memberID)
	}
	return a.startSession(caller)
}

func (a *app) startSession(caller auth.Caller) error {
	token, err := auth.NewTokenService(a.cfg.JWTSecret, 0).Issue(caller)
	if err != nil {
		return err
	}
	if err := a.session.Login(caller, token); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", caller)
	return nil
}

func (a *app) logout(_ context.Context, args []string) error {
	if err := a.flagSet("logout").Parse(args); err != nil {
		return err
	}
	if err := a.session.Teardown(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *app) whoami(_ context.Context, args []string) error {
	if err := a.flagSet("whoami").Parse(args); err != nil {
		return err
	}
	caller, err := a.session.Caller()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, caller)
	return nil
}

func (a *app) token(_ context.Context, args []string) error {
	if err := a.flagSet("token").Parse(args); err != nil {
		return err
	}
	if _, err := a.session.Caller(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.session.Token())
	return nil
}

func (a *app) seed(ctx context.Context, args []string) error {
	fs := a.flagSet("seed")
	path := fs.String("path", "fixtures", "fixture file or directory")
	login := fs.Bool("login", false, "log in as the last seeded studio")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fixtures, err := seed.Load(*path)
	if err != nil {
		return err
	}
	if len(fixtures) == 0 {
		return fmt.Errorf("no fixtures found under %s", *path)
	}

	services, err := a.services()
	if err != nil {
		return err
	}
	seeder := seed.NewSeeder(services)

	var last uuid.UUID
	for _, fixture := range fixtures {
		result, err := seeder.Seed(ctx, fixture)
		if err != nil {
			return fmt.Errorf("%s: %w", fixture.Source, err)
		}
		fmt.Fprintf(a.out, "%s: studio %s, %d members, %d events, %d ceremonies, %d assignments, %d photos, %d galleries\n",
			fixture.Source, result.StudioID, result.TeamMembers, result.Events, result.Ceremonies,
			result.Assignments, result.Photos, result.Galleries)
		last = result.StudioID
	}

	if *login {
		return a.startSession(auth.StudioCaller(last))
	}
	return nil
}

func (a *app) events(_ context.Context, args []string) error {
	fs := a.flagSet("events")
	status := fs.String("status", "", "only events in this status")
	from := fs.String("from", "", "earliest date (YYYY-MM-DD)")
	to := fs.String("to", "", "latest date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	caller, err := a.session.Caller()
	if err != nil {
		return err
	}

	filter := &service.EventFilter{From: *from, To: *to}
	if *status != "" {
		s := models.EventStatus(*status)
		if !s.IsValid() {
			return fmt.Errorf("invalid --status %q", *status)
		}
		filter.Status = &s
	}

	services, err := a.services()
	if err != nil {
		return err
	}
	events, err := services.Events.ListEvents(caller, filter)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTIME\tNAME\tSTATUS\tVENUE")
	for _, e := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", e.ID, e.Date, e.Time, e.Name, e.Status, e.Venue)
	}
	return w.Flush()
}

func (a *app) schedule(_ context.Context, args []string) error {
	fs := a.flagSet("schedule")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("schedule takes exactly one event ID")
	}
	eventID, err := uuid.Parse(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid event ID: %w", err)
	}

	caller, err := a.session.Caller()
	if err != nil {
		return err
	}
	services, err := a.services()
	if err != nil {
		return err
	}

	event, err := services.Events.GetEvent(caller, eventID)
	if err != nil {
		return err
	}
	ceremonies, err := services.Ceremonies.ListCeremonies(caller, eventID)
	if err != nil {
		return err
	}
	all, err := services.Assignments.ListForScope(caller, eventID, nil)
	if err != nil {
		return err
	}
	var crew []service.AssignmentResponse
	for _, asg := range all {
		if asg.WholeEvent {
			crew = append(crew, asg)
		}
	}

	fmt.Fprintf(a.out, "%s on %s at %s (%s)\n", event.Name, event.Date, event.Time, event.Status)
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tCEREMONY\tSTART\tEND\tCREW")
	fmt.Fprintf(w, "-\twhole event\t\t\t%s\n", crewNames(crew))
	for _, c := range ceremonies {
		id := c.ID
		assigned, err := services.Assignments.ListForScope(caller, eventID, &id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", c.OrderIndex, c.Name, deref(c.StartTime), deref(c.EndTime), crewNames(assigned))
	}
	return w.Flush()
}

func (a *app) share(_ context.Context, args []string) error {
	fs := a.flagSet("share")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("share takes exactly one gallery ID")
	}
	galleryID, err := uuid.Parse(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid gallery ID: %w", err)
	}

	caller, err := a.session.Caller()
	if err != nil {
		return err
	}
	services, err := a.services()
	if err != nil {
		return err
	}
	link, err := services.Galleries.ShareLink(caller, galleryID)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, link.URL)
	if link.AccessCode != nil {
		fmt.Fprintf(a.out, "Access code: %s\n", *link.AccessCode)
	}
	return nil
}

// crewNames lists members with their effective role; an empty scope prints "-"
func crewNames(assignments []service.AssignmentResponse) string {
	if len(assignments) == 0 {
		return "-"
	}
	out := ""
	for i, a := range assignments {
		if i > 0 {
			out += ", "
		}
		out += a.MemberName
		if a.EffectiveRole != "" {
			out += " (" + a.EffectiveRole + ")"
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
