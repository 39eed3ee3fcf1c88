// Package cli is the terminal front end: it logs in, keeps the token and
// renders the same views as the web client.
package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/okellojun/HackLab/internal/client"
	"github.com/okellojun/HackLab/internal/client/view"
)

const usage = `usage: hacklab [-server URL] [-token-file PATH] <command>

commands:
  register                  create an account
  login                     sign in and store the token
  logout                    forget the stored token
  menu                      list the screens available to the signed-in role
  view <name> [flags]       render dashboard, problems, browse, hackathons, analytics or profile
  form <kind>               fill in a problem, hackathon or profile form (not sent)
`

type App struct {
	client  *client.Client
	in      *bufio.Reader
	out     io.Writer
	stdinFd int
}

func NewApp(c *client.Client, in io.Reader, out io.Writer, stdinFd int) *App {
	return &App{client: c, in: bufio.NewReader(in), out: out, stdinFd: stdinFd}
}

// Main parses global flags, builds the app and runs one command.
func Main(ctx context.Context, args []string, stdin *os.File, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hacklab", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage); fs.PrintDefaults() }

	defaultURL := os.Getenv("HACKLAB_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:4000"
	}
	serverURL := fs.String("server", defaultURL, "API base URL")
	tokenFile := fs.String("token-file", "", "where the session token is kept (default: user config dir)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	path := *tokenFile
	if path == "" {
		p, err := client.DefaultTokenPath()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		path = p
	}

	app := NewApp(client.New(*serverURL, client.NewTokenStore(path), nil), stdin, stdout, int(stdin.Fd()))
	if err := app.Run(ctx, fs.Args()); err != nil {
		if errors.Is(err, errUsage) {
			if err != errUsage {
				fmt.Fprintln(stderr, "hacklab:", err)
			}
			fs.Usage()
			return 2
		}
		fmt.Fprintln(stderr, "hacklab:", err)
		return 1
	}
	return 0
}

var errUsage = errors.New("usage")

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "register":
		return a.register(ctx)
	case "login":
		return a.login(ctx)
	case "logout":
		if err := a.client.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Logged out.")
		return nil
	case "menu":
		return view.RenderMenu(a.out, a.role())
	case "view":
		return a.view(ctx, args[1:])
	case "form":
		return a.form(args[1:])
	default:
		return errUsage
	}
}

func (a *App) register(ctx context.Context) error {
	var req client.RegisterRequest
	var err error
	if req.Username, err = prompt(a.in, a.out, "Username"); err != nil {
		return err
	}
	if req.Email, err = prompt(a.in, a.out, "Email"); err != nil {
		return err
	}
	if req.Role, err = prompt(a.in, a.out, "Role (hacker/company)"); err != nil {
		return err
	}
	if req.Password, err = promptPassword(a.stdinFd, a.out); err != nil {
		return err
	}

	resp, err := a.client.Register(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Welcome, %s. You are registered as a %s.\n", resp.User.Username, resp.User.Role)
	return nil
}

func (a *App) login(ctx context.Context) error {
	var req client.LoginRequest
	var err error
	if req.Username, err = prompt(a.in, a.out, "Username"); err != nil {
		return err
	}
	if req.Password, err = promptPassword(a.stdinFd, a.out); err != nil {
		return err
	}

	resp, err := a.client.Login(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged in as %s (%s).\n", resp.User.Username, resp.User.Role)
	return nil
}

func (a *App) view(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	name := args[0]

	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	fs.SetOutput(a.out)
	var f view.ProblemFilter
	fs.StringVar(&f.Search, "search", "", "match title, description or skills")
	fs.StringVar(&f.Category, "category", view.All, "one of the problem categories")
	fs.StringVar(&f.Difficulty, "difficulty", view.All, "Easy, Medium or Hard")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var err error
	if f.Category, err = view.Choice(view.Categories, f.Category); err != nil {
		return fmt.Errorf("%w: -category: %w", errUsage, err)
	}
	if f.Difficulty, err = view.Choice(view.Difficulties, f.Difficulty); err != nil {
		return fmt.Errorf("%w: -difficulty: %w", errUsage, err)
	}
	return a.render(ctx, view.Route(name, a.role()), f)
}

// role is read from the stored token; it is empty when signed out.
func (a *App) role() string {
	claims, err := a.client.Tokens().Claims()
	if err != nil {
		return ""
	}
	return claims.Role
}

func (a *App) form(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	f, err := view.NewForm(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	f.Show()
	for _, field := range f.Fields() {
		if *field.Value, err = prompt(a.in, a.out, field.Label); err != nil {
			return err
		}
	}
	answer, err := prompt(a.in, a.out, "Submit? (y/N)")
	if err != nil {
		return err
	}
	if answer == "y" || answer == "Y" {
		f.Submit()
	} else {
		f.Cancel()
	}

	if err := view.RenderForm(a.out, f); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Forms are not saved yet; nothing was sent to the server.")
	return nil
}

func (a *App) render(ctx context.Context, screen view.Screen, f view.ProblemFilter) error {
	switch screen {
	case view.ScreenCompanyProblems, view.ScreenHackerBrowse:
		problems, err := load(ctx, a.client.Problems)
		if err != nil {
			return err
		}
		if screen == view.ScreenCompanyProblems {
			return view.RenderCompanyProblems(a.out, problems, f)
		}
		return view.RenderHackerBrowse(a.out, problems, f)
	case view.ScreenHackathons:
		hackathons, err := load(ctx, a.client.Hackathons)
		if err != nil {
			return err
		}
		return view.RenderHackathons(a.out, hackathons)
	case view.ScreenAnalytics:
		analytics, err := load(ctx, a.client.Analytics)
		if err != nil {
			return err
		}
		return view.RenderAnalytics(a.out, analytics)
	case view.ScreenProfile:
		profile, err := load(ctx, a.client.Profile)
		if err != nil {
			return err
		}
		return view.RenderProfile(a.out, profile)
	default:
		dashboard, err := load(ctx, a.client.Dashboard)
		if err != nil {
			return err
		}
		return view.RenderDashboard(a.out, dashboard)
	}
}

// load mounts a single-use resource and turns its settled state into a
// value or an error carrying the server's message.
func load[T any](ctx context.Context, fetch func(context.Context) (T, error)) (T, error) {
	r := client.NewResource(fetch)
	r.Mount(ctx)
	state, data, msg := r.Snapshot()
	if state != client.Loaded {
		var zero T
		return zero, errors.New(msg)
	}
	return data, nil
}
