package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/erazemk/freshkeeper/internal/api"
	"github.com/erazemk/freshkeeper/internal/auth"
	"github.com/erazemk/freshkeeper/internal/catalog"
	"github.com/erazemk/freshkeeper/internal/config"
	"github.com/erazemk/freshkeeper/internal/i18n"
	"github.com/erazemk/freshkeeper/internal/model"
	"github.com/erazemk/freshkeeper/internal/nav"
	"github.com/erazemk/freshkeeper/internal/screen"
	"github.com/erazemk/freshkeeper/internal/status"
	"github.com/erazemk/freshkeeper/internal/store"
)

// levelRouter is a slog.Handler that sends records at or above the console
// level to the console and, when a log file is open, every record to the file.
type levelRouter struct {
	console slog.Handler
	file    slog.Handler
}

func (lr *levelRouter) Enabled(ctx context.Context, level slog.Level) bool {
	if lr.console.Enabled(ctx, level) {
		return true
	}
	return lr.file != nil && lr.file.Enabled(ctx, level)
}

func (lr *levelRouter) Handle(ctx context.Context, r slog.Record) error {
	if lr.console.Enabled(ctx, r.Level) {
		if err := lr.console.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	if lr.file != nil && lr.file.Enabled(ctx, r.Level) {
		return lr.file.Handle(ctx, r)
	}
	return nil
}

func (lr *levelRouter) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &levelRouter{console: lr.console.WithAttrs(attrs)}
	if lr.file != nil {
		next.file = lr.file.WithAttrs(attrs)
	}
	return next
}

func (lr *levelRouter) WithGroup(name string) slog.Handler {
	next := &levelRouter{console: lr.console.WithGroup(name)}
	if lr.file != nil {
		next.file = lr.file.WithGroup(name)
	}
	return next
}

// setupLogger configures structured logging. The console gets WARN and above,
// or DEBUG and above when verbose. If logPath is non-empty, all levels are
// also written to that file. Returns a cleanup function that closes the log
// file (if opened).
func setupLogger(console io.Writer, logPath string, verbose bool) (func(), error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := &levelRouter{
		console: slog.NewTextHandler(console, &slog.HandlerOptions{Level: level}),
	}

	var cleanup func()
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		cleanup = func() { f.Close() }
		handler.file = slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	slog.SetDefault(slog.New(handler))
	return cleanup, nil
}

// options are the parsed command line.
type options struct {
	command  string
	envFile  string
	server   string
	email    string
	token    string
	logPath  string
	lang     string
	verbose  bool
	search   string
	location string
	status   string
	page     int
	size     int
}

const usage = `Usage: freshkeeper [flags] [home|products|settings|login|logout]

Commands:
  home        dashboard with a status summary (default)
  products    list products from the API with their expiry status
  settings    show the API server and interface language
  login       log in and show the dashboard
  logout      end the session

Flags:
  -s, -server <url>       API base URL (default: $FRESHKEEPER_API_BASE_URL or http://127.0.0.1:8000)
  -e, -email <email>      log in with this email; password from $FRESHKEEPER_PASSWORD or a prompt
  -t, -token <jwt>        use an existing access token (default: $FRESHKEEPER_TOKEN)
  -l, -log <path>         log file path (default: no file)
      -env <path>         .env file to load (default: .env)
      -lang <fr|en|es>    interface language (default: from the environment, else fr)
  -v, -verbose            log requests and session changes to stderr
  -h, -help               show this help and exit

Products flags:
  -q, -search <text>      search term
      -location <name>    fridge, freezer or pantry
      -status <label>     only show OK, SOON, EXPIRED or OUT_OF_STOCK
      -page <n>           page number (default: 1)
      -size <n>           page size (default: 50)
`

// parseArgs parses flags before and after the command name.
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("freshkeeper", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.server, "server", "", "")
	fs.StringVar(&opts.server, "s", "", "")
	fs.StringVar(&opts.email, "email", "", "")
	fs.StringVar(&opts.email, "e", "", "")
	fs.StringVar(&opts.token, "token", "", "")
	fs.StringVar(&opts.token, "t", "", "")
	fs.StringVar(&opts.logPath, "log", "", "")
	fs.StringVar(&opts.logPath, "l", "", "")
	fs.StringVar(&opts.envFile, "env", ".env", "")
	fs.StringVar(&opts.lang, "lang", "", "")
	fs.BoolVar(&opts.verbose, "verbose", false, "")
	fs.BoolVar(&opts.verbose, "v", false, "")
	fs.StringVar(&opts.search, "search", "", "")
	fs.StringVar(&opts.search, "q", "", "")
	fs.StringVar(&opts.location, "location", "", "")
	fs.StringVar(&opts.status, "status", "", "")
	fs.IntVar(&opts.page, "page", 1, "")
	fs.IntVar(&opts.size, "size", 50, "")

	fs.Usage = func() { fmt.Fprint(stderr, usage) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.command = string(nav.ScreenHome)
	if fs.NArg() > 0 {
		opts.command = fs.Arg(0)
		if err := fs.Parse(fs.Args()[1:]); err != nil {
			return nil, err
		}
		if fs.NArg() > 0 {
			fs.Usage()
			return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
		}
	}

	return opts, nil
}

// app holds everything a command needs.
type app struct {
	cfg      *config.Config
	opts     *options
	session  *store.Session
	client   *api.Client
	renderer *screen.Renderer
	out      io.Writer
	prompt   func() (string, error)
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout, os.Stderr, promptPassword); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run executes one command and renders its screen to out.
func run(ctx context.Context, opts *options, out, stderr io.Writer, prompt func() (string, error)) error {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return err
	}
	applyFlags(cfg, opts)

	closeLog, err := setupLogger(stderr, cfg.LogPath, cfg.Debug)
	if err != nil {
		return err
	}
	if closeLog != nil {
		defer closeLog()
	}

	lang := cfg.Lang
	if lang == "" {
		lang = i18n.Detect(os.Getenv)
	} else if code, ok := i18n.Match(lang); ok {
		lang = code
	}
	tr, err := i18n.New(lang)
	if err != nil {
		return err
	}
	renderer, err := screen.NewRenderer(tr)
	if err != nil {
		return fmt.Errorf("loading screens: %w", err)
	}

	session := store.NewSession()
	unsubscribe := session.Subscribe(func(st store.State) {
		slog.Debug("session changed", "logged_in", st.LoggedIn(), "stack", nav.Route(st))
	})
	defer unsubscribe()

	a := &app{
		cfg:      cfg,
		opts:     opts,
		session:  session,
		client:   api.New(api.Config{BaseURL: cfg.APIBaseURL, Timeout: cfg.HTTPTimeout}, session),
		renderer: renderer,
		out:      out,
		prompt:   prompt,
	}
	return a.dispatch(ctx)
}

// applyFlags lets command line flags override the environment.
func applyFlags(cfg *config.Config, opts *options) {
	if opts.server != "" {
		cfg.APIBaseURL = opts.server
	}
	if opts.email != "" {
		cfg.Email = opts.email
	}
	if opts.token != "" {
		cfg.Token = opts.token
	}
	if opts.logPath != "" {
		cfg.LogPath = opts.logPath
	}
	if opts.lang != "" {
		cfg.Lang = opts.lang
	}
	if opts.verbose {
		cfg.Debug = true
	}
}

func (a *app) dispatch(ctx context.Context) error {
	tr := a.renderer.Translator()

	if a.opts.command == "logout" {
		a.session.Logout()
		return a.renderer.Render(a.out, nav.ScreenLogin, &screen.LoginData{
			PageData: screen.PageData{Notice: tr.T("auth.loggedOut")},
		})
	}

	target, err := nav.Parse(a.opts.command)
	if err != nil {
		return err
	}

	if err := a.startSession(ctx); err != nil {
		slog.Warn("login failed", "email", a.cfg.Email, "error", err)
		if rerr := a.renderer.Render(a.out, nav.ScreenLogin, &screen.LoginData{Error: err.Error()}); rerr != nil {
			return rerr
		}
		return err
	}

	shown := nav.Resolve(a.session, target)
	page := screen.PageData{User: a.session.User()}

	switch shown {
	case nav.ScreenLogin:
		if err := a.renderer.Render(a.out, nav.ScreenLogin, &screen.LoginData{PageData: page}); err != nil {
			return err
		}
		if target != nav.ScreenLogin {
			return store.ErrNotLoggedIn
		}
		return nil

	case nav.ScreenHome:
		return a.renderer.Render(a.out, nav.ScreenHome, screen.NewHomeData(page.User, catalog.SampleProducts()))

	case nav.ScreenProducts:
		return a.products(ctx, page)

	case nav.ScreenSettings:
		return a.renderer.Render(a.out, nav.ScreenSettings, &screen.SettingsData{
			PageData: page,
			Server:   a.client.BaseURL(),
			Language: tr.Lang(),
		})
	}
	return fmt.Errorf("no handler for screen %q", shown)
}

// startSession logs in from a token or from email and password. Having
// neither is not an error; navigation then stays on the login screen.
func (a *app) startSession(ctx context.Context) error {
	if a.cfg.Token != "" {
		claims, err := auth.ParseClaims(a.cfg.Token)
		switch {
		case err != nil:
			slog.Warn("could not read access token claims", "error", err)
			a.session.Login(a.cfg.Token, nil)
			return nil
		case auth.Expired(claims, time.Now()):
			slog.Warn("access token expired", "expired_at", claims.ExpiresAt.Time)
		default:
			user, _ := auth.UserFromToken(a.cfg.Token)
			a.session.Login(a.cfg.Token, user)
			return nil
		}
	}

	if a.cfg.Email == "" {
		return nil
	}

	password := a.cfg.Password
	if password == "" {
		p, err := a.prompt()
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		password = p
	}

	resp, err := a.client.Login(ctx, a.cfg.Email, password)
	if err != nil {
		return err
	}

	user, err := auth.UserFromToken(resp.AccessToken)
	if err != nil {
		user = &model.User{Email: a.cfg.Email}
	}
	a.session.Login(resp.AccessToken, user)
	slog.Info("user logged in", "user", user.Email)
	return nil
}

func (a *app) products(ctx context.Context, page screen.PageData) error {
	params := api.ListParams{Page: a.opts.page, Size: a.opts.size, Search: a.opts.search}
	if a.opts.location != "" {
		loc, err := model.ParseLocation(a.opts.location)
		if err != nil {
			return err
		}
		params.Location = loc
	}

	var only status.Status
	if a.opts.status != "" {
		s, err := status.Parse(a.opts.status)
		if err != nil {
			return err
		}
		only = s
	}

	res := catalog.Load(ctx, a.client, params)
	products := res.Products
	if only != "" {
		products = catalog.Filter(products, only)
	}

	if res.Fallback {
		page.Notice = a.renderer.Translator().T("products.fallback")
	}
	return a.renderer.Render(a.out, nav.ScreenProducts, &screen.ProductsData{
		PageData: page,
		Search:   params.Search,
		Page:     params.Page,
		Skipped:  res.Skipped,
		Cards:    screen.Cards(products),
	})
}

// promptPassword reads a password from the terminal without echo.
func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("no password given and stdin is not a terminal; set FRESHKEEPER_PASSWORD")
	}
	fmt.Fprint(os.Stderr, "Password: ")
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
