package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/appengine-ltd/timetamer/internal/game"
	"github.com/appengine-ltd/timetamer/internal/parser"
	"github.com/appengine-ltd/timetamer/internal/ui/theme"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string

	Seed  int64
	Words bool

	In     io.Reader
	Out    io.Writer
	Logger *log.Logger
	// Rand replaces the seeded source when set.
	Rand game.Rand
}

type App struct {
	cfg    AppConfig
	in     *bufio.Scanner
	out    io.Writer
	styles theme.Styles
	logger *log.Logger

	// first write error; once set, nothing more is written
	err error
}

func NewApp(cfg AppConfig) *App {
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return &App{
		cfg:    cfg,
		in:     bufio.NewScanner(cfg.In),
		out:    cfg.Out,
		styles: theme.NewStyles(cfg.Out),
		logger: cfg.Logger,
	}
}

// Run plays one session to completion. Only output failures are returned.
func (a *App) Run() error {
	a.logger.Info("starting", "version", a.cfg.Version, "commit", a.cfg.Commit, "built", a.cfg.BuildDate)
	a.println(a.styles.Title.Render("=== TimeTamer ==="))

	a.print("Enter your name: ")
	name, _ := a.readLine()

	a.print("Enter your age (Enter = 18): ")
	rawAge, _ := a.readLine()
	age, invalid := parser.ParseAge(rawAge, game.DefaultPlayerAge)
	if invalid {
		a.println(a.styles.Notice.Render(fmt.Sprintf("Invalid age. Using %d.", game.DefaultPlayerAge)))
	}

	session, err := game.NewSession(game.SessionConfig{
		PlayerName: name,
		PlayerAge:  age,
		Seed:       a.cfg.Seed,
		Rand:       a.cfg.Rand,
		Logger:     a.logger,
	})
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	menu := parser.NewMenuParser(session.EndChoice())
	if a.cfg.Words {
		menu.WithWords(parser.MenuRegistry(activityNames(session.Catalog)))
	}

	for session.Running() && a.err == nil {
		a.renderMenu(session)

		line, ok := a.readLine()
		a.step(session, menu, line)
		if !ok && session.Running() {
			a.logger.Warn("input closed, ending session")
			session.End()
		}
	}

	a.println("Final Stats:")
	a.println(a.styles.Status.Render(session.Player.StatusSummary()))
	a.println("Thanks for playing TimeTamer!")
	return a.err
}

// step handles one menu line. Every failure is reported and leaves the
// session running.
func (a *App) step(session *game.Session, menu *parser.MenuParser, line string) {
	choice, err := menu.ParseChoice(line)
	if err != nil {
		a.reportError(err)
		return
	}
	res, err := session.Execute(choice.Number)
	if err != nil {
		a.reportError(err)
		return
	}

	switch res.Kind {
	case game.CommandActivity:
		a.println(a.styles.Result.Render(res.Outcome.Message))
	case game.CommandHistory:
		a.renderHistory(res.Entries)
	}
}

func (a *App) reportError(err error) {
	switch {
	case errors.Is(err, parser.ErrInputFormat), errors.Is(err, parser.ErrInvalidChoice):
		a.logger.Debug("rejected menu input", "err", err)
	default:
		a.logger.Warn("menu command failed", "err", err)
	}
	a.println(a.styles.Error.Render("Error: " + err.Error()))
}

// readLine returns the next line without its newline. At end of input it
// returns "" and false.
func (a *App) readLine() (string, bool) {
	if a.in.Scan() {
		return a.in.Text(), true
	}
	if err := a.in.Err(); err != nil {
		a.logger.Warn("read input", "err", err)
	}
	return "", false
}

func (a *App) print(s string) {
	if a.err != nil {
		return
	}
	_, a.err = io.WriteString(a.out, s)
}

func (a *App) println(s string) {
	a.print(s + "\n")
}

func activityNames(c game.Catalog) []string {
	names := make([]string, 0, c.Len())
	for _, act := range c.Activities {
		names = append(names, act.Name)
	}
	return names
}
