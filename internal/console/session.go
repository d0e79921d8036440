package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pixil98/go-rotsim/internal/display"
	"github.com/pixil98/go-rotsim/internal/driver"
	"github.com/pixil98/go-rotsim/internal/game"
	"github.com/pixil98/go-rotsim/internal/sim"
	"github.com/pixil98/go-rotsim/internal/skill"
)

const welcome = "Rotation simulator. Type \"help\" for commands, \"skills\" for the skill list."

// Session is one person driving their own game over a line-based connection.
type Session struct {
	in      io.Reader
	out     *lineWriter
	catalog *skill.Catalog
	presets game.Presets

	driver   *driver.FrameDriver
	ctrl     *sim.Controller
	commands map[string]command
	menu     *menu
	quit     bool

	color      bool
	ctrlOpts   []sim.ControllerOpt
	driverOpts []driver.FrameDriverOpt
}

func NewSession(conn io.ReadWriter, c *skill.Catalog, opts ...SessionOpt) *Session {
	s := &Session{
		in:       conn,
		out:      &lineWriter{w: conn, width: display.DefaultWidth},
		catalog:  c,
		commands: commandTable(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.driver = driver.NewFrameDriver(s.driverOpts...)
	s.ctrl = sim.NewController(c, &textView{out: s.out, color: s.color}, s.driver, s.ctrlOpts...)
	s.menu = newMenu(s.ctrl.SkillButtons(), s.out.width)
	return s
}

// Id is the session id carried by every log entry of this session.
func (s *Session) Id() string {
	return s.ctrl.Session()
}

// Play runs the session until the user quits, the input ends or ctx is
// cancelled.
func (s *Session) Play(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	driverDone := make(chan error, 1)
	go func() {
		driverDone <- s.driver.Start(ctx)
	}()

	// Start goroutine to read input lines into a channel
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		defer close(inputChan)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case inputChan <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		inputErrChan <- scanner.Err()
	}()

	slog.InfoContext(ctx, "session started", "session", s.Id())
	defer slog.InfoContext(ctx, "session ended", "session", s.Id())

	if err := s.out.println(welcome); err != nil {
		return err
	}
	if err := s.prompt(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-driverDone:
			if err != nil {
				return fmt.Errorf("running session driver: %w", err)
			}
			return nil

		case line, ok := <-inputChan:
			if !ok {
				// Input channel closed (connection lost).
				select {
				case err := <-inputErrChan:
					return err
				default:
					return nil
				}
			}

			line = strings.TrimSpace(line)
			if line != "" {
				var execErr error
				err := s.driver.Call(ctx, func() {
					execErr = s.exec(line)
				})
				if err != nil {
					return fmt.Errorf("running command: %w", err)
				}

				if execErr != nil {
					var userErr *UserError
					if !errors.As(execErr, &userErr) {
						return fmt.Errorf("command execution failed: %w", execErr)
					}
					if err := s.out.println(userErr.Message); err != nil {
						return err
					}
				}

				if s.quit {
					return s.out.println("Goodbye!")
				}
			}

			if err := s.prompt(ctx); err != nil {
				return err
			}
		}
	}
}

func (s *Session) prompt(ctx context.Context) error {
	var text string
	err := s.driver.Call(ctx, func() {
		text = s.promptText()
	})
	if err != nil {
		return err
	}
	return s.out.print(text)
}

func (s *Session) promptText() string {
	state := ""
	if s.ctrl.Running() {
		state = " running"
	}
	return fmt.Sprintf("[%.3fs %s%s]> ", s.ctrl.Game().Time.Seconds(), s.ctrl.TickMode(), state)
}
