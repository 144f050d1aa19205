// Package shell is the interactive operator console of a service.
package shell

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"gamehub/config"
	"gamehub/internal/delivery/consumer"
	"gamehub/internal/domain/service"
	"gamehub/internal/infra/bus"
	"gamehub/internal/producer"

	"github.com/chzyer/readline"
	"github.com/gosuri/uitable"
	"github.com/kballard/go-shellquote"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	invalidOption   = "Invalid option. Please try again."
	separator       = "---------------------------------"
	defaultLogLines = 10
)

// RunFunc executes one command; out is the console.
type RunFunc func(ctx context.Context, out io.Writer, args []string) error

// Command is one verb of the console.
type Command struct {
	Name    string
	Usage   string
	MinArgs int
	Run     RunFunc
}

// ListenerControl is the part of the consumer runtime the console drives.
type ListenerControl interface {
	Listeners() []consumer.ListenerInfo
	Start(ctx context.Context, id string) error
	Stop(id string) error
	Logs() *consumer.ConsumeLogStore
}

// Shell reads commands line by line and dispatches them by verb.
type Shell struct {
	title    string
	prompt   string
	history  string
	enabled  bool
	control  ListenerControl
	emitter  service.EventEmitter
	out      io.Writer
	logger   *slog.Logger
	commands map[string]Command
	order    []string

	shutdowner fx.Shutdowner

	mu       sync.Mutex
	rl       *readline.Instance
	stopping bool
}

// ShellParams holds dependencies for the console, injected by Fx.
type ShellParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	Runtime    *consumer.Runtime
	Emitter    *bus.AsyncEmitter
	Shutdowner fx.Shutdowner
	Commands   []Command `group:"shell_commands"`
}

// NewShell builds the console of a service. It only reads stdin when shell.enabled is set.
func NewShell(params ShellParams) *Shell {
	s := New(params.Cfg.Env.ServiceName, os.Stdout, params.Runtime, params.Emitter, params.Logger, params.Commands...)
	s.shutdowner = params.Shutdowner
	if sc := params.Cfg.Shell; sc != nil {
		s.enabled = sc.Enabled
		s.prompt = sc.Prompt
		s.history = sc.HistoryFile
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			s.close()

			return nil
		},
	})

	return s
}

// New builds a console writing to out with the built-in verbs and commands.
func New(
	title string,
	out io.Writer,
	control ListenerControl,
	emitter service.EventEmitter,
	logger *slog.Logger,
	commands ...Command,
) *Shell {
	s := &Shell{
		title:    title,
		prompt:   "> ",
		control:  control,
		emitter:  emitter,
		out:      out,
		logger:   logger,
		commands: make(map[string]Command),
	}

	for _, c := range s.builtins() {
		s.add(c)
	}
	for _, c := range commands {
		s.add(c)
	}

	return s
}

func (s *Shell) add(c Command) {
	if _, ok := s.commands[c.Name]; !ok {
		s.order = append(s.order, c.Name)
	}
	s.commands[c.Name] = c
}

// Serve runs the read loop until exit, end of input or shutdown.
// Leaving the console with exit shuts the service down.
func (s *Shell) Serve(ctx context.Context) error {
	if !s.enabled {
		return nil
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.prompt,
		HistoryFile:     s.history,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          s.out,
	})
	if err != nil {
		return errors.Wrap(err, "failed to open console")
	}

	s.mu.Lock()
	if s.stopping {
		s.mu.Unlock()
		_ = rl.Close()

		return nil
	}
	s.rl = rl
	s.mu.Unlock()
	defer s.close()

	s.logger.Info("[Shell] Console ready", slog.String("title", s.title))
	s.printMenu()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				break
			}

			continue
		}
		if err != nil {
			// io.EOF, or the console was closed by shutdown
			break
		}

		if s.Execute(ctx, line) {
			break
		}
	}

	s.mu.Lock()
	stopping := s.stopping
	s.mu.Unlock()
	if !stopping && s.shutdowner != nil {
		return errors.WithStack(s.shutdowner.Shutdown())
	}

	return nil
}

func (s *Shell) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopping = true
	if s.rl != nil {
		_ = s.rl.Close()
		s.rl = nil
	}
}

// Execute runs one line and reports whether the console should exit.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	words, err := shellquote.Split(line)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)

		return false
	}
	if len(words) == 0 {
		return false
	}

	verb, args := words[0], words[1:]
	fmt.Fprintln(s.out, separator)

	if verb == "exit" || verb == "quit" {
		fmt.Fprintln(s.out, "Exiting console...")

		return true
	}

	cmd, ok := s.commands[verb]
	if !ok {
		fmt.Fprintln(s.out, invalidOption)

		return false
	}
	if len(args) < cmd.MinArgs {
		fmt.Fprintf(s.out, "Too few arguments, required: %d\nUsage: %s\n", cmd.MinArgs, cmd.Usage)

		return false
	}

	if err := cmd.Run(ctx, s.out, args); err != nil {
		s.logger.Warn("[Shell] Command failed", slog.String("command", verb), slog.Any("error", err))
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}

	return false
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "=================================")
	fmt.Fprintf(s.out, "%s\n", centered(s.title+" service", 33))
	fmt.Fprintln(s.out, "=================================")

	table := uitable.New()
	table.AddRow("* exit/quit", "")
	for _, name := range s.order {
		table.AddRow("* "+name, s.commands[name].Usage)
	}
	fmt.Fprintln(s.out, table)
	fmt.Fprintln(s.out)
}

func (s *Shell) builtins() []Command {
	return []Command{
		{
			Name:  "help",
			Usage: "help",
			Run: func(context.Context, io.Writer, []string) error {
				s.printMenu()

				return nil
			},
		},
		{
			Name:    "start",
			Usage:   "start <listenerId...>",
			MinArgs: 1,
			Run: func(ctx context.Context, out io.Writer, args []string) error {
				fmt.Fprintln(out, "> Starting listener(s)")
				for _, id := range args {
					if err := s.control.Start(ctx, id); err != nil {
						fmt.Fprintf(out, "Error: %v\n", err)

						continue
					}
					fmt.Fprintf(out, "Started %s\n", id)
				}

				return nil
			},
		},
		{
			Name:    "stop",
			Usage:   "stop <listenerId...>",
			MinArgs: 1,
			Run: func(_ context.Context, out io.Writer, args []string) error {
				fmt.Fprintln(out, "> Stopping listener(s)")
				for _, id := range args {
					if err := s.control.Stop(id); err != nil {
						fmt.Fprintf(out, "Error: %v\n", err)

						continue
					}
					fmt.Fprintf(out, "Stopped %s\n", id)
				}

				return nil
			},
		},
		{
			Name:  "listeners",
			Usage: "listeners",
			Run: func(_ context.Context, out io.Writer, _ []string) error {
				table := uitable.New()
				table.AddRow("ID", "TOPIC", "GROUP", "CONCURRENCY", "RUNNING")
				for _, l := range s.control.Listeners() {
					table.AddRow(l.ID, l.Topic, l.GroupID, l.Concurrency, l.Running)
				}
				fmt.Fprintln(out, table)

				return nil
			},
		},
		{
			Name:  "logs",
			Usage: "logs [n]",
			Run: func(_ context.Context, out io.Writer, args []string) error {
				n := defaultLogLines
				if len(args) > 0 {
					v, err := strconv.Atoi(args[0])
					if err != nil {
						fmt.Fprintf(out, "Error: '%s' is not a valid number.\n", args[0])

						return nil
					}
					n = v
				}

				table := uitable.New()
				table.MaxColWidth = 60
				table.AddRow("DATE", "CONSUMER", "KEY", "OUTCOME", "EVENT")
				for _, l := range s.control.Logs().Recent(n) {
					table.AddRow(l.ConsumeDate.Format("2006-01-02 15:04:05"), l.ConsumerID, l.Key, l.Outcome, l.Event)
				}
				fmt.Fprintln(out, table)

				return nil
			},
		},
		{
			Name:    "send",
			Usage:   "send <payload...>",
			MinArgs: 1,
			Run: func(ctx context.Context, out io.Writer, args []string) error {
				fmt.Fprintln(out, "> Sending 'ExampleEvent'...")

				return producer.SendExampleEvent(ctx, s.emitter, s.logger, strings.Join(args, " "))
			},
		},
	}
}

func centered(text string, width int) string {
	if len(text) >= width {
		return text
	}

	return strings.Repeat(" ", (width-len(text))/2) + text
}

// parseID reads an optional numeric id argument; 0 means all.
func parseID(out io.Writer, args []string, idx int) (int64, bool) {
	if len(args) <= idx {
		return 0, true
	}

	return parseInt(out, args[idx])
}

func parseInt(out io.Writer, raw string) (int64, bool) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintf(out, "Error: '%s' is not a valid number.\n", raw)

		return 0, false
	}

	return v, true
}
