package script

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/gophersatwork/chaincalc"
)

// Runner executes calculator scripts.
// A script is validated in full before any of its commands run, so a bad
// line never leaves the calculator half-way through a script.
type Runner struct {
	fs               afero.Fs
	out              io.Writer // destination of "print"
	logger           *slog.Logger
	accumulateErrors bool // If true, report every bad line; if false, stop at the first
}

// Option configures a Runner.
type Option func(*Runner)

// NewRunner creates a runner reading scripts from the OS filesystem and
// discarding printed values unless WithOutput is given.
func NewRunner(options ...Option) *Runner {
	r := &Runner{
		fs:     afero.NewOsFs(),
		out:    io.Discard,
		logger: slog.New(slog.DiscardHandler),
	}

	// Apply options
	for _, option := range options {
		option(r)
	}

	return r
}

// WithFs sets the filesystem RunFile reads from.
func WithFs(fs afero.Fs) Option {
	return func(r *Runner) {
		r.fs = fs
	}
}

// WithOutput sets where "print" writes the current value.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// WithLogger sets the runner's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithAccumulateErrors makes Parse report every invalid line instead of
// stopping at the first one.
func WithAccumulateErrors() Option {
	return func(r *Runner) {
		r.accumulateErrors = true
	}
}

// Parse reads a whole script.
// Invalid lines are reported as a *ValidationError wrapping one *ParseError
// per line.
func (r *Runner) Parse(src io.Reader) ([]Command, error) {
	var (
		cmds []Command
		errs []error
	)

	scanner := bufio.NewScanner(src)
	line := 0
	for scanner.Scan() {
		line++

		cmd, ok, err := ParseLine(scanner.Text(), line)
		if err != nil {
			errs = append(errs, err)
			if !r.accumulateErrors {
				break
			}
			continue
		}
		if ok {
			cmds = append(cmds, cmd)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	if err := newValidationError(errs); err != nil {
		return nil, err
	}
	return cmds, nil
}

// Exec runs a single command against calc.
func (r *Runner) Exec(calc *chaincalc.Calculator, cmd Command) error {
	def, ok := commands[cmd.Name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Name)
	}

	if def.run == nil {
		if _, err := fmt.Fprintln(r.out, calc.String()); err != nil {
			return fmt.Errorf("failed to print value: %w", err)
		}
		return nil
	}

	def.run(calc, cmd.Arg)
	r.logger.Debug("exec", slog.Int("line", cmd.Line), slog.String("cmd", cmd.String()), slog.String("value", calc.String()))
	return nil
}

// Run parses src and, if it is valid, executes every command in order.
func (r *Runner) Run(calc *chaincalc.Calculator, src io.Reader) error {
	cmds, err := r.Parse(src)
	if err != nil {
		return err
	}

	for _, cmd := range cmds {
		if err := r.Exec(calc, cmd); err != nil {
			return fmt.Errorf("line %d: %w", cmd.Line, err)
		}
	}
	return nil
}

// RunFile runs the script stored at path on the runner's filesystem.
func (r *Runner) RunFile(calc *chaincalc.Calculator, path string) error {
	f, err := r.fs.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open script %s: %w", path, err)
	}
	defer f.Close()

	if err := r.Run(calc, f); err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}
	return nil
}
