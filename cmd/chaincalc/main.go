// Command chaincalc runs calculator scripts and prints the resulting value.
//
// Commands are read one per line from -script or, without it, from stdin:
//
//	add 5
//	subtract 10
//	undo
//	print
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"
	"golang.org/x/term"

	"github.com/gophersatwork/chaincalc"
	"github.com/gophersatwork/chaincalc/internal/config"
	"github.com/gophersatwork/chaincalc/internal/script"
)

const prompt = "> "

// result is the JSON form of the final state. Value is null when the
// register holds a non-finite number, which JSON can't represent.
type result struct {
	Value     *float64 `json:"value"`
	Display   string   `json:"display"`
	UndoDepth int      `json:"undoDepth"`
	RedoDepth int      `json:"redoDepth"`
}

type streams struct {
	in          io.Reader
	out         io.Writer
	err         io.Writer
	interactive bool // in is a terminal; prompt and keep going on bad lines
}

func main() {
	args, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	s := streams{
		in:          os.Stdin,
		out:         os.Stdout,
		err:         os.Stderr,
		interactive: args.script == "" && term.IsTerminal(int(os.Stdin.Fd())),
	}

	if err := run(args, afero.NewOsFs(), s); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args cliArgs, fs afero.Fs, s streams) error {
	cfg, err := config.Load(fs, args.config)
	if err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if args.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(s.err, &slog.HandlerOptions{Level: level}))

	calc := chaincalc.New(cfg.CalculatorOptions(logger)...)

	options := []script.Option{
		script.WithFs(fs),
		script.WithOutput(s.out),
		script.WithLogger(logger),
	}
	if args.accumulate {
		options = append(options, script.WithAccumulateErrors())
	}
	runner := script.NewRunner(options...)

	switch {
	case args.script != "":
		err = runner.RunFile(calc, args.script)
	case s.interactive:
		err = repl(runner, calc, s)
	default:
		err = runner.Run(calc, s.in)
	}
	if err != nil {
		return err
	}

	format := cfg.Output
	if args.json {
		format = config.OutputJSON
	}
	return printResult(s.out, calc, format)
}

// repl executes commands as they are typed. A bad line is reported and
// skipped; the session only ends at EOF.
func repl(runner *script.Runner, calc *chaincalc.Calculator, s streams) error {
	scanner := bufio.NewScanner(s.in)
	line := 0

	fmt.Fprint(s.out, prompt)
	for scanner.Scan() {
		line++

		cmd, ok, err := script.ParseLine(scanner.Text(), line)
		switch {
		case err != nil:
			fmt.Fprintf(s.err, "error: %v\n", err)
		case ok:
			if err := runner.Exec(calc, cmd); err != nil {
				return err
			}
		}
		fmt.Fprint(s.out, prompt)
	}
	fmt.Fprintln(s.out)

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func printResult(w io.Writer, calc *chaincalc.Calculator, format string) error {
	if format != config.OutputJSON {
		_, err := fmt.Fprintln(w, calc.String())
		return err
	}

	snap := calc.Snapshot()
	res := result{
		Display:   calc.String(),
		UndoDepth: snap.UndoDepth,
		RedoDepth: snap.RedoDepth,
	}
	if !math.IsInf(snap.Value, 0) && !math.IsNaN(snap.Value) {
		res.Value = &snap.Value
	}

	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
