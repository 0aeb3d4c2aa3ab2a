package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gophersatwork/chaincalc"
)

// Command is one parsed script line.
type Command struct {
	Name string  // lower-cased command name
	Arg  float64 // only meaningful for commands that take a number
	Line int
}

// String renders the command back in script syntax.
func (c Command) String() string {
	if commands[c.Name].unary {
		return c.Name + " " + strconv.FormatFloat(c.Arg, 'g', -1, 64)
	}
	return c.Name
}

type commandDef struct {
	unary bool // takes one numeric argument
	run   func(calc *chaincalc.Calculator, arg float64)
}

// commands maps every script command to the calculator method it invokes.
// "print" has no entry in the calculator and is handled by the runner.
var commands = map[string]commandDef{
	"add":       {unary: true, run: func(c *chaincalc.Calculator, n float64) { c.Add(n) }},
	"subtract":  {unary: true, run: func(c *chaincalc.Calculator, n float64) { c.Subtract(n) }},
	"multiply":  {unary: true, run: func(c *chaincalc.Calculator, n float64) { c.Multiply(n) }},
	"divide":    {unary: true, run: func(c *chaincalc.Calculator, n float64) { c.Divide(n) }},
	"pow":       {unary: true, run: func(c *chaincalc.Calculator, n float64) { c.Pow(n) }},
	"sqrt":      {run: func(c *chaincalc.Calculator, _ float64) { c.Sqrt() }},
	"sin":       {run: func(c *chaincalc.Calculator, _ float64) { c.Sin() }},
	"cos":       {run: func(c *chaincalc.Calculator, _ float64) { c.Cos() }},
	"tan":       {run: func(c *chaincalc.Calculator, _ float64) { c.Tan() }},
	"clear":     {run: func(c *chaincalc.Calculator, _ float64) { c.Clear() }},
	"factorial": {run: func(c *chaincalc.Calculator, _ float64) { c.Factorial() }},
	"undo":      {run: func(c *chaincalc.Calculator, _ float64) { c.Undo() }},
	"redo":      {run: func(c *chaincalc.Calculator, _ float64) { c.Redo() }},
	"print":     {},
}

// ParseLine parses a single script line.
// ok is false for blank lines and comments, which carry no command.
func ParseLine(text string, line int) (cmd Command, ok bool, err error) {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Command{}, false, nil
	}

	fail := func(err error) (Command, bool, error) {
		return Command{}, false, &ParseError{Line: line, Text: strings.TrimSpace(text), Err: err}
	}

	name := strings.ToLower(fields[0])
	def, known := commands[name]
	if !known {
		return fail(fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0]))
	}

	cmd = Command{Name: name, Line: line}
	args := fields[1:]

	switch {
	case def.unary && len(args) == 0:
		return fail(fmt.Errorf("%w: %s takes a number", ErrMissingArgument, name))
	case def.unary && len(args) > 1:
		return fail(fmt.Errorf("%w: %s", ErrUnexpectedArgument, strings.Join(args[1:], " ")))
	case !def.unary && len(args) > 0:
		return fail(fmt.Errorf("%w: %s takes no arguments", ErrUnexpectedArgument, name))
	}

	if def.unary {
		n, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fail(fmt.Errorf("%w: %s", ErrInvalidNumber, args[0]))
		}
		cmd.Arg = n
	}

	return cmd, true, nil
}
