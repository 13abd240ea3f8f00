package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/format"
	"github.com/agbru/primecalc/internal/largeuint"
	"github.com/agbru/primecalc/internal/orchestration"
	"github.com/agbru/primecalc/internal/prime"
	"github.com/agbru/primecalc/internal/ui"
)

// LastResultName refers to the result of the previous command.
const LastResultName = "ans"

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Layout is the engine layout of every operand.
	Layout largeuint.Layout
	// Timeout bounds each primality command.
	Timeout time.Duration
	// Options tunes the primality commands.
	Options prime.Options
	// HexOutput displays results in hex persistence format.
	HexOutput bool
}

// REPL is an interactive calculator over the largeuint engine. Operands are
// decimal numbers, hex persistence values such as 0100_0D, or "ans".
type REPL struct {
	config REPLConfig
	last   *largeuint.Uint
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a new REPL instance.
func NewREPL(config REPLConfig) *REPL {
	if config.Layout.Width == 0 {
		config.Layout = largeuint.ByteLayout
	}
	if config.Timeout <= 0 {
		config.Timeout = time.Minute
	}
	return &REPL{
		config: config,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start reads and executes commands until "exit" or the end of the input.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"prime> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}
		eof := err != nil

		if input = strings.TrimSpace(input); input != "" {
			if !r.processCommand(input) {
				return
			}
		}
		if eof {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sPrime Calculator - Interactive Mode%s                  %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, line := range [][2]string{
		{"add <a> <b>", "a + b"},
		{"sub <a> <b>", "a - b"},
		{"mul <a> <b>", "a * b"},
		{"div <a> <b>", "quotient and remainder of a / b"},
		{"mod <a> <b>", "a mod b"},
		{"sqrt <a>", "ceiling square root of a"},
		{"cmp <a> <b>", "compare a and b"},
		{"prime <a>", "verify a by trial division"},
		{"next <a>", "smallest prime >= a"},
		{"base <a> <from> <to>", "convert the digits of a between bases"},
		{"bits <a>", "binary digits, least significant first"},
		{"hex", "toggle hex persistence display"},
		{"status", "display current configuration"},
		{"help", "display this help"},
		{"exit", "leave interactive mode"},
	} {
		fmt.Fprintf(r.out, "  %s%-22s%s - %s\n", ui.ColorYellow(), line[0], ui.ColorReset(), line[1])
	}
	fmt.Fprintf(r.out, "Operands are decimal, hex persistence (0100_0D) or %s%s%s.\n",
		ui.ColorYellow(), LastResultName, ui.ColorReset())
}

// processCommand executes one command line. It returns false on exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	var err error
	switch cmd {
	case "add", "+":
		err = r.binary(args, func(a, b *largeuint.Uint) error { return largeuint.Add(b, a) })
	case "sub", "-":
		err = r.binary(args, func(a, b *largeuint.Uint) error { return largeuint.Subtract(b, a) })
	case "mul", "*":
		err = r.binary(args, func(a, b *largeuint.Uint) error { return largeuint.Multiply(b, a) })
	case "div", "/":
		err = r.cmdDiv(args)
	case "mod", "%":
		err = r.cmdMod(args)
	case "sqrt":
		err = r.cmdSqrt(args)
	case "cmp":
		err = r.cmdCompare(args)
	case "prime", "p":
		err = r.cmdPrime(args)
	case "next", "n":
		err = r.cmdNext(args)
	case "base":
		err = r.cmdBase(args)
	case "bits":
		err = r.cmdBits(args)
	case "hex":
		r.cmdHex()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
	return true
}

// operand parses a command argument.
func (r *REPL) operand(s string) (*largeuint.Uint, error) {
	if strings.EqualFold(s, LastResultName) {
		if r.last == nil {
			return nil, errors.New("no previous result")
		}
		return r.last.Clone(), nil
	}
	return orchestration.ParseStart(r.config.Layout, s)
}

func (r *REPL) operands(args []string, n int) ([]*largeuint.Uint, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d operand(s), got %d", n, len(args))
	}
	values := make([]*largeuint.Uint, n)
	for i, arg := range args {
		v, err := r.operand(arg)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// binary applies op to the first operand in place and prints it.
func (r *REPL) binary(args []string, op func(a, b *largeuint.Uint) error) error {
	v, err := r.operands(args, 2)
	if err != nil {
		return err
	}
	if err := op(v[0], v[1]); err != nil {
		return err
	}
	r.show("=", v[0])
	return nil
}

func (r *REPL) cmdDiv(args []string) error {
	v, err := r.operands(args, 2)
	if err != nil {
		return err
	}
	q, rem, err := largeuint.Divide(v[0], v[1])
	if err != nil {
		return err
	}
	r.show("quotient  =", q)
	fmt.Fprintf(r.out, "  remainder = %s%s%s\n", ui.ColorCyan(), r.render(rem), ui.ColorReset())
	return nil
}

func (r *REPL) cmdMod(args []string) error {
	v, err := r.operands(args, 2)
	if err != nil {
		return err
	}
	rem, err := largeuint.Modulo(v[0], v[1])
	if err != nil {
		return err
	}
	r.show("=", rem)
	return nil
}

func (r *REPL) cmdSqrt(args []string) error {
	v, err := r.operands(args, 1)
	if err != nil {
		return err
	}
	root, err := largeuint.ApproximateSqrt(v[0])
	if err != nil {
		return err
	}
	r.show("ceil(sqrt) =", root)
	return nil
}

func (r *REPL) cmdCompare(args []string) error {
	v, err := r.operands(args, 2)
	if err != nil {
		return err
	}
	relation := "="
	switch {
	case largeuint.LessThan(v[0], v[1]):
		relation = "<"
	case !largeuint.Equal(v[0], v[1]):
		relation = ">"
	}
	fmt.Fprintf(r.out, "  %s %s %s\n", r.render(v[0]), relation, r.render(v[1]))
	return nil
}

func (r *REPL) cmdPrime(args []string) error {
	v, err := r.operands(args, 1)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	start := time.Now()
	status, err := prime.Verify(ctx, v[0], r.config.Timeout, r.config.Options)
	if err != nil {
		return r.searchError("prime", err)
	}
	color := ui.ColorRed()
	if status != prime.NotPrime {
		color = ui.ColorGreen()
	}
	fmt.Fprintf(r.out, "  %s is %s%s%s (%s)\n", r.render(v[0]), color, status, ui.ColorReset(),
		format.FormatExecutionDuration(time.Since(start)))
	return nil
}

func (r *REPL) cmdNext(args []string) error {
	v, err := r.operands(args, 1)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	result, err := prime.FindNearbyPrime(ctx, v[0], r.config.Options)
	if err != nil {
		return r.searchError("next", err)
	}
	r.show("p =", result.Prime)
	fmt.Fprintf(r.out, "  %d candidate(s), %d division(s) in %s\n",
		result.Candidates, result.Divisions, format.FormatExecutionDuration(result.Duration))
	return nil
}

// searchError reports a command that ran out of its time budget as a
// TimeoutError.
func (r *REPL) searchError(command string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.TimeoutError{Operation: command, Limit: r.config.Timeout}
	}
	return apperrors.WrapError(err, "%s", command)
}

func (r *REPL) cmdBase(args []string) error {
	if len(args) != 3 {
		return errors.New("usage: base <digits> <from> <to>")
	}
	from, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid base %q", args[1])
	}
	to, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid base %q", args[2])
	}
	x, err := largeuint.ParseBase(r.config.Layout, args[0], from)
	if err != nil {
		return err
	}
	s, err := largeuint.FormatBase(x, to)
	if err != nil {
		return err
	}
	r.last = x
	fmt.Fprintf(r.out, "  %s (base %d) = %s%s%s (base %d)\n", args[0], from, ui.ColorGreen(), s, ui.ColorReset(), to)
	return nil
}

func (r *REPL) cmdBits(args []string) error {
	v, err := r.operands(args, 1)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "  %s%s%s (%d bits)\n", ui.ColorGreen(), largeuint.StoreBits(v[0]), ui.ColorReset(), v[0].BitLen())
	return nil
}

func (r *REPL) cmdHex() {
	r.config.HexOutput = !r.config.HexOutput
	status := "disabled"
	if r.config.HexOutput {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Hex display: %s%s%s\n", ui.ColorGreen(), status, ui.ColorReset())
}

func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Layout:      %s%s%s\n", ui.ColorCyan(), r.config.Layout, ui.ColorReset())
	fmt.Fprintf(r.out, "  Max bits:    %s%d%s\n", ui.ColorCyan(), r.config.Layout.MaxBits(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:     %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	hexStatus := "no"
	if r.config.HexOutput {
		hexStatus = "yes"
	}
	fmt.Fprintf(r.out, "  Hexadecimal: %s%s%s\n", ui.ColorCyan(), hexStatus, ui.ColorReset())
	if r.last != nil {
		fmt.Fprintf(r.out, "  %-12s %s%s%s\n", LastResultName+":", ui.ColorCyan(), r.render(r.last), ui.ColorReset())
	}
	fmt.Fprintln(r.out)
}

// show prints x and records it as the last result.
func (r *REPL) show(label string, x *largeuint.Uint) {
	r.last = x
	fmt.Fprintf(r.out, "  %s %s%s%s\n", label, ui.ColorGreen(), r.render(x), ui.ColorReset())
}

func (r *REPL) render(x *largeuint.Uint) string {
	if r.config.HexOutput {
		return largeuint.FormatHex(x)
	}
	text, _ := FormatValue(x, false)
	return text
}
