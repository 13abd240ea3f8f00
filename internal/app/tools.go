package app

import (
	"context"
	"fmt"
	"io"

	"github.com/agbru/primecalc/internal/cli"
	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/format"
	"github.com/agbru/primecalc/internal/largeuint"
	"github.com/agbru/primecalc/internal/logging"
	"github.com/agbru/primecalc/internal/prime"
	"github.com/agbru/primecalc/internal/primestore"
	"github.com/agbru/primecalc/internal/ui"
)

// runResume extends the persisted prime list by Config.Count primes. With a
// count of zero it runs until the context ends, which is then a normal stop.
func (a *Application) runResume(ctx context.Context, out io.Writer) int {
	store := primestore.New(a.Config.PrimesFile, a.Config.Layout())
	opts := a.searchOptions()
	if !a.Config.Quiet {
		fmt.Fprintf(out, "Resuming %s%s%s\n", ui.ColorCyan(), store.Path(), ui.ColorReset())
	}

	found := 0
	for a.Config.Count == 0 || found < a.Config.Count {
		start, err := store.Resume()
		if err != nil {
			return a.fail(err, apperrors.ExitErrorGeneric)
		}

		res, err := prime.FindNearbyPrime(ctx, start, opts)
		if err != nil {
			if a.Config.Count == 0 && apperrors.IsContextError(err) && found > 0 {
				if !a.Config.Quiet {
					fmt.Fprintf(out, "Stopped after %d new prime(s).\n", found)
				}
				return apperrors.ExitSuccess
			}
			return apperrors.HandleSearchError(err, res.Duration, out, cli.CLIColorProvider{})
		}
		if err := store.Append(res.Prime); err != nil {
			return a.fail(err, apperrors.ExitErrorGeneric)
		}
		found++
		a.Logger.Debug("prime appended",
			logging.String("file", store.Path()),
			logging.Int("bits", res.Prime.BitLen()),
			logging.Uint64("divisions", res.Divisions))

		if a.Config.Quiet {
			cli.DisplayQuietResult(out, res.Prime)
			continue
		}
		value, _ := cli.FormatValue(res.Prime, a.Config.Verbose)
		fmt.Fprintf(out, "%s✓%s %s  (%d candidate(s), %s)\n",
			ui.ColorGreen(), ui.ColorReset(), value, res.Candidates, format.FormatExecutionDuration(res.Duration))
	}
	return apperrors.ExitSuccess
}

// runConvert rewrites Config.Value from Config.FromBase to Config.ToBase.
func (a *Application) runConvert(out io.Writer) int {
	x, err := largeuint.ParseBase(a.Config.Layout(), a.Config.Value, a.Config.FromBase)
	if err != nil {
		return a.fail(apperrors.ValidationError{Field: "value", Message: err.Error()}, apperrors.ExitErrorGeneric)
	}
	text, err := largeuint.FormatBase(x, a.Config.ToBase)
	if err != nil {
		return a.fail(err, apperrors.ExitErrorGeneric)
	}
	cli.DisplayValue(out, fmt.Sprintf("base %d", a.Config.ToBase), text, a.Config.Quiet)
	return apperrors.ExitSuccess
}

// runSqrt prints the ceiling square root of Config.Value.
func (a *Application) runSqrt(out io.Writer) int {
	x, err := largeuint.ParseDecimal(a.Config.Layout(), a.Config.Value)
	if err != nil {
		return a.fail(apperrors.ValidationError{Field: "value", Message: err.Error()}, apperrors.ExitErrorGeneric)
	}
	root, err := largeuint.ApproximateSqrt(x)
	if err != nil {
		return a.fail(err, apperrors.ExitErrorGeneric)
	}
	cli.DisplayValue(out, "sqrt", root.String(), a.Config.Quiet)
	return apperrors.ExitSuccess
}

// runREPL starts the interactive calculator on out.
func (a *Application) runREPL(out io.Writer) int {
	repl := cli.NewREPL(cli.REPLConfig{
		Layout:    a.Config.Layout(),
		Timeout:   a.Config.TrialLimit(),
		Options:   a.searchOptions(),
		HexOutput: a.Config.Verbose,
	})
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

func (a *Application) fail(err error, code int) int {
	fmt.Fprintf(a.ErrWriter, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	return code
}
