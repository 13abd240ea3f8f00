// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult], [FormatMagnitude].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/markkurossi/text/superscript"

	"github.com/agbru/primecalc/internal/format"
	"github.com/agbru/primecalc/internal/largeuint"
	"github.com/agbru/primecalc/internal/orchestration"
	"github.com/agbru/primecalc/internal/primestore"
	"github.com/agbru/primecalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode prints the bare decimal value only.
	Quiet bool
	// Verbose shows the full result value.
	Verbose bool
	// Mode is recorded in the file header.
	Mode string
}

// FormatMagnitude returns the power-of-two bracket of x, e.g. "2¹⁹ ≤ x < 2²⁰".
// Zero yields "0".
func FormatMagnitude(x *largeuint.Uint) string {
	n := x.BitLen()
	if n == 0 {
		return "0"
	}
	return fmt.Sprintf("2%s ≤ x < 2%s", superscript.Itoa(n-1), superscript.Itoa(n))
}

// FormatValue renders x in decimal with thousands separators. Values longer
// than TruncationLimit digits are shortened unless verbose is set.
func FormatValue(x *largeuint.Uint, verbose bool) (string, bool) {
	s := x.String()
	if !verbose && len(s) > TruncationLimit {
		return s[:DisplayEdges] + "..." + s[len(s)-DisplayEdges:], true
	}
	return format.FormatNumberString(s), false
}

// FormatHexValue renders the hex persistence form of x, shortened unless
// verbose is set.
func FormatHexValue(x *largeuint.Uint, verbose bool) string {
	h := largeuint.FormatHex(x)
	if !verbose && len(h) > 2*HexDisplayEdges+3 {
		return h[:HexDisplayEdges] + "..." + h[len(h)-HexDisplayEdges:]
	}
	return h
}

// DisplayResult prints the detailed report of a successful search.
//
// Parameters:
//   - result: The search result; result.Prime must be set.
//   - verbose: Print full values instead of truncated ones.
//   - out: The output writer.
func DisplayResult(result orchestration.SearchResult, verbose bool, out io.Writer) {
	p := result.Prime
	fmt.Fprintf(out, "\n%s--- Search Result ---%s\n", ui.ColorBold(), ui.ColorReset())
	if result.Start != nil {
		start, _ := FormatValue(result.Start, verbose)
		fmt.Fprintf(out, "Start:               %s%s%s\n", ui.ColorCyan(), start, ui.ColorReset())
	}
	fmt.Fprintf(out, "Status:              %s%s%s\n", ui.ColorGreen(), result.Status, ui.ColorReset())
	fmt.Fprintf(out, "Search time:         %s%s%s\n", ui.ColorYellow(), format.FormatExecutionDuration(result.Duration), ui.ColorReset())
	fmt.Fprintf(out, "Candidates examined: %s%d%s\n", ui.ColorCyan(), result.Candidates, ui.ColorReset())
	fmt.Fprintf(out, "Trial divisions:     %s%s%s\n", ui.ColorCyan(), format.FormatNumberString(fmt.Sprint(result.Divisions)), ui.ColorReset())
	fmt.Fprintf(out, "Magnitude:           %s (%d bits)\n", FormatMagnitude(p), p.BitLen())

	value, truncated := FormatValue(p, verbose)
	fmt.Fprintf(out, "Number of digits:    %s%d%s\n", ui.ColorCyan(), len(p.String()), ui.ColorReset())
	fmt.Fprintf(out, "\np = %s%s%s\n", ui.ColorGreen(), value, ui.ColorReset())
	fmt.Fprintf(out, "    %s%s%s\n", ui.ColorMagenta(), FormatHexValue(p, verbose), ui.ColorReset())
	if truncated {
		fmt.Fprintf(out, "(truncated) Tip: use %s-v%s to print the full value.\n", ui.ColorYellow(), ui.ColorReset())
	}
}

// FormatQuietResult returns the decimal value of p, suitable for scripting.
func FormatQuietResult(p *largeuint.Uint) string {
	return p.String()
}

// DisplayQuietResult prints the bare decimal value of p.
func DisplayQuietResult(out io.Writer, p *largeuint.Uint) {
	fmt.Fprintln(out, FormatQuietResult(p))
}

// WriteResultToFile writes a search result to config.OutputFile. The value
// is written as a prime list entry, so the file can seed the resume mode.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(result orchestration.SearchResult, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}
	entry, err := primestore.FormatEntry(result.Prime)
	if err != nil {
		return err
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Prime Search Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	if config.Mode != "" {
		fmt.Fprintf(file, "# Mode: %s\n", config.Mode)
	}
	fmt.Fprintf(file, "# Search: %s\n", result.Name)
	fmt.Fprintf(file, "# Status: %s\n", result.Status)
	fmt.Fprintf(file, "# Duration: %s\n", result.Duration)
	fmt.Fprintf(file, "# Bits: %d\n", result.Prime.BitLen())
	fmt.Fprintf(file, "\n")
	if _, err := io.WriteString(file, entry); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// DisplayResultWithConfig displays a result with the given output
// configuration and saves it when an output file is set.
//
// Returns:
//   - error: An error if file output fails.
func DisplayResultWithConfig(out io.Writer, result orchestration.SearchResult, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, result.Prime)
	} else {
		DisplayResult(result, config.Verbose, out)
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(result, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}
	return nil
}

// DisplayValue prints a labeled engine value, e.g. the output of the
// convert and sqrt modes. In quiet mode only text is printed.
func DisplayValue(out io.Writer, label, text string, quiet bool) {
	if quiet {
		fmt.Fprintln(out, text)
		return
	}
	fmt.Fprintf(out, "%s%s%s = %s%s%s\n", ui.ColorBold(), label, ui.ColorReset(), ui.ColorGreen(), text, ui.ColorReset())
}
