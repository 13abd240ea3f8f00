package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from flagRegistry, so adding a
// flag only requires appending to it.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "bytes")
	Short     string   // short flag without "-" (e.g., "q")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number", "duration")
	IsFile    bool     // true if the flag takes a file path
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "start", Help: "Starting candidate (hex or decimal)", ValueName: "value"},
	{Long: "bytes", Help: "Size of random candidates in bytes", Values: []string{"2", "4", "8", "12", "16"}, ValueName: "number"},
	{Long: "digits", Help: "Decimal digits of probable candidates", Values: []string{"10", "20", "30", "50"}, ValueName: "number"},
	{Long: "minutes", Help: "Trial division budget per candidate", Values: []string{"1", "5", "10"}, ValueName: "number"},
	{Long: "file", Help: "Prime list of the resume mode", IsFile: true, ValueName: "file"},
	{Long: "count", Help: "Primes to find in resume mode", ValueName: "number"},
	{Long: "workers", Help: "Concurrent random searches", ValueName: "number"},
	{Long: "seed", Help: "Seed for reproducible candidates", ValueName: "number"},
	{Long: "from", Help: "Input base of convert", Values: []string{"2", "8", "10", "16", "32"}, ValueName: "base"},
	{Long: "to", Help: "Output base of convert", Values: []string{"2", "8", "10", "16", "32"}, ValueName: "base"},
	{Long: "layout", Help: "Engine limb layout", Values: []string{"byte", "bit"}, ValueName: "layout"},
	{Long: "capacity", Help: "Limb capacity override", ValueName: "number"},
	{Long: "sample-interval", Help: "Divisions between cancellation checks", ValueName: "number"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"1m", "5m", "10m", "30m", "1h"}, ValueName: "duration"},
	{Long: "log-level", Help: "Log level", Values: []string{"debug", "info", "warn", "error"}, ValueName: "level"},
	{Long: "metrics-addr", Help: "Serve Prometheus metrics on this address", ValueName: "address"},
	{Long: "tui", Help: "Launch the interactive dashboard"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "verbose", Short: "v", Help: "Display full result values"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "quiet", Short: "q", Help: "Quiet mode for scripts"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish", "powershell"}, ValueName: "shell"},
}

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish", "powershell").
//   - modes: The modes accepted as first argument.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string, modes []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, modes)
	case "zsh":
		return generateZshCompletion(out, modes)
	case "fish":
		return generateFishCompletion(out, modes)
	case "powershell", "ps":
		return generatePowerShellCompletion(out, modes)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer, modes []string) error {
	var opts []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			opts = append(opts, "--"+f.Long)
		}
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
	}

	var caseBody strings.Builder
	var filePatterns []string
	for _, f := range flagRegistry {
		if f.IsFile {
			filePatterns = append(filePatterns, "--"+f.Long)
			if f.Short != "" {
				filePatterns = append(filePatterns, "-"+f.Short)
			}
			continue
		}
		if len(f.Values) == 0 {
			continue
		}
		fmt.Fprintf(&caseBody, "        --%s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
			f.Long, strings.Join(f.Values, " "))
	}
	if len(filePatterns) > 0 {
		fmt.Fprintf(&caseBody, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n",
			strings.Join(filePatterns, "|"))
	}

	script := fmt.Sprintf(`# Bash completion script for primecalc
# Add this to your ~/.bashrc or ~/.bash_completion

_primecalc_completions() {
    local cur prev opts modes
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="%s"
    modes="%s"

    case "${prev}" in
%s    esac

    if [[ ${COMP_CWORD} -eq 1 && "${cur}" != -* ]]; then
        COMPREPLY=( $(compgen -W "${modes}" -- "${cur}") )
        return 0
    fi

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _primecalc_completions primecalc
`, strings.Join(opts, " "), strings.Join(modes, " "), caseBody.String())

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer, modes []string) error {
	args := []string{"        '1:mode:(" + strings.Join(modes, " ") + ")'"}
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}

	script := fmt.Sprintf(`#compdef primecalc

# Zsh completion script for primecalc
# Add this to your ~/.zshrc or place in $fpath

_primecalc() {
    _arguments -s \
%s
}

_primecalc "$@"
`, strings.Join(args, " \\\n"))

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
}

// generateFishCompletion generates a Fish completion script.
func generateFishCompletion(out io.Writer, modes []string) error {
	lines := []string{
		"# Fish completion script for primecalc",
		"# Add this to ~/.config/fish/completions/primecalc.fish",
		"",
		"# Disable file completion by default",
		"complete -c primecalc -f",
		"",
		"# Modes",
		fmt.Sprintf("complete -c primecalc -n '__fish_use_subcommand' -a '%s'", strings.Join(modes, " ")),
		"",
		"# Options",
	}
	for _, f := range flagRegistry {
		lines = append(lines, fishCompleteLine(f))
	}
	lines = append(lines, "")

	if _, err := fmt.Fprint(out, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
func fishCompleteLine(f FlagCompletion) string {
	parts := []string{"complete -c primecalc"}
	if f.Short != "" {
		parts = append(parts, "-s "+f.Short)
	}
	parts = append(parts, "-l "+f.Long, fmt.Sprintf("-d '%s'", f.Help))

	switch {
	case f.IsFile:
		parts = append(parts, "-rF")
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	case f.ValueName != "":
		parts = append(parts, "-x")
	}
	return strings.Join(parts, " ")
}

// generatePowerShellCompletion generates a PowerShell completion script.
func generatePowerShellCompletion(out io.Writer, modes []string) error {
	var optionEntries []string
	for _, f := range flagRegistry {
		if f.Short != "" {
			optionEntries = append(optionEntries, fmt.Sprintf(
				"        @{Name = '-%s'; Description = '%s' }", f.Short, f.Help))
		}
		optionEntries = append(optionEntries, fmt.Sprintf(
			"        @{Name = '--%s'; Description = '%s' }", f.Long, f.Help))
	}

	var switchEntries []string
	for _, f := range flagRegistry {
		if f.IsFile || len(f.Values) == 0 {
			continue
		}
		switchEntries = append(switchEntries, fmt.Sprintf(`        '--%s' {
            @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Long, quoteAll(f.Values)))
	}

	script := fmt.Sprintf(`# PowerShell completion script for primecalc
# Add this to your $PROFILE

$primecalcModes = @(%s)

Register-ArgumentCompleter -CommandName 'primecalc' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    if ($elements.Count -le 2 -and $wordToComplete -notlike '-*') {
        $primecalcModes | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
        }
        return
    }

    switch ($prevElement) {
%s
    }

    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, quoteAll(modes), strings.Join(optionEntries, "\n"), strings.Join(switchEntries, "\n"))

	_, err := fmt.Fprint(out, script)
	return err
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, ", ")
}
