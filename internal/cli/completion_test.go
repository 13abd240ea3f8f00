package cli

import (
	"bytes"
	"strings"
	"testing"
)

var testModes = []string{"next", "random", "probable", "resume", "convert", "sqrt", "repl"}

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{
			"complete -F _primecalc_completions primecalc",
			`modes="next random probable resume convert sqrt repl"`,
			"--layout)",
			`compgen -W "byte bit"`,
			"--file|--output|-o)",
		}},
		{"zsh", []string{
			"#compdef primecalc",
			"'1:mode:(next random probable resume convert sqrt repl)'",
			"'--layout[Engine limb layout]:layout:(byte bit)'",
			"'(-q --quiet)'{-q,--quiet}'[Quiet mode for scripts]'",
			"'--file[Prime list of the resume mode]:file:_files'",
		}},
		{"fish", []string{
			"complete -c primecalc -f",
			"-a 'next random probable resume convert sqrt repl'",
			"complete -c primecalc -l layout -d 'Engine limb layout' -xa 'byte bit'",
			"complete -c primecalc -s o -l output -d 'Output file path' -rF",
			"complete -c primecalc -l seed -d 'Seed for reproducible candidates' -x",
		}},
		{"powershell", []string{
			"Register-ArgumentCompleter -CommandName 'primecalc'",
			"$primecalcModes = @('next', 'random', 'probable', 'resume', 'convert', 'sqrt', 'repl')",
			"'--log-level' {",
			"@{Name = '-v'; Description = 'Display full result values' }",
		}},
		{"ps", []string{"Register-ArgumentCompleter"}},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell, testModes); err != nil {
				t.Fatalf("GenerateCompletion(%q) error = %v", tt.shell, err)
			}
			out := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("%s script missing %q", tt.shell, s)
				}
			}
		})
	}
}

func TestGenerateCompletionUnsupported(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := GenerateCompletion(&buf, "tcsh", testModes)
	if err == nil || !strings.Contains(err.Error(), "unsupported shell: tcsh") {
		t.Errorf("GenerateCompletion(tcsh) error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output for an unsupported shell: %q", buf.String())
	}
}

func TestFlagRegistryCoversEveryFlag(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	for _, f := range flagRegistry {
		if seen[f.Long] {
			t.Errorf("duplicate flag %q", f.Long)
		}
		seen[f.Long] = true
		if f.Help == "" {
			t.Errorf("flag %q has no help text", f.Long)
		}
		if len(f.Values) > 0 && f.ValueName == "" {
			t.Errorf("flag %q has values but no value name", f.Long)
		}
	}
	for _, name := range []string{"start", "bytes", "digits", "minutes", "file", "count", "workers", "seed",
		"from", "to", "layout", "capacity", "sample-interval", "timeout", "quiet", "verbose", "output",
		"no-color", "tui", "metrics-addr", "log-level", "completion"} {
		if !seen[name] {
			t.Errorf("flag %q missing from the completion registry", name)
		}
	}
}
