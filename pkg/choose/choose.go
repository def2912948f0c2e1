// Package choose provides interactive selection for ghadmin commands that
// accept an omitted resource name on a terminal, backed by the fzf library
// with a plain numbered prompt as fallback.
package choose

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	fzf "github.com/junegunn/fzf/src"
	"golang.org/x/term"
)

// Option is one selectable entry.
type Option struct {
	Value       string
	Description string
}

// Runner abstracts fzf execution so tests can stub it out.
type Runner interface {
	Run(opts *fzf.Options) (int, error)
}

type fzfRunner struct{}

func (fzfRunner) Run(opts *fzf.Options) (int, error) {
	return fzf.Run(opts)
}

// Picker selects one value from a list of options.
type Picker struct {
	prompt  string
	options []Option
	runner  Runner
}

// New creates a Picker with the given prompt.
func New(prompt string) *Picker {
	return &Picker{prompt: prompt, runner: fzfRunner{}}
}

// NewWithRunner creates a Picker with a custom fzf runner, for tests.
func NewWithRunner(prompt string, runner Runner) *Picker {
	return &Picker{prompt: prompt, runner: runner}
}

// SetOptions replaces the selectable options.
func (p *Picker) SetOptions(options []Option) {
	p.options = make([]Option, len(options))
	copy(p.options, options)
}

// IsInteractive reports whether stdin is a terminal, i.e. whether prompting
// the user is possible at all.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Pick runs the fzf selection and returns the chosen value. When fzf cannot
// start it falls back to a numbered prompt.
func (p *Picker) Pick() (string, error) {
	if len(p.options) == 0 {
		return "", fmt.Errorf("no options available")
	}

	input, err := p.writeOptionsFile()
	if err != nil {
		return "", err
	}
	defer func() { _ = os.Remove(input) }()

	opts, err := fzf.ParseOptions(true, []string{
		"--prompt=" + p.prompt + " ",
		"--height=10",
		"--no-multi",
		"--cycle",
		"--no-mouse",
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse fzf options: %w", err)
	}

	selected, exitCode, err := p.runWithRedirectedIO(opts, input)
	if err != nil {
		return p.pickNumbered()
	}
	if exitCode != fzf.ExitOk {
		return "", fmt.Errorf("selection cancelled")
	}

	value := strings.TrimSpace(strings.SplitN(selected, "  │  ", 2)[0])
	if value == "" {
		return "", fmt.Errorf("no selection made")
	}
	return value, nil
}

func (p *Picker) writeOptionsFile() (string, error) {
	tmp, err := os.CreateTemp("", "ghadmin-choose-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}

	for _, option := range p.options {
		line := option.Value
		if option.Description != "" {
			line = fmt.Sprintf("%s  │  %s", option.Value, option.Description)
		}
		if _, err := fmt.Fprintln(tmp, line); err != nil {
			_ = tmp.Close()
			return "", fmt.Errorf("failed to write option: %w", err)
		}
	}

	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close temporary file: %w", err)
	}
	return tmp.Name(), nil
}

// runWithRedirectedIO feeds the option file to fzf via stdin and captures
// the selection from stdout. fzf reads and writes the process streams
// directly, so both must be swapped for the duration of the run.
func (p *Picker) runWithRedirectedIO(opts *fzf.Options, inputPath string) (string, int, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return "", 0, err
	}
	defer func() { _ = in.Close() }()

	r, w, err := os.Pipe()
	if err != nil {
		return "", 0, err
	}
	defer func() { _ = r.Close() }()

	originalStdin, originalStdout := os.Stdin, os.Stdout
	os.Stdin, os.Stdout = in, w
	exitCode, runErr := p.runner.Run(opts)
	os.Stdin, os.Stdout = originalStdin, originalStdout
	_ = w.Close()

	if runErr != nil {
		return "", 0, runErr
	}

	out, err := io.ReadAll(r)
	if err != nil {
		return "", 0, err
	}
	return strings.TrimSpace(string(out)), exitCode, nil
}

// pickNumbered is the fallback when fzf is unavailable, e.g. inside a dumb
// terminal.
func (p *Picker) pickNumbered() (string, error) {
	fmt.Println(p.prompt)
	for i, option := range p.options {
		if option.Description != "" {
			fmt.Printf("%d. %s - %s\n", i+1, option.Value, option.Description)
		} else {
			fmt.Printf("%d. %s\n", i+1, option.Value)
		}
	}
	fmt.Printf("Select option (1-%d): ", len(p.options))

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	selection, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || selection < 1 || selection > len(p.options) {
		return "", fmt.Errorf("invalid selection: %s", strings.TrimSpace(input))
	}

	return p.options[selection-1].Value, nil
}
