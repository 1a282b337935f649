// =============================================================================
// lineeditor.go - Line Editing for the Drive Console
// =============================================================================
//
// The console reads operator input from a terminal that is NOT the
// process's standard input (stdin is the simulator wire). When that input
// is a terminal, readline provides history and cursor movement; otherwise
// a plain scanner reads piped or scripted input.
//
// =============================================================================

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ergochat/readline"
	"golang.org/x/term"
)

const (
	// historySize is the maximum number of history entries kept.
	historySize = 500

	// defaultWidth is used when the console size cannot be read.
	defaultWidth = 80
)

// LineEditor reads operator input, with line editing when possible.
type LineEditor struct {
	// interactive is true when readline drives the terminal.
	interactive bool

	// rl is the readline instance (nil when non-interactive).
	rl *readline.Instance

	// scanner reads non-interactive input.
	scanner *bufio.Scanner

	// out receives prompts in non-interactive mode.
	out io.Writer
}

// GO CONCEPT: Working With File Descriptors
// -----------------------------------------
// term.IsTerminal takes an int file descriptor. *os.File exposes its
// descriptor through Fd(), which returns a uintptr, hence the conversion.
// readline normally assumes stdin/stdout are the terminal; here the
// terminal is a separately opened file, so the raw-mode hooks are pointed
// at its descriptor instead.
//
// Compare with Python: `os.isatty(f.fileno())` and `tty.setraw(fd)`.

// NewLineEditor creates a line editor reading from in and writing prompts
// to out. Readline is used only when in is a terminal and the session is
// not inside Emacs. historyPath may be empty to disable history.
func NewLineEditor(in *os.File, out io.Writer, historyPath string) *LineEditor {
	fd := int(in.Fd())
	isInteractive := term.IsTerminal(fd) && os.Getenv("INSIDE_EMACS") == ""

	if !isInteractive {
		return newScannerEditor(in, out)
	}

	var saved *term.State
	rl, err := readline.NewFromConfig(&readline.Config{
		HistoryFile:            historyPath,
		HistoryLimit:           historySize,
		DisableAutoSaveHistory: true,
		Prompt:                 "",
		Stdin:                  in,
		Stdout:                 out,
		Stderr:                 out,
		FuncIsTerminal:         func() bool { return true },
		FuncGetSize:            func() int { return terminalWidth(fd) },
		FuncMakeRaw: func() error {
			state, err := term.MakeRaw(fd)
			if err != nil {
				return err
			}
			saved = state
			return nil
		},
		FuncExitRaw: func() error {
			if saved == nil {
				return nil
			}
			return term.Restore(fd, saved)
		},
	})
	if err != nil {
		fmt.Fprintf(out, "Warning: readline init failed (%v), using basic input\n", err)
		return newScannerEditor(in, out)
	}

	return &LineEditor{
		interactive: true,
		rl:          rl,
		out:         out,
	}
}

func newScannerEditor(in io.Reader, out io.Writer) *LineEditor {
	return &LineEditor{
		interactive: false,
		scanner:     bufio.NewScanner(in),
		out:         out,
	}
}

// GetLine displays prompt and reads one line. It returns io.EOF when input
// ends or the operator presses Ctrl-C or Ctrl-D.
func (le *LineEditor) GetLine(prompt string) (string, error) {
	if le.interactive {
		return le.getInteractiveLine(prompt)
	}
	return le.getNonInteractiveLine(prompt)
}

func (le *LineEditor) getInteractiveLine(prompt string) (string, error) {
	le.rl.SetPrompt(prompt)

	line, err := le.rl.Readline()
	if err != nil {
		if err == readline.ErrInterrupt {
			return "", io.EOF
		}
		return "", err
	}

	if trimmed := strings.TrimSpace(line); trimmed != "" {
		le.rl.SaveToHistory(trimmed)
	}
	return line, nil
}

func (le *LineEditor) getNonInteractiveLine(prompt string) (string, error) {
	fmt.Fprint(le.out, prompt)

	if !le.scanner.Scan() {
		if err := le.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return le.scanner.Text(), nil
}

// Close releases the terminal. It is safe to call more than once.
func (le *LineEditor) Close() {
	if le.rl != nil {
		le.rl.Close()
		le.rl = nil
	}
}

// IsInteractive reports whether readline is in use.
func (le *LineEditor) IsInteractive() bool {
	return le.interactive
}

// terminalWidth reports the column count of the terminal on fd, or
// defaultWidth when fd is not a terminal.
func terminalWidth(fd int) int {
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
