package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ltungv/arith/internal/arith"
	"github.com/spf13/cobra"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var rootCmd = &cobra.Command{
	Use:   "arith [expression]",
	Short: "Evaluate arithmetic expressions over single-digit operands",
	Long: `Evaluate arithmetic expressions over single-digit operands.

The expression may use the operators + - * /, unary negation, and parentheses.
With no arguments, an interactive prompt is started that evaluates one
expression per line.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runPrompt()
	}
	runExpression(strings.Join(args, " "))
	return nil
}

// Evaluate a single expression and exit with a status code describing the
// kind of failure, if any
func runExpression(src string) {
	reporter := arith.NewSimpleReporter(newStyledWriter(os.Stderr, errorStyle))
	val, err := arith.Evaluate(src)
	if err != nil {
		reporter.Report(err)
		exitIf(reporter.HadError(), 65)
		exitIf(reporter.HadRuntimeError(), 70)
	}
	fmt.Println(val)
}

// Run the interpreter in REPL mode
func runPrompt() error {
	reporter := arith.NewSimpleReporter(newStyledWriter(os.Stderr, errorStyle))
	s := bufio.NewScanner(os.Stdin)
	s.Split(bufio.ScanLines)
	for {
		fmt.Print(promptStyle.Render("> "))
		if !s.Scan() {
			break
		}
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		val, err := arith.Evaluate(line)
		if err != nil {
			reporter.Report(err)
		} else {
			fmt.Println(resultStyle.Render(strconv.Itoa(val)))
		}
		reporter.Reset()
	}
	return s.Err()
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}

// styledWriter renders everything written to it with a lipgloss style before
// passing it on line-by-line to the inner writer
type styledWriter struct {
	writer io.Writer
	style  lipgloss.Style
}

func newStyledWriter(writer io.Writer, style lipgloss.Style) *styledWriter {
	return &styledWriter{writer, style}
}

func (w *styledWriter) Write(p []byte) (int, error) {
	s := strings.TrimRight(string(p), "\n")
	if _, err := fmt.Fprintln(w.writer, w.style.Render(s)); err != nil {
		return 0, err
	}
	return len(p), nil
}
