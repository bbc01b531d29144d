package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ltungv/arith/internal/arith"
	"github.com/spf13/cobra"
)

var astCmd = &cobra.Command{
	Use:   "ast expression",
	Short: "Print the syntax tree of an expression in prefix notation",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAst,
}

func init() {
	rootCmd.AddCommand(astCmd)
}

func runAst(cmd *cobra.Command, args []string) error {
	reporter := arith.NewSimpleReporter(newStyledWriter(os.Stderr, errorStyle))
	expr, err := arith.Parse(strings.Join(args, " "))
	if err != nil {
		reporter.Report(err)
		exitIf(reporter.HadError(), 65)
	}
	printer := arith.AstPrinter{}
	fmt.Println(printer.Print(expr))
	return nil
}
