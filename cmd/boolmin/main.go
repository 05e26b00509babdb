package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/logiclab/boolmin"
	"github.com/logiclab/boolmin/internal/boolexpr"
)

var (
	headerStyle = color.New(color.FgCyan, color.Bold)
	resultStyle = color.New(color.FgGreen, color.Bold)
)

var rootCmd = &cobra.Command{
	Use:   "boolmin [expression]",
	Short: "boolmin - truth tables and minimized sum-of-products for Boolean expressions",
	Long: `boolmin reduces a Boolean expression over single-letter variables to its
truth table and a simplified sum-of-products form (Quine-McCluskey).

The expression is one whitespace-free token: variables A-Z, constants 0
and 1, postfix ' for NOT, + for OR, ^ for XOR, and juxtaposition for AND.

  boolmin "AB'+A'B"`,
	Args:          cobra.MaximumNArgs(1),
	Version:       boolmin.Version(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		expr := ""
		if len(args) == 1 {
			expr = args[0]
		} else {
			fmt.Fprint(cmd.OutOrStdout(), "Input expression: ")
			sc := bufio.NewScanner(os.Stdin)
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return err
				}
				return errors.New("no expression given")
			}
			expr = strings.TrimSpace(sc.Text())
		}
		return run(expr, cmd.OutOrStdout())
	},
}

func run(expr string, w io.Writer) error {
	e, err := boolexpr.Parse(expr)
	if err != nil {
		return err
	}

	if bit, ok := e.Constant(); ok {
		fmt.Fprintln(w, "Constant expression:")
		resultStyle.Fprintf(w, "Y = %d\n", bit)
		return nil
	}

	vars := e.Vars()
	minterms := e.Minterms()

	table := boolexpr.TableString(vars, minterms)
	header, rows, _ := strings.Cut(table, "\n")
	headerStyle.Fprintln(w, header)
	fmt.Fprint(w, rows)

	fmt.Fprintf(w, "\nY = %s\n\n", boolexpr.MintermList(minterms))

	switch {
	case len(minterms) == 0:
		resultStyle.Fprintln(w, "Y = 0")
	case len(minterms) == 1<<len(vars):
		resultStyle.Fprintln(w, "Y = 1")
	default:
		selected := boolexpr.Minimize(minterms, len(vars))
		resultStyle.Fprintf(w, "Y = %s\n", boolexpr.SumOfProducts(selected, vars))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
