package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/example/power-calculator/domain/power"
	"github.com/example/power-calculator/ui"
)

var methodName string

var rootCmd = &cobra.Command{
	Use:   "expcalc",
	Short: "Interactive a × (b^x) calculator",
	Long: `expcalc evaluates a × b^x for three decimal inputs.

Run without arguments to start the interactive calculator.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		method, err := power.ParseMethod(methodName)
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(ui.NewWithMethod(method)).Run()
		return err
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval <a> <b> <x>",
	Short: "Evaluate a × b^x once and print the result",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		method, err := power.ParseMethod(methodName)
		if err != nil {
			return err
		}
		out := power.NewOutcome(power.ComputeWith(method, args[0], args[1], args[2]))
		fmt.Fprintln(cmd.OutOrStdout(), out.String())
		if !out.OK() {
			return errFailed
		}
		return nil
	},
}

// errFailed signals a user-facing failure that has already been printed.
var errFailed = errors.New("calculation failed")

func init() {
	rootCmd.PersistentFlags().StringVarP(&methodName, "method", "m", string(power.MethodNative),
		"Evaluation method: native, series or legacy")
	rootCmd.AddCommand(evalCmd)
}

func main() {
	rootCmd.SetArgs(evalArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "expcalc: %v\n", err)
		}
		os.Exit(1)
	}
}
