package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pydasm-io/pydasm/dis"
	"github.com/pydasm-io/pydasm/loader"
	"github.com/pydasm-io/pydasm/op"
)

var rootCmd = &cobra.Command{
	Use:   "pydasm [flags] FILE ...",
	Short: "Disassembler for serialized Python bytecode",
	Long: `Pydasm reads compiled Python containers and prints an annotated
instruction listing for every code object they hold. It understands the
CPython 2.3 through 3.5 encodings and the PyPy variants of 2.6, 2.7 and 3.2.

Inputs may be local files, "-" for stdin, or s3://bucket/key objects.`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		processGlobalFlags()
		configureLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if viper.GetBool("validate-tables") {
			if err := op.ValidateTables(); err != nil {
				return err
			}
			fmt.Printf("validated %d opcode tables\n", len(op.Revisions()))
			return nil
		}
		if len(args) == 0 {
			cmd.SilenceUsage = false
			return errors.New("no input files specified")
		}
		if viper.GetBool("watch") {
			return watchAndDisassemble(cmd.Context(), args)
		}
		return disassembleAll(cmd.Context(), args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pydasm %s (commit %s, built %s, %s)\n",
			version, commit, date, runtime.Version())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Bool("pypy", false, "Treat inputs as PyPy bytecode")
	flags.Bool("no-color", false, "Disable colored output")
	flags.String("log-level", "warn", "Log level (trace, debug, info, warn, error)")
	flags.Bool("watch", false, "Re-disassemble inputs when they change")
	flags.Bool("validate-tables", false, "Check the opcode tables and exit")
	for _, name := range []string{"pypy", "no-color", "log-level", "watch", "validate-tables"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			fatal(err)
		}
	}
	if err := viper.BindEnv("no-color", "NO_COLOR"); err != nil {
		fatal(err)
	}
	rootCmd.AddCommand(versionCmd)
}

func disassembleAll(ctx context.Context, args []string) error {
	pypy := viper.GetBool("pypy")
	for i, arg := range args {
		if i > 0 {
			fmt.Println()
		}
		if err := disassembleSource(ctx, arg, pypy); err != nil {
			return err
		}
	}
	return nil
}

func disassembleSource(ctx context.Context, arg string, pypy bool) error {
	r, name, err := openSource(ctx, arg)
	if err != nil {
		return err
	}
	defer r.Close()
	program, err := loader.Load(r, name, pypy)
	if err != nil {
		return err
	}
	log.Debug().
		Str("source", name).
		Str("revision", program.Revision.String()).
		Msg("disassembling")
	return dis.Program(program, os.Stdout)
}
