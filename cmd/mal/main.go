package main

import (
	"fmt"
	"os"

	"github.com/DogMillionaire/mal/internal/buildinfo"
	"github.com/DogMillionaire/mal/internal/reader"
	"github.com/DogMillionaire/mal/internal/repl"
	"github.com/spf13/cobra"
)

// runOpts holds the CLI's persistent flags.
type runOpts struct {
	dumpAST   bool
	debug     bool
	noHistory bool
}

func main() {
	var opts runOpts

	rootCmd := &cobra.Command{
		Use:           "mal [file] [args...]",
		Short:         "A tree-walking Lisp interpreter",
		Version:       buildinfo.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode, err := run(args, opts)
			if err != nil {
				return err
			}
			if exitCode != 0 {
				return fmt.Errorf("exit status %d", exitCode)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVar(&opts.dumpAST, "dump-ast", false, "write a CBOR-encoded dump of the first parsed script form to stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "write eval timing and error Kind diagnostics to stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.noHistory, "no-history", false, "do not append to history.txt in REPL mode")

	exitCode := 0
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		exitCode = 1
	}
	os.Exit(exitCode)
}

// run implements the two CLI modes: no positional arguments starts
// the REPL, a file path as the first argument loads and runs that
// script with every further argument bound to *ARGV*.
func run(args []string, opts runOpts) (int, error) {
	var scriptPath string
	var argv []string
	if len(args) > 0 {
		scriptPath = args[0]
		argv = args[1:]
	}

	rootEnv, err := repl.NewRootEnv(argv)
	if err != nil {
		return 1, err
	}

	if scriptPath != "" {
		if opts.dumpAST {
			src, err := os.ReadFile(scriptPath)
			if err != nil {
				return 1, err
			}
			ast, err := reader.ReadString(string(src))
			if err == nil {
				_ = dumpAST(os.Stderr, ast)
			}
		}
		if err := repl.RunFile(rootEnv, scriptPath, opts.debug); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			return 1, nil
		}
		return 0, nil
	}

	var hist *repl.History
	if !opts.noHistory {
		hist, err = repl.OpenHistory("history.txt")
		if err != nil {
			return 1, err
		}
		defer hist.Close()
	}

	if err := repl.Run(rootEnv, os.Stdin, os.Stdout, hist, opts.debug); err != nil {
		return 1, err
	}
	return 0, nil
}
