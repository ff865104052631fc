// Package main implements astdump, which prints and checks syntax trees
// stored as YAML or JSON tree documents.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Alex-gitss/CS2612-Final/internal/config"
	"github.com/Alex-gitss/CS2612-Final/internal/logging"
	"github.com/Alex-gitss/CS2612-Final/internal/syntax"
	"github.com/Alex-gitss/CS2612-Final/internal/treefile"
)

// Version information
const Version = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

// app holds the state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	verbose bool

	cfg *config.Config
	log *slog.Logger

	stdout io.Writer
	stderr io.Writer
	stdin  io.Reader
}

// run executes the command line args and returns the process exit code.
func run(args []string) int {
	a := &app{
		log:    logging.Discard(), // replaced in setup
		stdout: os.Stdout,
		stderr: os.Stderr,
		stdin:  os.Stdin,
	}
	root := a.rootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(a.stderr, "astdump: %v\n", err)
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "astdump",
		Short: "Print and check syntax trees of the toy imperative language",
		Long: `astdump reads syntax trees written as YAML or JSON tree documents and
prints them as indented text, a box-drawing tree or JSON. Sized array and
string declarations are checked against the length of their initializers.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetIn(a.stdin)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $"+config.EnvVar+" or ./astdump.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(a.renderCmd(), a.checkCmd(), a.natCmd(), a.versionCmd())
	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	lc := logging.Config{Level: a.cfg.Log.Level, Format: a.cfg.Log.Format}
	if a.verbose {
		lc.Level = "debug"
	}
	a.log = logging.New(a.stderr, lc).With(slog.String("cmd", cmd.Name()))
	return nil
}

// load decodes the tree in path. "-" reads standard input.
func (a *app) load(ctx context.Context, path string) (syntax.Node, error) {
	var (
		n   syntax.Node
		err error
	)
	if path == "-" {
		n, err = treefile.Decode(a.stdin)
	} else {
		n, err = treefile.DecodeFile(path)
	}
	if err != nil {
		return nil, err
	}

	if a.log.Enabled(ctx, slog.LevelDebug) {
		count := 0
		syntax.Inspect(n, func(syntax.Node) bool {
			count++
			return true
		})
		a.log.DebugContext(ctx, "decoded tree", slog.String("file", path), slog.Int("nodes", count))
	}
	return n, nil
}
