// Command dynmat applies vector and matrix operations to operands read as
// whitespace-separated text on stdin.
//
//	echo "1 2 3  4 5 6" | dynmat vector add --size 3 --type int
//	printf "1 2\n3 4\n2 0\n1 2\n" | dynmat matrix mul --size 2
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/dynmat/internal/cli"
	"github.com/katalvlaran/dynmat/internal/config"
	"github.com/spf13/cobra"
)

// flags holds the raw command-line values; resolveConfig merges them over
// the config file.
type flags struct {
	configFile string
	elemType   string
	size       int
	scalar     string
	plain      bool
	verbose    bool
	plot       bool
}

// main builds the command tree and exits with status 1 on any error.
func main() {
	f := &flags{}
	root := newRootCmd(f)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.NewStyles(f.plain).Error(err))
		os.Exit(1)
	}
}

func newRootCmd(f *flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dynmat",
		Short:         "dynamic vector and square matrix arithmetic",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.configFile, "config", "", "YAML config file")
	pf.StringVar(&f.elemType, "type", config.DefaultType, "element type: int | float")
	pf.IntVar(&f.size, "size", config.DefaultSize, "vector length or matrix dimension")
	pf.StringVar(&f.scalar, "scalar", "", "scalar operand for add-scalar, sub-scalar and scale")
	pf.BoolVar(&f.plain, "plain", false, "disable styled output")
	pf.BoolVar(&f.verbose, "verbose", false, "debug logging on stderr")
	pf.BoolVar(&f.plot, "plot", false, "chart a vector result")

	vectorCmd := &cobra.Command{
		Use:       "vector <op>",
		Aliases:   []string{"vec"},
		Short:     "vector operation: " + strings.Join(cli.VectorOps, ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: cli.VectorOps,
		RunE:      runKind(f, cli.KindVector),
	}
	matrixCmd := &cobra.Command{
		Use:       "matrix <op>",
		Aliases:   []string{"mat"},
		Short:     "matrix operation: " + strings.Join(cli.MatrixOps, ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: cli.MatrixOps,
		RunE:      runKind(f, cli.KindMatrix),
	}
	rootCmd.AddCommand(vectorCmd, matrixCmd)

	return rootCmd
}

func runKind(f *flags, kind string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd, f)
		if err != nil {
			return err
		}
		f.plain = cfg.Plain

		level := slog.LevelInfo
		if cfg.Verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		logger.Debug("config resolved", "file", f.configFile, "type", cfg.Type, "size", cfg.Size)

		req := cli.Request{Kind: kind, Op: args[0], Size: cfg.Size, Scalar: f.scalar, Plot: f.plot}
		return cli.Run(cfg, req, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
	}
}

// resolveConfig loads the config file (if any) and overrides it with flags
// that were set explicitly on the command line.
func resolveConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg := config.Default()
	if f.configFile != "" {
		loaded, err := config.Load(f.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs := cmd.Flags()
	if fs.Changed("type") {
		cfg.Type = f.elemType
	}
	if fs.Changed("size") {
		cfg.Size = f.size
	}
	if fs.Changed("plain") {
		cfg.Plain = f.plain
	}
	if fs.Changed("verbose") {
		cfg.Verbose = f.verbose
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
