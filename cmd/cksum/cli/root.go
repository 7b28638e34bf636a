// Package cli implements the cksum command line.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iamNilotpal/cksum/config"
	"github.com/iamNilotpal/cksum/internal/core/domain"
	"github.com/iamNilotpal/cksum/internal/core/services/checksum"
	verrors "github.com/iamNilotpal/cksum/pkg/errors"
	"github.com/iamNilotpal/cksum/pkg/logger"
)

// errFailed signals that some files failed and were already reported.
var errFailed = errors.New("one or more files failed")

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	algorithm  string
	decompress string
	logLevel   string
	json       bool

	cfg *config.Config
	log *zap.SugaredLogger
}

// Execute runs the command line with args and returns the process exit code:
// 0 on success, 1 when a file could not be checksummed or did not match and
// 2 for usage or configuration errors.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := a.rootCommand()
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if a.log != nil {
		_ = a.log.Sync()
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errFailed):
		return 1
	case verrors.IsCategory(err, verrors.ErrorMismatch):
		fmt.Fprintf(stderr, "cksum: %v\n", err)
		return 1
	default:
		fmt.Fprintf(stderr, "cksum: %v\n", err)
		return 2
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "cksum [file...]",
		Short: "Print CRC checksum and byte counts of each file",
		Long: "Print the POSIX cksum checksum and byte count of each file. With no file, or when\n" +
			"file is -, read standard input. Compressed granules can be checksummed over their\n" +
			"decompressed content with --decompress.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: a.runSum,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file")
	flags.StringVarP(&a.algorithm, "algorithm", "a", "", "checksum algorithm: cksum, crc32-ieee, crc32c, crc64-iso, crc64-ecma, sha1, sha256, xxhash64")
	flags.StringVarP(&a.decompress, "decompress", "d", "", "decompress before checksumming: none, gzip, zstd, auto")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&a.json, "json", false, "print results as JSON")

	root.AddCommand(a.manifestCommand(), a.verifyCommand())
	return root
}

// setup loads the configuration and applies flag overrides.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.DefaultConfig()
	if a.configPath != "" {
		loaded, err := config.LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		cfg.Checksum.Algorithm = a.algorithm
	}
	if flags.Changed("decompress") {
		cfg.Compression.Format = a.decompress
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("json") && a.json {
		cfg.Output = "json"
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.NewWithLevel("cksum", cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg, a.log = cfg, log
	return nil
}

func (a *app) service(opts *domain.Options) (*checksum.Service, error) {
	return checksum.New(opts, a.log, nil)
}
