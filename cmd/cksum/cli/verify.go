package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/iamNilotpal/cksum/internal/core/domain"
	"github.com/iamNilotpal/cksum/internal/core/services/manifest"
	"github.com/iamNilotpal/cksum/internal/serialize"
	verrors "github.com/iamNilotpal/cksum/pkg/errors"
)

func (a *app) verifyCommand() *cobra.Command {
	var baseDir string

	cmd := &cobra.Command{
		Use:   "verify <manifest>",
		Short: "Verify files against a checksum manifest",
		Long: "Verify files against a manifest written by 'cksum manifest' or by the cksum utility.\n" +
			"Paths are resolved relative to --base, which defaults to the manifest's directory.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}

			// The manifest decides the algorithm unless one was asked for explicitly.
			opts := a.cfg.Options()
			if !cmd.Flags().Changed("algorithm") && m.Algorithm != "" {
				opts.ChecksumOptions = &domain.ChecksumOptions{Algorithm: m.Algorithm}
			}

			svc, err := a.service(opts)
			if err != nil {
				return err
			}

			if baseDir == "" {
				baseDir = filepath.Dir(args[0])
			}

			report, err := manifest.New(svc, a.log).Verify(cmd.Context(), m, baseDir)
			if err != nil {
				return err
			}

			if a.cfg.Output == "json" {
				if err := serialize.WriteJSON(a.stdout, report); err != nil {
					return err
				}
			} else {
				for _, r := range report.Results {
					if r.OK() {
						fmt.Fprintf(a.stdout, "%s: OK\n", r.Expected.Path)
						continue
					}
					if r.Error != "" {
						fmt.Fprintf(a.stdout, "%s: FAILED (%s: %s)\n", r.Expected.Path, r.Status, r.Error)
						continue
					}
					fmt.Fprintf(a.stdout, "%s: FAILED (%s)\n", r.Expected.Path, r.Status)
				}
			}

			if !report.OK() {
				return verrors.NewChecksumError(
					verrors.ErrorMismatch, "verify", args[0],
					fmt.Errorf("%d of %d files did not match", report.Failed, len(report.Results)),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseDir, "base", "", "directory manifest paths are relative to")
	return cmd
}
