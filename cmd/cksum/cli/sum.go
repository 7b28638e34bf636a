package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	codec "github.com/iamNilotpal/cksum/internal/adapters/manifest"
	"github.com/iamNilotpal/cksum/internal/core/domain"
	"github.com/iamNilotpal/cksum/internal/serialize"
)

const stdinName = "-"

func (a *app) runSum(cmd *cobra.Command, args []string) error {
	svc, err := a.service(a.cfg.Options())
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{stdinName}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]*domain.FileChecksum, 0, len(args))
	failed := false

	for _, name := range args {
		var res *domain.FileChecksum
		if name == stdinName {
			res, err = svc.SumReader(a.stdin, "")
		} else {
			res, err = svc.SumFile(ctx, name)
		}

		if err != nil {
			failed = true
			a.log.Errorw("checksum failed", "path", name, "error", err)
			fmt.Fprintf(a.stderr, "cksum: %s: %v\n", name, err)
			continue
		}

		if a.cfg.Output == "json" {
			results = append(results, res)
			continue
		}

		line := codec.FormatLine(domain.ManifestEntry{Checksum: res.Checksum, Size: res.Size, Path: res.Path})
		fmt.Fprintln(a.stdout, line)
	}

	if a.cfg.Output == "json" {
		if err := serialize.WriteJSON(a.stdout, results); err != nil {
			return err
		}
	}

	if failed {
		return errFailed
	}
	return nil
}
