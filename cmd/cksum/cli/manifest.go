package cli

import (
	"github.com/spf13/cobra"

	codec "github.com/iamNilotpal/cksum/internal/adapters/manifest"
	"github.com/iamNilotpal/cksum/internal/core/services/manifest"
	"github.com/iamNilotpal/cksum/internal/serialize"
)

func (a *app) manifestCommand() *cobra.Command {
	var (
		output     string
		binary     bool
		extensions []string
		exclude    []string
	)

	cmd := &cobra.Command{
		Use:   "manifest <dir>",
		Short: "Write a checksum manifest for every file under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.Options()
			if cmd.Flags().Changed("ext") {
				opts.Extensions = extensions
			}
			if cmd.Flags().Changed("exclude") {
				opts.ExcludeDirs = exclude
			}

			svc, err := a.service(opts)
			if err != nil {
				return err
			}

			m, err := manifest.New(svc, a.log).Build(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			format := codec.FormatText
			if binary || (output != "" && codec.FormatForPath(output) == codec.FormatBinary) {
				format = codec.FormatBinary
			}

			if output != "" {
				return manifest.Save(output, m, format)
			}

			if a.cfg.Output == "json" {
				return serialize.WriteJSON(a.stdout, m)
			}

			c, err := codec.NewCodec(format)
			if err != nil {
				return err
			}
			return c.Encode(a.stdout, m)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the manifest to this file instead of stdout")
	cmd.Flags().BoolVar(&binary, "binary", false, "use the binary (protobuf) encoding")
	cmd.Flags().StringSliceVar(&extensions, "ext", nil, "only include files with these extensions")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "directory names to skip")

	return cmd
}
