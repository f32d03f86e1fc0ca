package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shide1989/zsh-docs/internal/log"
	"github.com/shide1989/zsh-docs/internal/site"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes the site config for an external renderer",
	Long: `The export command writes the validated site configuration as JSON
(title, description and themeConfig) or YAML, to stdout or to a file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := site.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		sc, err := loadSite()
		if err != nil {
			return err
		}
		if exportOut == "" {
			return sc.Export(cmd.OutOrStdout(), format)
		}
		if err := sc.WriteFile(exportOut, format); err != nil {
			return err
		}
		logger := log.WithComponent("export")
		logger.Info().Str("file", exportOut).Str("format", string(format)).Msg("site config exported")
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
