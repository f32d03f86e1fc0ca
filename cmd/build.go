package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shide1989/zsh-docs/internal/build"
)

var strictBuild bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static site from the content directory",
	Long: `The build command validates the site configuration, converts the
Markdown pages of the content directory, renders them with the navigation,
sidebar and footer of the site, copies static assets and writes the local
search index into the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadSite()
		if err != nil {
			return err
		}
		_, err = build.Run(appConfig, sc, build.Options{Strict: strictBuild})
		return err
	},
}

func init() {
	buildCmd.Flags().BoolVar(&strictBuild, "strict", false, "fail when nav or sidebar links have no page")
	rootCmd.AddCommand(buildCmd)
}
