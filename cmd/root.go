package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shide1989/zsh-docs/internal/build"
	"github.com/shide1989/zsh-docs/internal/config"
	"github.com/shide1989/zsh-docs/internal/log"
	"github.com/shide1989/zsh-docs/internal/site"
)

var cfgFile string
var appConfig config.Config

var rootCmd = &cobra.Command{
	Use:   "zsh-docs",
	Short: "Zsh Docs - the Z shell manual as a static site",
	Long: `zsh-docs owns the site configuration of the Zsh manual (navigation,
sidebars, footer, search provider) and builds a browsable static site
from the Markdown pages in the content directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "tool config file (default is ./zsh-docs.yaml)")
	flags.String("site-config", "", "site config file (.yaml or .json); built-in config when empty")
	flags.String("content-dir", "docs", "directory holding the Markdown pages")
	flags.String("output-dir", "public", "directory the site is generated into")
	flags.String("base-url", "", "absolute URL the site is served from")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
}

func initializeConfig(cmd *cobra.Command) error {
	cfg, used, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	appConfig = cfg

	log.Configure(log.Config{Level: cfg.LogLevel, Output: cmd.ErrOrStderr(), Console: true})
	if used != "" {
		logger := log.Base()
		logger.Debug().Str("file", used).Msg("using config file")
	}
	return nil
}

// loadSite loads the site configuration selected by the tool config.
func loadSite() (*site.Config, error) {
	return build.LoadSite(appConfig.SiteConfig)
}
