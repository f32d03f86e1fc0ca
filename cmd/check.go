package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shide1989/zsh-docs/internal/build"
	"github.com/shide1989/zsh-docs/internal/site"
	"github.com/shide1989/zsh-docs/internal/validate"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

var errCheckFailed = errors.New("check failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validates the site config and reports links without a page",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.OutOrStdout())
	},
}

func runCheck(w io.Writer) error {
	sc := site.Default()
	if appConfig.SiteConfig != "" {
		var err error
		if sc, err = site.Load(appConfig.SiteConfig); err != nil {
			fmt.Fprintf(w, "%s %v\n", red("✗"), err)
			return errCheckFailed
		}
	}

	problems := 0
	fmt.Fprintln(w, bold("Site config"))
	if err := site.Validate(sc); err != nil {
		var verr validate.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		for _, e := range verr.Errors() {
			fmt.Fprintf(w, "  %s %s: %s (%v)\n", red("✗"), e.Field, e.Message, e.Value)
		}
		problems += len(verr.Errors())
	} else {
		fmt.Fprintf(w, "  %s %d links, %d sidebar prefixes\n", green("✓"), len(sc.Links()), len(sc.Theme.Sidebar))
	}

	fmt.Fprintln(w, bold("Links"))
	sd, err := build.Collect(appConfig, sc)
	if err != nil {
		fmt.Fprintf(w, "  %s %v\n", yellow("!"), err)
		problems++
	} else {
		dangling := sc.CheckLinks(sd)
		for _, ref := range dangling {
			fmt.Fprintf(w, "  %s %s %q -> %s has no page\n", red("✗"), ref.Location, ref.Text, ref.Link)
		}
		problems += len(dangling)
		if len(dangling) == 0 {
			fmt.Fprintf(w, "  %s all links resolve to one of %d pages\n", green("✓"), len(sd.ContentItems))
		}
	}

	if problems > 0 {
		return fmt.Errorf("%w: %d problem(s)", errCheckFailed, problems)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
