package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/shide1989/zsh-docs/internal/build"
	"github.com/shide1989/zsh-docs/internal/log"
)

const debounceDuration = 500 * time.Millisecond

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site locally and rebuilds on changes",
	Long: `The serve command performs an initial build, then serves the output
directory and watches the content, layouts and static directories as well as
the site config file, rebuilding the site after every change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServe(ctx)
	},
}

// rebuilder serialises builds triggered by the watcher.
type rebuilder struct {
	mu       sync.Mutex
	logger   zerolog.Logger
	build    func() error
	debounce time.Duration
}

func (r *rebuilder) rebuild() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.build()
}

func buildSite() error {
	sc, err := loadSite()
	if err != nil {
		return err
	}
	_, err = build.Run(appConfig, sc, build.Options{})
	return err
}

func runServe(ctx context.Context) error {
	logger := log.WithComponent("serve")
	rb := &rebuilder{logger: logger, build: buildSite, debounce: debounceDuration}

	logger.Info().Msg("performing initial build")
	if err := rb.rebuild(); err != nil {
		return fmt.Errorf("initial build failed, fix the issues and try again: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	for _, root := range []string{appConfig.ContentDir, appConfig.LayoutsDir, appConfig.StaticDir} {
		watchTree(watcher, root, logger)
	}
	if appConfig.SiteConfig != "" {
		// Editors replace files on save; watch the directory, filter by name.
		if err := watcher.Add(filepath.Dir(appConfig.SiteConfig)); err != nil {
			logger.Warn().Err(err).Str("file", appConfig.SiteConfig).Msg("cannot watch site config")
		}
	}

	go watchLoop(ctx, watcher, rb)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", appConfig.Port),
		Handler:           devHandler(appConfig.OutputDir),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info().Str("dir", appConfig.OutputDir).Msgf("serving site on http://localhost:%d, press Ctrl+C to stop", appConfig.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// watchTree adds root and every directory below it to the watcher.
func watchTree(watcher *fsnotify.Watcher, root string, logger zerolog.Logger) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		logger.Debug().Str("dir", root).Msg("directory not found, not watching")
		return
	}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("error walking directory")
			return nil
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				logger.Warn().Err(err).Str("dir", path).Msg("failed to watch")
			}
		}
		return nil
	})
	if err != nil {
		logger.Warn().Err(err).Str("dir", root).Msg("error during initial directory walk")
	}
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, rb *rebuilder) {
	var buildTimer *time.Timer
	siteConfig := filepath.Clean(appConfig.SiteConfig)

	for {
		select {
		case <-ctx.Done():
			if buildTimer != nil {
				buildTimer.Stop()
			}
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !relevant(event.Name, siteConfig) {
				continue
			}
			rb.logger.Info().Str("file", event.Name).Str("op", event.Op.String()).Msg("change detected")

			if event.Has(fsnotify.Create) && isDir(event.Name) {
				watchTree(watcher, event.Name, rb.logger)
			}

			if buildTimer != nil {
				buildTimer.Stop()
			}
			buildTimer = time.AfterFunc(rb.debounce, func() {
				if err := rb.rebuild(); err != nil {
					rb.logger.Error().Err(err).Msg("rebuild failed")
					return
				}
				rb.logger.Info().Msg("site rebuilt")
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			rb.logger.Warn().Err(err).Msg("watcher error")
		}
	}
}

// relevant filters events from the site config directory down to the
// site config file itself.
func relevant(name, siteConfig string) bool {
	name = filepath.Clean(name)
	if appConfig.SiteConfig == "" || filepath.Dir(name) != filepath.Dir(siteConfig) {
		return true
	}
	for _, root := range []string{appConfig.ContentDir, appConfig.LayoutsDir, appConfig.StaticDir} {
		if filepath.Clean(root) == filepath.Dir(name) {
			return true
		}
	}
	return name == siteConfig
}

// devHandler serves dir without directory listings or caching.
func devHandler(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") && r.URL.Path != "/" {
			if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(r.URL.Path), "index.html")); os.IsNotExist(err) {
				http.NotFound(w, r)
				return
			}
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		fs.ServeHTTP(w, r)
	})
}

func isDir(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fileInfo.IsDir()
}

func init() {
	serveCmd.Flags().IntP("port", "p", 1313, "port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
