package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TomasPilar/query-translator/internal/galach/cache"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory of query files and reparse on change",
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		if err := runWatch(dir); err != nil {
			logger.Error("watch failed", zap.Error(err))
			os.Exit(1)
		}
	},
}

// watcher ties an fsnotify watcher to the parse cache it writes each
// reparsed query's result into as files change underneath it.
type watcher struct {
	fs    *fsnotify.Watcher
	store *cache.Cache
}

func runWatch(dir string) error {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fs.Close()

	store, err := cache.Open(config.CacheDir)
	if err != nil {
		logger.Warn("parse cache unavailable, continuing without it", zap.Error(err))
	}

	if err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return fs.Add(path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("adding directory to watcher: %w", err)
	}

	w := &watcher{fs: fs, store: store}
	logger.Info("watching for query file changes", zap.String("dir", dir))
	w.loop()
	return nil
}

func (w *watcher) loop() {
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Error("watcher error", zap.Error(err))
		}
	}
}

func (w *watcher) handleEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !strings.HasSuffix(event.Name, ".txt") && !strings.HasSuffix(event.Name, ".queries") {
		return
	}

	// give the writer a moment to finish before reading; every write event
	// still gets its own pass, bursts are not coalesced
	time.Sleep(100 * time.Millisecond)

	queries, err := readLines(event.Name)
	if err != nil {
		logger.Error("failed to read changed file", zap.String("file", event.Name), zap.Error(err))
		return
	}

	corrected := 0
	for _, query := range queries {
		tree := parseWithCache(w.store, query)
		if len(tree.Corrections) > 0 {
			corrected++
		}
	}
	logger.Info("reparsed file",
		zap.String("file", event.Name),
		zap.Int("queries", len(queries)),
		zap.Int("corrected", corrected),
	)
}
