package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TomasPilar/query-translator/internal/galach/cache"
	"github.com/TomasPilar/query-translator/internal/galach/parser"
)

var batchOutPath string

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Parse every line of a file as a separate query",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: please provide a file of newline-separated queries")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		if err := runBatch(ctx, args[0]); err != nil {
			logger.Error("batch processing failed", zap.Error(err))
			os.Exit(1)
		}
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutPath, "output", "o", "", "write per-query correction counts to this file instead of stdout")
}

func runBatch(ctx context.Context, path string) error {
	queries, err := readLines(path)
	if err != nil {
		return fmt.Errorf("reading query file: %w", err)
	}

	store, err := cache.Open(config.CacheDir)
	if err != nil {
		logger.Warn("parse cache unavailable, continuing without it", zap.Error(err))
	}

	bar := progressbar.Default(int64(len(queries)), "parsing queries")

	var out *os.File = os.Stdout
	if batchOutPath != "" {
		f, err := os.Create(batchOutPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	totalCorrections := 0
	for _, query := range queries {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		tree := parseWithCache(store, query)
		totalCorrections += len(tree.Corrections)
		fmt.Fprintf(out, "%d\t%s\n", len(tree.Corrections), query)
		_ = bar.Add(1)
	}

	logger.Info("batch complete",
		zap.Int("queries", len(queries)),
		zap.Int("corrections", totalCorrections),
	)
	return nil
}

func parseWithCache(store *cache.Cache, query string) parser.SyntaxTree {
	tree := parser.ParseString(query)
	if store != nil {
		if err := store.Put(query, tree); err != nil {
			logger.Warn("failed to write parse cache entry", zap.Error(err))
		}
	}
	return tree
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
