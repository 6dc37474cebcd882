package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/TomasPilar/query-translator/internal/galach/parser"
	"github.com/TomasPilar/query-translator/internal/galach/render"
)

var parseCmd = &cobra.Command{
	Use:   "parse [query]",
	Short: "Parse a single query and print its syntax tree and corrections",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: please provide a query string")
			os.Exit(1)
		}
		query := strings.Join(args, " ")
		runParse(query)
	},
}

func runParse(query string) {
	tree := parser.ParseString(query)

	switch config.OutputKind {
	case "json":
		printJSON(tree)
	case "yaml":
		printYAML(tree)
	default:
		printText(query, tree)
	}

	if len(tree.Corrections) > 0 {
		logger.Info("query required corrections",
			zap.String("query", query),
			zap.Int("count", len(tree.Corrections)),
		)
	}
}

func printText(query string, tree parser.SyntaxTree) {
	fmt.Println(render.Tree(tree.Root))
	if len(tree.Corrections) > 0 {
		fmt.Println()
		fmt.Print(render.Corrections(tree.Corrections, query))
	}
}

type resultDoc struct {
	Query       string   `json:"query" yaml:"query"`
	Corrections []string `json:"corrections" yaml:"corrections"`
}

func toResultDoc(query string, tree parser.SyntaxTree) resultDoc {
	kinds := make([]string, len(tree.Corrections))
	for i, c := range tree.Corrections {
		kinds[i] = c.Kind.String()
	}
	return resultDoc{Query: query, Corrections: kinds}
}

func printJSON(tree parser.SyntaxTree) {
	doc := toResultDoc(tree.Tokens.Source, tree)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		logger.Error("failed to marshal result", zap.Error(err))
		return
	}
	fmt.Println(string(data))
}

func printYAML(tree parser.SyntaxTree) {
	doc := toResultDoc(tree.Tokens.Source, tree)
	data, err := yaml.Marshal(doc)
	if err != nil {
		logger.Error("failed to marshal result", zap.Error(err))
		return
	}
	fmt.Print(string(data))
}
