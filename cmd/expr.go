package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/objlint/objlint/internal/javaexpr"
	"github.com/objlint/objlint/internal/lints"
	"github.com/objlint/objlint/internal/version"
)

var (
	exprTarget           string
	exprRequireNullGuard bool
)

var exprCmd = &cobra.Command{
	Use:   "expr <java expression>",
	Short: "Analyze a single Java expression",
	Long: `Parses one Java expression and prints the java.util.Objects.equals
replacement when the expression is a recognized null-safe equality idiom.
Example) objlint expr 'a != null && a.equals(b)'`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: Please provide exactly one expression")
			os.Exit(1)
		}
		suggestion, err := AnalyzeExpression(args[0], exprTarget, exprRequireNullGuard)
		if err != nil {
			logger.Fatal("Failed to analyze expression", zap.Error(err))
		}
		if suggestion == "" {
			fmt.Println("no replacement found")
			return
		}
		fmt.Println(suggestion)
	},
}

func init() {
	exprCmd.Flags().StringVar(&exprTarget, "target", version.DefaultTarget, "target Java release")
	exprCmd.Flags().BoolVar(&exprRequireNullGuard, "require-null-guard", false, "only report calls with a surrounding null guard")
}

// AnalyzeExpression runs the equality-idiom detector over one parsed
// expression and returns the proposed replacement, or "" for no match.
func AnalyzeExpression(src, target string, requireNullGuard bool) (string, error) {
	level, err := version.Parse(target)
	if err != nil {
		return "", err
	}
	tree, err := javaexpr.Parse(src)
	if err != nil {
		return "", fmt.Errorf("error parsing expression: %w", err)
	}

	file := &javaexpr.File{Filename: "expr.java", Source: src, Trees: []*javaexpr.Tree{tree}}
	issues, err := lints.DetectEqualsReplaceable(file.Filename, file, lints.EqualsConfig{
		RequireNullGuard: requireNullGuard,
		Applicable:       level.SupportsObjectsEquals,
	})
	if err != nil {
		return "", err
	}
	if len(issues) == 0 {
		return "", nil
	}
	return issues[0].Suggestion, nil
}
