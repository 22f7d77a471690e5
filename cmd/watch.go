package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/objlint/objlint/formatter"
	"github.com/objlint/objlint/internal"
	tt "github.com/objlint/objlint/internal/types"
	"github.com/objlint/objlint/lint"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Re-lint Java files as they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		engine, err := lint.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize lint engine", zap.Error(err))
		}

		watcher, err := internal.NewWatcher(engine, func(filename string, issues []tt.Issue, err error) {
			if err != nil {
				logger.Error("Error re-linting file", zap.String("file", filename), zap.Error(err))
				return
			}
			if len(issues) == 0 {
				fmt.Printf("%s: clean\n", filename)
				return
			}
			sourceCode, err := internal.ReadSourceCode(filename)
			if err != nil {
				logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
				return
			}
			fmt.Println(formatter.FormatIssuesWithArrows(issues, sourceCode))
		})
		if err != nil {
			logger.Fatal("Failed to create watcher", zap.Error(err))
		}

		if err := watcher.Watch(args...); err != nil {
			logger.Fatal("Failed to watch paths", zap.Error(err))
		}
		watcher.Start()
		fmt.Println("watching for changes, press Ctrl+C to stop")

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		_ = watcher.Stop()
	},
}
