package cmd

import (
	"fmt"

	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	tt "github.com/objlint/objlint/internal/types"
	"github.com/objlint/objlint/lint"
)

// initCmd: objlint init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new linter configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfigurationFile(cfgFile); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		path := cfgFile
		if path == "" {
			path = defaultConfigPath
		}
		fmt.Printf("Configuration file created/updated: %s\n", path)
	},
}

const defaultConfigPath = ".objlint.yaml"

func initConfigurationFile(configurationPath string) error {
	if configurationPath == "" {
		configurationPath = defaultConfigPath
	}

	config := lint.DefaultConfig()
	config.Rules = map[string]tt.ConfigRule{
		"equals-replaceable": {Severity: tt.SeverityWarning},
	}
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(configurationPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
