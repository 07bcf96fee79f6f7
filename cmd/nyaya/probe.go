package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nyaya-ai/nyaya/config"
	"github.com/nyaya-ai/nyaya/provider"
)

func probeCMD() *cobra.Command {
	var cfgPath string
	var probe = &cobra.Command{
		Use:   "probe",
		Short: "Check whether the generation backend is reachable and has the configured model",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			prov, err := provider.NewProvider(provider.Ollama, cfg.Ollama)
			if err != nil {
				return err
			}
			if !prov.IsAvailable(context.Background()) {
				return fmt.Errorf("ollama at %s is unreachable or missing model %s", cfg.Ollama.BaseURL, cfg.Ollama.Model)
			}
			fmt.Printf("ollama at %s is serving model %s\n", cfg.Ollama.BaseURL, cfg.Ollama.Model)
			return nil
		},
	}
	probe.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default is ./config)")

	return probe
}
