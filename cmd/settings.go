package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/Gentor/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View or edit the endpoint configuration",
	Long:  `View or edit the provider, model, API key and base URL without starting the chat.`,
}

var showSettingsCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadSettings()

		fmt.Printf("Provider: %s\n", cfg.Provider)
		fmt.Printf("Model: %s\n", cfg.Model)
		fmt.Printf("API Key: %s\n", maskKey(cfg.APIKey))
		fmt.Printf("Base URL: %s\n", cfg.BaseURL)
	},
}

var editSettingsCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the configuration interactively",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadSettings()

		providerPrompt := promptui.Prompt{
			Label:   "Provider",
			Default: cfg.Provider,
		}
		provider, err := providerPrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		modelPrompt := promptui.Prompt{
			Label:   "Model",
			Default: cfg.Model,
		}
		model, err := modelPrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		apiKeyPrompt := promptui.Prompt{
			Label:   "API Key",
			Default: cfg.APIKey,
			Mask:    '*',
		}
		apiKey, err := apiKeyPrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		baseURLPrompt := promptui.Prompt{
			Label:   "Base URL",
			Default: cfg.BaseURL,
		}
		baseURL, err := baseURLPrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		cfg.Provider = provider
		cfg.Model = model
		cfg.APIKey = apiKey
		cfg.BaseURL = baseURL

		if err := config.Save(cfg); err != nil {
			log.Fatalf("Failed to save settings: %v", err)
		}
		fmt.Println("Settings saved.")
	},
}

func mustLoadSettings() *config.Settings {
	created, err := config.Bootstrap()
	if err != nil {
		log.Fatalf("Failed to bootstrap settings: %v", err)
	}
	if created {
		path, _ := config.Path()
		fmt.Printf("Created %s with placeholder values.\n", path)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	return cfg
}

// maskKey hides all but the first four characters of a credential.
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-4)
}

func init() {
	settingsCmd.AddCommand(showSettingsCmd)
	settingsCmd.AddCommand(editSettingsCmd)
}
