package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/Gentor/internal/app"
	"github.com/Rorical/Gentor/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "gentor",
	Short: "A terminal chat client for LLM completion endpoints",
	Long: `Gentor is a terminal chat client that forwards your prompts to an
OpenAI-compatible completion endpoint and renders the exchange in a
scrollable transcript. Type /setting inside the chat to edit the
endpoint configuration.`,
	Run: func(cmd *cobra.Command, args []string) {
		created, err := config.Bootstrap()
		if err != nil {
			log.Fatalf("Failed to bootstrap settings: %v", err)
		}
		if created {
			path, _ := config.Path()
			fmt.Printf("Created %s with placeholder values.\n", path)
			fmt.Println("Fill in your API key and run gentor again.")
			return
		}

		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}

		application := app.NewApplication(cfg)
		if err := application.Start(); err != nil {
			log.Fatalf("Application error: %v", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}
