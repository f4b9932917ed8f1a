package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pageza/recipeai/backend/internal/client"
)

var rootCmd = &cobra.Command{
	Use:          "recipeai",
	Short:        "RecipeAI suggests recipes for the ingredients you have",
	Long:         `recipeai talks to a RecipeAI server: ask for recipe suggestions, log in and out, or check that the server is up.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("server", client.DefaultServer, "Base URL of the RecipeAI server")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "Request timeout")
}

func newClient(cmd *cobra.Command) *client.Client {
	server, _ := cmd.Flags().GetString("server")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	return client.New(server, timeout)
}
