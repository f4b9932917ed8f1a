package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pageza/recipeai/backend/internal/client"
	"github.com/pageza/recipeai/backend/internal/types"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <ingredient>...",
	Short: "Suggest recipes for a list of ingredients",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ingredients := types.NewIngredientList(args...)
		if ingredients.Len() == 0 {
			return errors.New("no ingredients given")
		}

		suggestions, err := newClient(cmd).Recommend(cmd.Context(), ingredients)
		if err != nil {
			return err
		}

		plain, _ := cmd.Flags().GetBool("plain")
		width, _ := cmd.Flags().GetInt("width")
		renderer, err := client.NewRenderer(plain, width)
		if err != nil {
			return err
		}
		out, err := renderer.Render(suggestions)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	suggestCmd.Flags().Bool("plain", false, "Render without colors")
	suggestCmd.Flags().Int("width", 80, "Wrap output at this width")
	rootCmd.AddCommand(suggestCmd)
}
