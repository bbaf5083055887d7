package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/larder/backend/config"
	"github.com/pageza/larder/backend/internal/database"
	"github.com/pageza/larder/backend/internal/logging"
	"github.com/pageza/larder/backend/internal/models"
	"github.com/pageza/larder/backend/internal/service"
)

// openDB loads configuration and connects to the configured database
func openDB() (*gorm.DB, *zap.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger := logging.Must(config.GetEnvironment())
	db, err := database.New(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return db, logger, nil
}

// NewMigrateCommand creates the migrate command
func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := openDB()
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All migrations applied successfully.")
			return nil
		},
	}
}

// NewSeedCommand creates the seed command
func NewSeedCommand() *cobra.Command {
	var owner string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := uuid.Nil
			if owner != "" {
				id, err := uuid.Parse(owner)
				if err != nil {
					return fmt.Errorf("invalid --owner: %w", err)
				}
				userID = id
			}

			db, logger, err := openDB()
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}
			n, err := Seed(cmd.Context(), service.NewRecipeService(db, logger), userID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d recipes\n", n)
			return nil
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "User ID to own the seeded recipes")
	return cmd
}

// Seed inserts the sample recipes and returns how many were created
func Seed(ctx context.Context, recipes service.IRecipeService, userID uuid.UUID) (int, error) {
	for i, r := range sampleRecipes() {
		r.UserID = userID
		if _, err := recipes.CreateRecipe(ctx, r); err != nil {
			return i, fmt.Errorf("failed to seed %q: %w", r.Name, err)
		}
	}
	return len(sampleRecipes()), nil
}

func sampleRecipes() []*models.Recipe {
	return []*models.Recipe{
		{
			Name:     "Buttermilk Pancakes",
			Category: "Breakfast",
			Servings: 4,
			Ingredients: models.IngredientList{
				{Name: "all-purpose flour", Amount: "1 1/2", Unit: "cups"},
				{Name: "buttermilk", Amount: "1 ¼", Unit: "cups"},
				{Name: "egg", Amount: "1"},
				{Name: "2 tbsp melted butter"},
				{Name: "salt to taste"},
			},
			Instructions: models.StringList{"Whisk the dry ingredients.", "Fold in the wet ingredients.", "Cook on a hot griddle."},
		},
		{
			Name:     "Tomato Soup",
			Category: "Soup",
			Servings: 6,
			Ingredients: models.IngredientList{
				{Name: "3 lb ripe tomatoes"},
				{Name: "onion", Amount: "1", Unit: "large"},
				{Name: "vegetable stock", Amount: "4", Unit: "cups"},
				{Name: "½ cup cream"},
			},
			Instructions: models.StringList{"Roast the tomatoes.", "Simmer with onion and stock.", "Blend and finish with cream."},
		},
	}
}
