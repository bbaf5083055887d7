package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pageza/larder/backend/internal/scaling"
)

type scaleOptions struct {
	base   int
	target int
	file   string
	asJSON bool
}

// NewScaleCommand creates the scale command
func NewScaleCommand() *cobra.Command {
	opts := &scaleOptions{}
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Scale a JSON ingredient list to a new serving count",
		Long: `Scale reads a JSON array of ingredients ({"name","amount","unit"}) and
prints them scaled from --base to --target servings.

The input may also be a recipe object {"servings": ..., "ingredients": [...]},
in which case its servings are used when --base is not given. Free text such
as "4 servings" or "6-8" is read by its leading number.

Examples:
  larder scale --base 4 --target 6 -f pancakes.json
  cat ingredients.json | larder scale --base 2 --target 3 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScale(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.base, "base", 0, "Servings the ingredients are written for")
	cmd.Flags().IntVar(&opts.target, "target", 0, "Servings to scale to")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "-", "Ingredient file, - for stdin")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print JSON instead of a table")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func runScale(cmd *cobra.Command, opts *scaleOptions) error {
	if opts.target < 1 {
		return fmt.Errorf("--target must be at least 1")
	}

	var in io.Reader = cmd.InOrStdin()
	if opts.file != "-" {
		f, err := os.Open(opts.file)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", opts.file, err)
		}
		defer f.Close()
		in = f
	}

	ingredients, servings, err := decodeIngredients(in)
	if err != nil {
		return err
	}
	base := opts.base
	if base == 0 {
		base = servings
	}

	scaled := scaling.ScaleAll(ingredients, scaling.ScaleContext{
		BaseServings:   base,
		TargetServings: opts.target,
	})

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(scaled)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, ing := range scaled {
		fmt.Fprintf(w, "%s\t%s\t%s\n", ing.Amount, ing.Unit, ing.Name)
	}
	return w.Flush()
}

type recipeInput struct {
	Servings    json.RawMessage      `json:"servings"`
	Ingredients []scaling.Ingredient `json:"ingredients"`
}

// decodeIngredients accepts a bare ingredient array or a recipe object
func decodeIngredients(r io.Reader) ([]scaling.Ingredient, int, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, 0, fmt.Errorf("failed to decode ingredients: %w", err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var ingredients []scaling.Ingredient
		if err := json.Unmarshal(raw, &ingredients); err != nil {
			return nil, 0, fmt.Errorf("failed to decode ingredients: %w", err)
		}
		return ingredients, 0, nil
	}

	var recipe recipeInput
	if err := json.Unmarshal(raw, &recipe); err != nil {
		return nil, 0, fmt.Errorf("failed to decode recipe: %w", err)
	}
	// servings may be a number or free text
	var text string
	if err := json.Unmarshal(recipe.Servings, &text); err != nil {
		text = string(recipe.Servings)
	}
	return recipe.Ingredients, scaling.ParseServings(text), nil
}
