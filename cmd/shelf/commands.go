package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/shelf/internal/catalog"
	"github.com/crimson-sun/shelf/internal/engine/resolver"
	"github.com/crimson-sun/shelf/internal/engine/validator"
	"github.com/crimson-sun/shelf/internal/model"
)

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>...",
		Short: "Guess a main category for free text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), a.engine.Classify(strings.Join(args, " ")))
		},
	}
}

type resolveResult struct {
	Label      string          `json:"label"`
	CategoryID int             `json:"category_id,omitempty"`
	Resolved   bool            `json:"resolved"`
	Method     resolver.Method `json:"method,omitempty"`
}

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <label>...",
		Short: "Map an external category label onto a main category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := strings.Join(args, " ")
			id, method := a.engine.ResolveLabelMethod(label)
			return printJSON(cmd.OutOrStdout(), resolveResult{
				Label:      label,
				CategoryID: id,
				Resolved:   method != resolver.MethodNone,
				Method:     method,
			})
		},
	}
}

func newAttrsCmd(a *app) *cobra.Command {
	var (
		required   bool
		aiFillable bool
		values     string
		prefill    bool
	)
	cmd := &cobra.Command{
		Use:   "attrs <slug>",
		Short: "List the attribute fields of a category node",
		Long: `List the attribute fields of a category node, merged from the main category
down. With --values, check a JSON object of values against the required fields
instead, or with --prefill keep only the values that may be applied unconfirmed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := args[0]
			if _, ok := a.engine.Taxonomy().FindBySlug(slug); !ok {
				return fmt.Errorf("unknown category %q", slug)
			}
			out := cmd.OutOrStdout()

			if values != "" {
				var vals map[string]any
				if err := json.Unmarshal([]byte(values), &vals); err != nil {
					return fmt.Errorf("--values: %w", err)
				}
				if prefill {
					return printJSON(out, a.engine.PrefillAttributes(slug, vals))
				}
				return printJSON(out, a.engine.ValidateAttributes(slug, vals))
			}

			switch {
			case required:
				return printJSON(out, a.engine.RequiredAttributes(slug))
			case aiFillable:
				return printJSON(out, a.engine.AIFillableAttributes(slug))
			}
			return printJSON(out, a.engine.Attributes(slug))
		},
	}
	cmd.Flags().BoolVar(&required, "required", false, "only required fields")
	cmd.Flags().BoolVar(&aiFillable, "ai-fillable", false, "only fields a suggestion may fill")
	cmd.Flags().StringVar(&values, "values", "", "JSON object of attribute values to check")
	cmd.Flags().BoolVar(&prefill, "prefill", false, "with --values: filter suggested values instead of checking")
	cmd.MarkFlagsMutuallyExclusive("required", "ai-fillable")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	var in validator.Input
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a subcategory selection against a listing title",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), a.engine.ValidateSelection(in))
		},
	}
	cmd.Flags().StringVar(&in.Title, "title", "", "listing title (required)")
	cmd.Flags().StringVar(&in.Description, "description", "", "listing description")
	cmd.Flags().IntVar(&in.CategoryID, "category", 0, "selected main category id")
	cmd.Flags().StringVar(&in.Subcategory, "subcategory", "", "selected subcategory slug")
	cmd.MarkFlagRequired("title")
	return cmd
}

func newTreeCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the category tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := a.engine.Flatten()
			if asJSON {
				return printJSON(cmd.OutOrStdout(), entries)
			}
			icons := make(map[string]string)
			for _, root := range a.engine.Taxonomy().Roots() {
				icons[root.Slug] = root.Icon
			}
			w := cmd.OutOrStdout()
			for _, e := range entries {
				if e.Level == model.LevelMain {
					fmt.Fprintf(w, "%s %s  %s / %s\n", icons[e.Slug], e.ID, e.Name.TH, e.Name.EN)
					continue
				}
				indent := strings.Repeat("  ", int(e.Level)-1)
				fmt.Fprintf(w, "%s%s  %s / %s\n", indent, e.Slug, e.Name.TH, e.Name.EN)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the flattened tree as JSON")
	return cmd
}

type searchResult struct {
	Slug  string        `json:"slug"`
	Name  model.Names   `json:"name"`
	Level model.Level   `json:"level"`
	Path  []model.Crumb `json:"path"`
}

func newSearchCmd(a *app) *cobra.Command {
	var asJSON, thai bool
	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Find category nodes by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hits := a.engine.Search(strings.Join(args, " "))
			if asJSON {
				res := make([]searchResult, len(hits))
				for i, h := range hits {
					res[i] = searchResult{Slug: h.Node.Slug, Name: h.Node.Name, Level: h.Level, Path: h.Path}
				}
				return printJSON(cmd.OutOrStdout(), res)
			}
			for _, h := range hits {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", h.Node.Slug, trail(h.Path, thai))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print hits as JSON")
	cmd.Flags().BoolVar(&thai, "thai", false, "print Thai names")
	return cmd
}

func newBreadcrumbCmd(a *app) *cobra.Command {
	var thai bool
	cmd := &cobra.Command{
		Use:   "breadcrumb <slug>",
		Short: "Print the path from the main category to a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.engine.Breadcrumb(args[0])
			if len(path) == 0 {
				return fmt.Errorf("unknown category %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), trail(path, thai))
			return nil
		},
	}
	cmd.Flags().BoolVar(&thai, "thai", false, "print Thai names")
	return cmd
}

func trail(path []model.Crumb, thai bool) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.Name.EN
		if thai {
			parts[i] = c.Name.TH
		}
	}
	return strings.Join(parts, " › ")
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the active catalog as YAML",
		Long:  "Write the active catalog, built-in or loaded with --catalog, as a YAML document that --catalog accepts.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return catalog.Marshal(cmd.OutOrStdout(), a.catalog)
		},
	}
}
