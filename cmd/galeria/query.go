package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lewtec/galeria/internal/domain"
	"github.com/lewtec/galeria/internal/view"
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query [flags] [tag]",
	Short: "Queries the gallery",
	Long: `Query the photos of the gallery.

Examples:
  # List all tags with the number of photos carrying them
  galeria query -c config.yaml

  # List the ids and tags of the photos tagged "temple"
  galeria query -c config.yaml temple`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}
		config, _, _, err := loadConfig(cmd, nil)
		if err != nil {
			return err
		}
		st, closer, _, err := openStore(cmd, config)
		if err != nil {
			return err
		}
		defer closer.Close()

		items := st.Load(cmd.Context())
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			bar := view.RenderTagBar(items, st.Tags(), domain.NoFilter())
			if asJSON {
				return json.NewEncoder(out).Encode(bar)
			}
			for _, button := range bar.Buttons {
				name := button.Tag
				if button.All() {
					name = "*"
				}
				fmt.Fprintf(out, "%s\t%d\n", name, button.Count)
			}
			return nil
		}

		visible := view.Render(items, domain.TagFilter(args[0]))
		if asJSON {
			return json.NewEncoder(out).Encode(visible)
		}
		if visible.Empty() {
			fmt.Fprintln(cmd.ErrOrStderr(), visible.Placeholder)
			return nil
		}
		for _, card := range visible.Cards {
			fmt.Fprintf(out, "%d\t%s\n", card.ID, strings.Join(card.Tags, ","))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().Bool("json", false, "Print the projection as JSON")
}
