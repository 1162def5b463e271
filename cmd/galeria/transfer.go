package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lewtec/galeria/internal/domain"
	"github.com/lewtec/galeria/internal/store"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <gallery.json>",
	Short: "Replace the gallery with a JSON export",
	Long: `Read a JSON export, such as the value of the bettiahHeritagGallery key copied
from the browser local storage, and store it as the gallery.

With --append the photos are added after the existing ones with fresh ids.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appendItems, _ := cmd.Flags().GetBool("append")
		content, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		items, err := store.Decode(string(content))
		if err != nil {
			return fmt.Errorf("invalid export '%s': %w", args[0], err)
		}
		if err := checkUniqueIDs(items); err != nil {
			return err
		}

		config, _, _, err := loadConfig(cmd, nil)
		if err != nil {
			return err
		}
		var failures saveFailures
		st, closer, _, err := openStore(cmd, config, store.WithNotifier(&failures))
		if err != nil {
			return err
		}
		defer closer.Close()

		if appendItems {
			st.Load(cmd.Context())
			for _, item := range items {
				st.Add(cmd.Context(), item.Data, strings.Join(item.Tags, ","))
			}
			if failures > 0 {
				return fmt.Errorf("gallery could not be saved")
			}
		} else if err := st.Replace(cmd.Context(), items); err != nil {
			return fmt.Errorf("while saving gallery: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d photos, gallery has %d\n", len(items), st.Len())
		return nil
	},
}

func checkUniqueIDs(items []domain.Item) error {
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			return fmt.Errorf("duplicated id %d in export", item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [gallery.json]",
	Short: "Write the gallery as JSON",
	Long:  `Write the gallery in its persisted JSON layout to a file, or to stdout when no file is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, _, _, err := loadConfig(cmd, nil)
		if err != nil {
			return err
		}
		st, closer, _, err := openStore(cmd, config)
		if err != nil {
			return err
		}
		defer closer.Close()

		value, err := store.Encode(st.Load(cmd.Context()))
		if err != nil {
			return err
		}
		var out io.Writer = cmd.OutOrStdout()
		if len(args) == 1 {
			return os.WriteFile(args[0], []byte(value+"\n"), 0o644)
		}
		_, err = fmt.Fprintln(out, value)
		return err
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	importCmd.Flags().Bool("append", false, "Append to the gallery instead of replacing it")
}
