package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init [folder]",
	Short: "Initialize a new gallery",
	Long: `Initialize a new gallery by creating:
- A sample configuration file (config.yaml)
- The storage it points to, seeded with the placeholder photos

Example:
  galeria init ./my-gallery
  galeria init --config custom-config.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		configFile, _ := cmd.Flags().GetString("config")
		if len(args) == 1 {
			if err := os.MkdirAll(args[0], 0o755); err != nil {
				return err
			}
			configFile = filepath.Join(args[0], "config.yaml")
		}
		if configFile == "" {
			configFile = "config.yaml"
		}

		if _, err := os.Stat(configFile); os.IsNotExist(err) {
			fmt.Fprintf(out, "Creating sample configuration file: %s\n", configFile)
			if err := createSampleConfig(configFile); err != nil {
				return fmt.Errorf("failed to create config file: %w", err)
			}
		} else {
			fmt.Fprintf(out, "Configuration file already exists: %s\n", configFile)
		}

		config, _, _, err := loadConfig(cmd, []string{configFile})
		if err != nil {
			return err
		}
		st, closer, _, err := openStore(cmd, config)
		if err != nil {
			return err
		}
		defer closer.Close()

		items := st.LoadOrSeed(cmd.Context())
		fmt.Fprintf(out, "Gallery ready with %d photos in %s storage\n", len(items), config.Storage.Backend)
		fmt.Fprintf(out, "\nNext step:\n  galeria %s\n\nThen open http://localhost%s in your browser\n", configFile, config.Server.Addr)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func createSampleConfig(filename string) error {
	sampleConfig := `# galeria configuration file

meta:
  title: "Bettiah Heritage Gallery"
  description: |
    # Bettiah Heritage Gallery

    A local photo gallery of heritage sites. Upload photos, tag them
    with comma separated labels and filter the gallery by tag.

server:
  addr: ":8080"

# Where the gallery is persisted
storage:
  backend: sqlite      # sqlite | file | redis | memory
  path: gallery.db     # relative to this file; a .json file for the file backend
  key: bettiahHeritagGallery
  # redis_url: redis://localhost:6379/0

upload:
  max_bytes: 10485760  # 10 MiB

# Fill an empty gallery with placeholder photos
seed: true

log:
  level: info
  development: false
`

	return os.WriteFile(filename, []byte(sampleConfig), 0644)
}
