package main

import (
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lewtec/galeria/gallery"
	"github.com/lewtec/galeria/internal/store"
)

// detectContentType uses the file extension and falls back to sniffing
func detectContentType(path string, content []byte) string {
	if contentType := mime.TypeByExtension(filepath.Ext(path)); contentType != "" {
		return contentType
	}
	return http.DetectContentType(content)
}

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest [flags] <folder>...",
	Short: "Add a folder of images to the gallery",
	Long: `Walk folders and add every image file found to the gallery with the given tags.
Files that are not images are skipped.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
			return err
		}
		for i, input := range args {
			fileInfo, err := os.Stat(input)
			if err != nil {
				return fmt.Errorf("on %dth argument: %w", i+1, err)
			}
			if !fileInfo.IsDir() {
				return fmt.Errorf("on %dth argument: must be a directory", i+1)
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, _ := cmd.Flags().GetString("tags")
		jobs, _ := cmd.Flags().GetInt("jobs")

		config, _, _, err := loadConfig(cmd, nil)
		if err != nil {
			return err
		}
		var failures saveFailures
		st, closer, logger, err := openStore(cmd, config, store.WithNotifier(&failures))
		if err != nil {
			return err
		}
		defer closer.Close()
		st.Load(cmd.Context())

		var paths []string
		for _, input := range args {
			err = filepath.WalkDir(input, func(path string, info fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() {
					paths = append(paths, path)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}

		// files are read in parallel but added in walk order
		dataURIs := make([]string, len(paths))
		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(max(jobs, 1))
		for i, path := range paths {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				content, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("while reading '%s': %w", path, err)
				}
				contentType := detectContentType(path, content)
				if !gallery.IsImageType(contentType) {
					logger.Info("skipping file, not an image", zap.String("path", path), zap.String("type", contentType))
					return nil
				}
				dataURIs[i] = gallery.EncodeDataURI(contentType, content)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		added := 0
		for i, data := range dataURIs {
			if data == "" {
				continue
			}
			item := st.Add(cmd.Context(), data, tags)
			logger.Info("ingested image", zap.String("path", paths[i]), zap.Int64("id", item.ID))
			added++
		}
		if failures > 0 {
			return fmt.Errorf("gallery could not be saved %d times", failures)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %d images, gallery has %d\n", added, st.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().StringP("tags", "t", "", "Comma separated tags for every ingested image")
	ingestCmd.Flags().IntP("jobs", "j", 1, "Amount of concurrent readers")
}
