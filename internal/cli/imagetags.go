package cli

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gcloudctl/internal/config"
	"github.com/blackwell-systems/gcloudctl/internal/msg"
	"github.com/blackwell-systems/gcloudctl/internal/registry"
)

var imageTagsFilter string

var imageTagsCmd = &cobra.Command{
	Use:   "image-tags [REPOSITORY]",
	Short: "List Docker Hub tags for a repository",
	Long: `List the tags of a Docker Hub repository, newest first, optionally
filtered by a regular expression. Bare names get the "library/"
namespace. Defaults to the configured gcloud image repository.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		pr := msg.New(cfg.Silent)

		repo := cfg.ImageRepository()
		if len(args) == 1 {
			repo = args[0]
		}

		var filter *regexp.Regexp
		if imageTagsFilter != "" {
			filter, err = regexp.Compile(imageTagsFilter)
			if err != nil {
				return fmt.Errorf("invalid --filter: %w", err)
			}
		}

		tags, err := registry.New().Tags(cmd.Context(), repo, filter)
		if err != nil {
			return err
		}
		if len(tags) == 0 {
			pr.Warnf("no matching tags found for %s", repo)
			return nil
		}

		for _, tag := range tags {
			fmt.Println(tag)
		}
		return nil
	},
}

func init() {
	imageTagsCmd.Flags().StringVar(&imageTagsFilter, "filter", "", "Regular expression to filter tags")
}
