package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newRecommendCommand(opts *options) *cobra.Command {
	var (
		userID string
		topK   int
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Show the top-K recommended products of a user",
		Example: `  reco-cli recommend --user 3f1c9a --top-k 5
  reco-cli recommend --user 3f1c9a -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if topK < 1 {
				return errors.New("--top-k must be at least 1")
			}

			res, err := opts.api.Recommend(cmd.Context(), userID, topK)
			if err != nil {
				return err
			}

			if opts.format == formatJSON {
				return renderJSON(cmd.OutOrStdout(), res)
			}
			renderRecommendations(cmd.OutOrStdout(), res.UserID, res.RecommendedProducts)
			return nil
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "Customer id")
	cmd.Flags().IntVarP(&topK, "top-k", "k", 5, "Number of products")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
