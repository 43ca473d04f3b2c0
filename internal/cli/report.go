package cli

import (
	"myRecoMarket/domain"

	"github.com/spf13/cobra"
)

func newReportCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the reporting views",
	}

	cmd.AddCommand(newRFMReportCommand(opts))
	cmd.AddCommand(newRulesReportCommand(opts))
	cmd.AddCommand(newEDAReportCommand(opts))

	return cmd
}

func newRFMReportCommand(opts *options) *cobra.Command {
	var segments bool

	cmd := &cobra.Command{
		Use:   "rfm",
		Short: "Customer RFM scores, or the per segment summary with --segments",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			w := cmd.OutOrStdout()

			if segments {
				summary, err := opts.api.SegmentSummary(ctx)
				if err != nil {
					return err
				}
				if opts.format == formatJSON {
					return renderJSON(w, summary)
				}
				renderSegmentSummary(w, summary)
				return nil
			}

			records, err := opts.api.CustomerSegments(ctx)
			if err != nil {
				return err
			}
			if opts.format == formatJSON {
				return renderJSON(w, records)
			}
			renderRFM(w, records)
			return nil
		},
	}

	cmd.Flags().BoolVar(&segments, "segments", false, "Show the segment summary instead of every customer")

	return cmd
}

func newRulesReportCommand(opts *options) *cobra.Command {
	var query domain.RuleQuery

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Association rules ranked by confidence",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules, err := opts.api.TopRules(cmd.Context(), query)
			if err != nil {
				return err
			}
			if opts.format == formatJSON {
				return renderJSON(cmd.OutOrStdout(), rules)
			}
			renderRules(cmd.OutOrStdout(), rules)
			return nil
		},
	}

	cmd.Flags().IntVar(&query.N, "n", 10, "Number of rules")
	cmd.Flags().Float64Var(&query.MinConfidence, "min-confidence", 0, "Drop rules below this confidence")
	cmd.Flags().Float64Var(&query.MinLift, "min-lift", 0, "Drop rules below this lift")

	return cmd
}

func newEDAReportCommand(opts *options) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "eda",
		Short: "Category distributions and monthly sales",
		RunE: func(cmd *cobra.Command, _ []string) error {
			overview, err := opts.api.EDAOverview(cmd.Context(), n)
			if err != nil {
				return err
			}
			if opts.format == formatJSON {
				return renderJSON(cmd.OutOrStdout(), overview)
			}
			renderEDA(cmd.OutOrStdout(), overview)
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 10, "Number of categories per table")

	return cmd
}
