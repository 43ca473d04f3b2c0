// Package cli is the interactive client of the recommendation API.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"myRecoMarket/domain"
	"myRecoMarket/internal/client"
	"myRecoMarket/pkg/config"

	"github.com/spf13/cobra"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

var Version = "1.0.0"

// options are shared by every subcommand once the root flags are parsed.
type options struct {
	apiURL  string
	format  string
	timeout time.Duration
	cfg     config.ClientConfig
	api     *client.Client
}

func NewRootCmd(cfg config.ClientConfig) *cobra.Command {
	opts := &options{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:           "reco-cli",
		Short:         "Query the recommendation API",
		Long:          `reco-cli asks the recommendation API for product recommendations and prints the RFM, basket rule and category reports.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.format != formatTable && opts.format != formatJSON {
				return fmt.Errorf("unknown format %q, want %s or %s", opts.format, formatTable, formatJSON)
			}

			clientCfg := opts.cfg
			clientCfg.APIURL = opts.apiURL
			clientCfg.Timeout = opts.timeout
			opts.api = client.New(clientCfg)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", cfg.APIURL, "Base URL of the recommendation API")
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "o", formatTable, "Output format (table|json)")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", cfg.Timeout, "Request timeout")

	rootCmd.AddCommand(newRecommendCommand(opts))
	rootCmd.AddCommand(newReportCommand(opts))
	rootCmd.AddCommand(newSimulateCommand(opts))

	return rootCmd
}

// Execute runs the command tree and returns the process exit code. API
// failures are reported as warnings on stderr.
func Execute(ctx context.Context, cfg config.ClientConfig, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd(cfg)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	apiURL := cfg.APIURL
	if f := rootCmd.PersistentFlags().Lookup("api-url"); f != nil {
		apiURL = f.Value.String()
	}

	switch {
	case errors.Is(err, client.ErrConnectionFailure):
		_, _ = fmt.Fprintf(stderr, "Warning: could not connect to the recommendation API at %s. Is the server running?\n", apiURL)
	case errors.Is(err, domain.ErrUserNotFound):
		_, _ = fmt.Fprintln(stderr, "Warning: user not found")
	default:
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return 1
}
