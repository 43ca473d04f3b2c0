package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"myRecoMarket/domain"
	"myRecoMarket/internal/client"

	"github.com/spf13/cobra"
)

func newSimulateCommand(opts *options) *cobra.Command {
	var topK int

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Ask for recommendations interactively",
		Long: `simulate reads one request per line as "<user id> [top-k]" and prints the
recommendations for each. API failures are reported as warnings and the
session goes on. An empty line, "quit" or end of input ends the session.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if topK < 1 {
				return errors.New("--top-k must be at least 1")
			}
			return simulate(cmd, opts, topK)
		},
	}

	cmd.Flags().IntVarP(&topK, "top-k", "k", 5, "Default number of products per request")

	return cmd
}

// simulate keeps a single client for the whole session so that repeated
// failures open its circuit breaker.
func simulate(cmd *cobra.Command, opts *options, defaultTopK int) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for {
		_, _ = fmt.Fprint(out, "reco> ")
		if !scanner.Scan() {
			_, _ = fmt.Fprintln(out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}

		userID, topK, err := parseSimulateLine(fields, defaultTopK)
		if err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
			continue
		}

		res, err := opts.api.Recommend(cmd.Context(), userID, topK)
		if err != nil {
			reportSimulateError(errOut, opts.apiURL, userID, err)
			continue
		}

		if opts.format == formatJSON {
			if err := renderJSON(out, res); err != nil {
				return err
			}
			continue
		}
		renderRecommendations(out, res.UserID, res.RecommendedProducts)
	}
}

func parseSimulateLine(fields []string, defaultTopK int) (string, int, error) {
	if len(fields) > 2 {
		return "", 0, errors.New(`expected "<user id> [top-k]"`)
	}
	if len(fields) == 1 {
		return fields[0], defaultTopK, nil
	}

	topK, err := strconv.Atoi(fields[1])
	if err != nil || topK < 1 {
		return "", 0, fmt.Errorf("invalid top-k %q, must be a positive integer", fields[1])
	}
	return fields[0], topK, nil
}

func reportSimulateError(w io.Writer, apiURL, userID string, err error) {
	switch {
	case errors.Is(err, client.ErrConnectionFailure):
		_, _ = fmt.Fprintf(w, "Warning: could not connect to the recommendation API at %s. Is the server running?\n", apiURL)
	case errors.Is(err, domain.ErrUserNotFound):
		_, _ = fmt.Fprintf(w, "Warning: user %s not found\n", userID)
	default:
		_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	}
}
