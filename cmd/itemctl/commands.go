package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ghuser/itemmock/pkg/itemclient"
	"github.com/ghuser/itemmock/pkg/logger"
	"github.com/ghuser/itemmock/pkg/mockserver"
)

// statusError marks a completed request that the service answered with 4xx/5xx.
// The response has already been printed.
type statusError struct{ status int }

func (e *statusError) Error() string { return fmt.Sprintf("request failed with status %d", e.status) }

type rootOptions struct {
	baseURL string
	timeout time.Duration
}

func (o *rootOptions) client() *itemclient.Client {
	return itemclient.New(o.baseURL, itemclient.WithTimeout(o.timeout))
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "itemctl",
		Short:         "Talk to a running item service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "",
		"Service base URL (default: $SERVICE_BASE_URL or "+itemclient.DefaultBaseURL+")")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Per-request timeout")

	root.AddCommand(
		newCreateCmd(opts),
		newGetCmd(opts),
		newListCmd(opts),
		newStatsCmd(opts),
		newServeCmd(),
	)
	return root
}

func newCreateCmd(opts *rootOptions) *cobra.Command {
	var (
		title, description string
		price              int
		sellerID           int64
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{
				"title":       title,
				"description": description,
				"price":       price,
				"sellerId":    sellerID,
			}
			res, err := opts.client().CreateItem(cmd.Context(), payload)
			return printResult(cmd, res, err)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Item title")
	cmd.Flags().StringVar(&description, "description", "", "Item description")
	cmd.Flags().IntVar(&price, "price", 0, "Price, a positive integer")
	cmd.Flags().Int64Var(&sellerID, "seller-id", 0, "Seller id in 111111-999999")
	return cmd
}

func newGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch an item by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.client().GetItem(cmd.Context(), args[0])
			return printResult(cmd, res, err)
		},
	}
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list <sellerId>",
		Short: "List a seller's items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.client().ListItems(cmd.Context(), args[0])
			return printResult(cmd, res, err)
		},
	}
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <id>",
		Short: "Fetch an item's statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.client().GetStatistics(cmd.Context(), args[0])
			return printResult(cmd, res, err)
		},
	}
}

func newServeCmd() *cobra.Command {
	var addr, level string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an in-memory item service until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv, err := mockserver.Start(ctx, mockserver.Options{
				Addr:   addr,
				Logger: logger.NewWithWriter(cmd.ErrOrStderr(), level),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), srv.BaseURL())

			select {
			case <-ctx.Done():
			case err := <-srv.Err():
				if err != nil {
					_ = srv.Close(context.Background())
					return err
				}
			}
			return srv.Close(context.Background())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8000", "Listen address")
	cmd.Flags().StringVar(&level, "log-level", "info", "Log level: debug, info, warn, error")
	return cmd
}

// printResult writes the status line and the indented body.
func printResult(cmd *cobra.Command, res *itemclient.Result, err error) error {
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "HTTP %d\n", res.Status)

	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(res.Raw), "", "  "); err != nil {
		data, _ := json.MarshalIndent(res.Body, "", "  ")
		fmt.Fprintln(out, string(data))
	} else {
		fmt.Fprintln(out, buf.String())
	}

	if res.Status >= 400 {
		return &statusError{status: res.Status}
	}
	return nil
}
