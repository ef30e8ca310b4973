package main

import (
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/phrazzld/companies-api/internal/company"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "companies-api",
		Short:         "HTTP API serving fixed queries over the companies collection",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server (default)",
			Args:  cobra.NoArgs,
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "routes",
			Short: "Print the query route table",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return printRoutes(cmd.OutOrStdout(), company.Routes())
			},
		},
	)
	return root
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	log, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize application", "error", err)
		return err
	}
	return app.Run(ctx)
}

func printRoutes(w io.Writer, routes []company.Route) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPATH\tFILTER\tPROJECTION\tSORT\tLIMIT")
	for _, r := range routes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Name,
			r.FullPath(),
			extJSON(r.Query.FilterDocument()),
			extJSON(r.Query.ProjectionDocument()),
			extJSON(r.Query.SortDocument()),
			limitString(r.Query.Limit),
		)
	}
	return tw.Flush()
}

func extJSON(doc bson.D) string {
	if doc == nil {
		return "-"
	}
	out, err := bson.MarshalExtJSON(doc, false, false)
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return string(out)
}

func limitString(limit int64) string {
	if limit <= 0 {
		return "-"
	}
	return fmt.Sprint(limit)
}
