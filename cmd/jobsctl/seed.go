package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/dataset"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/domain/job/providers/document"
	storage "github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/storage/neo4j"
	n4j "github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/neo4j"
)

func init() {
	f := seedCmd.Flags()
	f.String("dir", "", "directory holding <region>.json datasets (default: embedded)")
	f.String("neo4j-uri", "", "Neo4j URI (env NEO4J_URI)")
	f.String("neo4j-username", "", "Neo4j username (env NEO4J_USERNAME)")
	f.String("neo4j-password", "", "Neo4j password (env NEO4J_PASSWORD)")
	f.String("neo4j-database", "", "Neo4j database (env NEO4J_DATABASE)")
	f.Duration("timeout", time.Minute, "overall import timeout")

	_ = settings.BindPFlag("dataset_dir", f.Lookup("dir"))
	_ = settings.BindPFlag("neo4j_uri", f.Lookup("neo4j-uri"))
	_ = settings.BindPFlag("neo4j_username", f.Lookup("neo4j-username"))
	_ = settings.BindPFlag("neo4j_password", f.Lookup("neo4j-password"))
	_ = settings.BindPFlag("neo4j_database", f.Lookup("neo4j-database"))

	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed-graph [region...]",
	Short: "Import regional datasets into the Neo4j graph",
	Long: `Reads each region's JSON dataset, drops records the normalizer would
quarantine, and replaces the region's listing in Neo4j so the server can run
with DATASET_SOURCE=graph.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		regions := domain.Regions()
		if len(args) > 0 {
			regions = regions[:0]
			for _, a := range args {
				r, ok := domain.ParseRegion(a)
				if !ok {
					return fmt.Errorf("unsupported region %q", a)
				}
				regions = append(regions, r)
			}
		}

		timeout, _ := cmd.Flags().GetDuration("timeout")
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		var fsys fs.FS = dataset.FS
		if dir := settings.GetString("dataset_dir"); dir != "" {
			fsys = os.DirFS(dir)
		}
		source, err := document.NewProvider(fsys)
		if err != nil {
			return err
		}

		client, err := n4j.NewClient(ctx, n4j.Config{
			URI:      settings.GetString("neo4j_uri"),
			Username: settings.GetString("neo4j_username"),
			Password: settings.GetString("neo4j_password"),
			Database: settings.GetString("neo4j_database"),
		})
		if err != nil {
			return err
		}
		defer func() { _ = client.Close(context.Background()) }()

		repo := storage.NewDatasetRepository(client)
		logger := newLogger().Named("seed")
		out := cmd.OutOrStdout()

		for _, r := range regions {
			raws, err := source.FetchRaw(ctx, r)
			if err != nil {
				return err
			}

			valid := raws[:0]
			for _, raw := range raws {
				if err := job.Validate(raw); err != nil {
					logger.Warn("skipping malformed record", "region", r, "id", raw.ID, "err", err)
					continue
				}
				valid = append(valid, raw)
			}

			if err := repo.ImportRaw(ctx, r, valid); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: imported %d of %d records\n", r, len(valid), len(raws))
		}
		return nil
	},
}
