package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/pagegate/pkg/domain/types"
	"github.com/m-mizutani/pagegate/pkg/infra/bq"
	"github.com/urfave/cli/v3"
)

type BigQuery struct {
	projectID types.GoogleProjectID
	datasetID types.BQDatasetID
	tableID   types.BQTableID
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "BigQuery project ID (optional, scan audit is disabled if not set)",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("PAGEGATE_BIGQUERY_PROJECT_ID"),
			Destination: (*string)(&x.projectID),
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("PAGEGATE_BIGQUERY_DATASET_ID"),
			Destination: (*string)(&x.datasetID),
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "BigQuery table ID for scan audit records",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("PAGEGATE_BIGQUERY_TABLE_ID"),
			Value:       "scan_audits",
			Destination: (*string)(&x.tableID),
		},
	}
}

func (x *BigQuery) Enabled() bool {
	return x.projectID != "" && x.datasetID != ""
}

// NewClient returns nil without error when BigQuery is not configured.
func (x *BigQuery) NewClient(ctx context.Context) (*bq.Client, error) {
	if !x.Enabled() {
		return nil, nil
	}
	return bq.New(ctx, x.projectID, x.datasetID, x.tableID)
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("datasetID", x.datasetID),
		slog.Any("tableID", x.tableID),
	)
}
