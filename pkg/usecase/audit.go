package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pagegate/pkg/domain/interfaces"
	"github.com/m-mizutani/pagegate/pkg/domain/model"
)

// insertScanAudit records one fleet scan to BigQuery. No-op when the sink is
// not configured.
func (x *UseCase) insertScanAudit(ctx context.Context, audit *model.ScanAudit) error {
	bq := x.clients.BigQuery()
	if bq == nil {
		return nil
	}

	record := &model.ScanAuditRawRecord{
		ScanAudit: *audit,
		Timestamp: audit.Timestamp.UnixMicro(),
	}

	schema, err := createOrUpdateAuditTable(ctx, bq, record)
	if err != nil {
		return err
	}

	if err := bq.Insert(ctx, schema, record); err != nil {
		return goerr.Wrap(err, "failed to insert scan audit to BigQuery")
	}

	return nil
}

func createOrUpdateAuditTable(ctx context.Context, bq interfaces.BigQuery, record *model.ScanAuditRawRecord) (bigquery.Schema, error) {
	schema, err := bqs.Infer(record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer scan audit schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get audit table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create audit table")
		}

		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge audit table schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update audit table")
	}

	return mergedSchema, nil
}
