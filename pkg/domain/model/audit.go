package model

import (
	"time"

	"github.com/m-mizutani/pagegate/pkg/domain/types"
)

// ScanAudit is one BigQuery record per fleet scan.
type ScanAudit struct {
	ID            types.AuditID     `json:"id"`
	Timestamp     time.Time         `json:"timestamp"`
	Identity      types.Identity    `json:"identity"`
	Account       types.AccountName `json:"account"`
	TotalRepos    int               `json:"total_repos"`
	SitesFound    int               `json:"sites_found"`
	ProbeFailures int               `json:"probe_failures"`
}

// ScanAuditRawRecord adds a microsecond timestamp column for BigQuery
// partitioning, mirroring the JSON shape of ScanAudit otherwise.
type ScanAuditRawRecord struct {
	ScanAudit
	Timestamp int64 `json:"timestamp"`
}
