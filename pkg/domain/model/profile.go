package model

import (
	"time"

	"github.com/m-mizutani/pagegate/pkg/domain/types"
)

// Profile links a session identity to the upstream account it is authorized
// to act as. The profile store is the single source of this mapping; all
// scanning and mutating operations are scoped to Profile.AccountName.
type Profile struct {
	Identity    types.Identity    `firestore:"identity"`
	AccountName types.AccountName `firestore:"account_name"`
	CreatedAt   time.Time         `firestore:"created_at"`
	UpdatedAt   time.Time         `firestore:"updated_at"`
}
