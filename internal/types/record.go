package types

import "github.com/google/uuid"

// Record is implemented by every persisted dashboard entity so the generic
// repository and the username enrichment can work across all three of them.
type Record interface {
	RecordID() uuid.UUID
	OwnerID() uuid.UUID
}
