package types

import "github.com/google/uuid"

type RequestID string

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

type AuditID string

func NewAuditID() AuditID {
	return AuditID(uuid.NewString())
}

func (x AuditID) String() string {
	return string(x)
}
