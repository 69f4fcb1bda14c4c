package models

import (
	"encoding/json"
	"time"
)

// BinMetadata is the metadata block JSONBin returns next to a record.
type BinMetadata struct {
	ID        string     `json:"id,omitempty"`
	ParentID  string     `json:"parentId,omitempty"`
	Name      string     `json:"name,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	Private   bool       `json:"private"`
}

// BinRecord is the {record, metadata} envelope of JSONBin v3 responses.
type BinRecord struct {
	Record   json.RawMessage `json:"record"`
	Metadata BinMetadata     `json:"metadata"`
}

// BinError is the error body JSONBin returns for non-2xx responses.
type BinError struct {
	Message string `json:"message"`
}

// Bin is a stored document as kept by the bin server.
type Bin struct {
	ID        string
	Owner     string
	Name      string
	Private   bool
	Record    json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}
