package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssetType identifies the kind of asset eligible for the activity feed.
type AssetType string

const (
	AssetTypeTerm       AssetType = "TERM"
	AssetTypeVocabulary AssetType = "VOCABULARY"
	AssetTypeResource   AssetType = "RESOURCE"
)

// AssetTypes lists every asset type in a stable order.
var AssetTypes = []AssetType{AssetTypeResource, AssetTypeTerm, AssetTypeVocabulary}

func (t AssetType) String() string { return string(t) }

func (t AssetType) IsValid() bool {
	switch t {
	case AssetTypeTerm, AssetTypeVocabulary, AssetTypeResource:
		return true
	}
	return false
}

// ChangeKind buckets a change record into creation or modification.
type ChangeKind string

const (
	ChangeKindCreate ChangeKind = "CREATE"
	ChangeKindUpdate ChangeKind = "UPDATE"
)

func (k ChangeKind) String() string { return string(k) }

func (k ChangeKind) IsValid() bool {
	return k == ChangeKindCreate || k == ChangeKindUpdate
}

// ChangeRecord is one row of the append-only change log. Many records may
// reference the same entity.
type ChangeRecord struct {
	ID            uuid.UUID
	ChangedEntity string
	Kind          ChangeKind
	Author        uuid.UUID
	Timestamp     time.Time
}

// RecentlyModifiedAsset is a read-only view of an asset's latest change,
// rebuilt on every query.
type RecentlyModifiedAsset struct {
	URI          string
	Label        string
	Modified     time.Time
	EditorID     uuid.UUID
	Editor       *User
	VocabularyID *string
	Type         AssetType
	ChangeKind   ChangeKind
}
