package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a discussion post attached to an asset.
type Comment struct {
	URI         string
	TopicEntity string
	Author      uuid.UUID
	AuthorUser  *User
	Content     string
	Created     time.Time
	Modified    *time.Time
}

// EffectiveTime is Modified when present, otherwise Created.
func (c Comment) EffectiveTime() time.Time {
	if c.Modified != nil {
		return *c.Modified
	}
	return c.Created
}

// RecentlyCommentedAsset pairs an asset with its latest comment and,
// for the reply feed, the calling user's own latest comment.
type RecentlyCommentedAsset struct {
	EntityURI        string
	LastCommentURI   string
	MyLastCommentURI *string
	Type             AssetType
	LastComment      *Comment
	MyLastComment    *Comment
}
