package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/kbss-cvut/termit-sub001/internal/domain"
)

type userDTO struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	FullName  string    `json:"fullName"`
}

type recentlyModifiedDTO struct {
	URI        string   `json:"uri"`
	Label      string   `json:"label"`
	Modified   string   `json:"modified"`
	Editor     *userDTO `json:"editor,omitempty"`
	Vocabulary *string  `json:"vocabulary,omitempty"`
	Type       string   `json:"type"`
	ChangeType string   `json:"changeType"`
}

type commentDTO struct {
	URI      string   `json:"uri"`
	Asset    string   `json:"asset"`
	Author   *userDTO `json:"author,omitempty"`
	Content  string   `json:"content"`
	Created  string   `json:"created"`
	Modified *string  `json:"modified,omitempty"`
}

type recentlyCommentedDTO struct {
	URI           string      `json:"uri"`
	Type          string      `json:"type"`
	LastComment   *commentDTO `json:"lastComment,omitempty"`
	MyLastComment *commentDTO `json:"myLastComment,omitempty"`
}

type changeRecordDTO struct {
	ID         uuid.UUID `json:"id"`
	Entity     string    `json:"entity"`
	ChangeType string    `json:"changeType"`
	Author     uuid.UUID `json:"author"`
	Timestamp  string    `json:"timestamp"`
}

type lastModifiedDTO struct {
	AssetType    string  `json:"assetType"`
	LastModified *string `json:"lastModified"`
}

type facetedResultDTO struct {
	URI   string `json:"uri"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

type fullTextResultDTO struct {
	URI        string  `json:"uri"`
	Label      string  `json:"label"`
	Type       string  `json:"type"`
	Vocabulary *string `json:"vocabulary,omitempty"`
	Score      float64 `json:"score"`
	Snippet    string  `json:"snippet,omitempty"`
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func toUserDTO(u *domain.User) *userDTO {
	if u == nil {
		return nil
	}
	return &userDTO{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
	}
}

func toRecentlyModifiedDTOs(assets []domain.RecentlyModifiedAsset) []recentlyModifiedDTO {
	out := make([]recentlyModifiedDTO, len(assets))
	for i, a := range assets {
		out[i] = recentlyModifiedDTO{
			URI:        a.URI,
			Label:      a.Label,
			Modified:   formatTime(a.Modified),
			Editor:     toUserDTO(a.Editor),
			Vocabulary: a.VocabularyID,
			Type:       a.Type.String(),
			ChangeType: a.ChangeKind.String(),
		}
	}
	return out
}

func toCommentDTO(c *domain.Comment) *commentDTO {
	if c == nil {
		return nil
	}
	dto := &commentDTO{
		URI:     c.URI,
		Asset:   c.TopicEntity,
		Author:  toUserDTO(c.AuthorUser),
		Content: c.Content,
		Created: formatTime(c.Created),
	}
	if c.Modified != nil {
		m := formatTime(*c.Modified)
		dto.Modified = &m
	}
	return dto
}

func toRecentlyCommentedDTOs(assets []domain.RecentlyCommentedAsset) []recentlyCommentedDTO {
	out := make([]recentlyCommentedDTO, len(assets))
	for i, a := range assets {
		out[i] = recentlyCommentedDTO{
			URI:           a.EntityURI,
			Type:          a.Type.String(),
			LastComment:   toCommentDTO(a.LastComment),
			MyLastComment: toCommentDTO(a.MyLastComment),
		}
	}
	return out
}

func toChangeRecordDTO(rec *domain.ChangeRecord) changeRecordDTO {
	return changeRecordDTO{
		ID:         rec.ID,
		Entity:     rec.ChangedEntity,
		ChangeType: rec.Kind.String(),
		Author:     rec.Author,
		Timestamp:  formatTime(rec.Timestamp),
	}
}

func toFacetedResultDTOs(results []domain.FacetedSearchResult) []facetedResultDTO {
	out := make([]facetedResultDTO, len(results))
	for i, r := range results {
		out[i] = facetedResultDTO{URI: r.URI, Label: r.Label, Type: r.Type.String()}
	}
	return out
}

func toFullTextResultDTOs(results []domain.FullTextSearchResult) []fullTextResultDTO {
	out := make([]fullTextResultDTO, len(results))
	for i, r := range results {
		out[i] = fullTextResultDTO{
			URI:        r.URI,
			Label:      r.Label,
			Type:       r.Type.String(),
			Vocabulary: r.Vocabulary,
			Score:      r.Score,
			Snippet:    r.Snippet,
		}
	}
	return out
}
