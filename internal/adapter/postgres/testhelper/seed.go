package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kbss-cvut/termit-sub001/internal/domain"
	"github.com/kbss-cvut/termit-sub001/internal/vocabulary"
)

// UniqueSuffix returns a short unique string for non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// EntityIRI returns a fresh IRI under the test namespace.
func EntityIRI(kind string) string {
	return "http://example.org/" + kind + "/" + UniqueSuffix()
}

// SeedUser inserts a user with a unique username.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := UniqueSuffix()
	user := domain.User{
		ID:        uuid.New(),
		Username:  "user-" + suffix,
		FirstName: "Test",
		LastName:  "User " + suffix,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, first_name, last_name, created_at) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.FirstName, user.LastName, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedTriple inserts one statement. An empty lang stores NULL.
func SeedTriple(t *testing.T, pool *pgxpool.Pool, subject, predicate, object string, isIRI bool, lang string) {
	t.Helper()

	var langArg *string
	if lang != "" {
		langArg = &lang
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO triples (subject, predicate, object, object_is_iri, lang) VALUES ($1, $2, $3, $4, $5)`,
		subject, predicate, object, isIRI, langArg,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTriple: %v", err)
	}
}

// SeedAsset types subject with class and labels it in lang.
func SeedAsset(t *testing.T, pool *pgxpool.Pool, subject, class, labelPredicate, label, lang string) {
	t.Helper()
	SeedTriple(t, pool, subject, vocabulary.RDFType, class, true, "")
	SeedTriple(t, pool, subject, labelPredicate, label, false, lang)
}

// SeedChange appends a change record for entity.
func SeedChange(t *testing.T, pool *pgxpool.Pool, entity string, kind domain.ChangeKind, author uuid.UUID, at time.Time) domain.ChangeRecord {
	t.Helper()

	rec := domain.ChangeRecord{
		ID:            uuid.New(),
		ChangedEntity: entity,
		Kind:          kind,
		Author:        author,
		Timestamp:     at.UTC().Truncate(time.Microsecond),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO change_records (id, changed_entity, change_kind, author_id, created_at) VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, rec.ChangedEntity, string(rec.Kind), rec.Author, rec.Timestamp,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedChange: %v", err)
	}
	return rec
}

// SeedComment inserts a comment on topic. A nil modified stores NULL.
func SeedComment(t *testing.T, pool *pgxpool.Pool, topic string, author uuid.UUID, created time.Time, modified *time.Time) domain.Comment {
	t.Helper()

	c := domain.Comment{
		URI:         EntityIRI("comment"),
		TopicEntity: topic,
		Author:      author,
		Content:     "comment " + UniqueSuffix(),
		Created:     created.UTC().Truncate(time.Microsecond),
	}
	if modified != nil {
		m := modified.UTC().Truncate(time.Microsecond)
		c.Modified = &m
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO comments (id, topic_entity, author_id, content, created, modified) VALUES ($1, $2, $3, $4, $5, $6)`,
		c.URI, c.TopicEntity, c.Author, c.Content, c.Created, c.Modified,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComment: %v", err)
	}
	return c
}
