package config

import (
	"fmt"
	"strings"
)

// Validate checks cross-field rules and fills derived fields.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Repository.validate(); err != nil {
		return fmt.Errorf("repository: %w", err)
	}
	if err := c.Activity.validate(); err != nil {
		return fmt.Errorf("activity: %w", err)
	}
	if c.Search.DefaultPageSize <= 0 {
		return fmt.Errorf("search: default_page_size must be > 0 (got %d)", c.Search.DefaultPageSize)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics: path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (r *RepositoryConfig) validate() error {
	if strings.TrimSpace(r.Language) == "" {
		return fmt.Errorf("language must not be empty")
	}

	r.LabelPredicates = ParseList(r.LabelPredicatesRaw)
	if len(r.LabelPredicates) == 0 {
		return fmt.Errorf("label_predicates must name at least one predicate")
	}

	required := map[string]string{
		"term_type":       r.TermType,
		"vocabulary_type": r.VocabularyType,
		"resource_type":   r.ResourceType,
		"snapshot_type":   r.SnapshotType,
		"in_vocabulary":   r.InVocabulary,
	}
	for name, v := range required {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	return nil
}

func (a *ActivityConfig) validate() error {
	if a.DefaultLimit <= 0 {
		return fmt.Errorf("default_limit must be > 0 (got %d)", a.DefaultLimit)
	}
	if a.MaxLimit < a.DefaultLimit {
		return fmt.Errorf("max_limit must be >= default_limit (got %d < %d)", a.MaxLimit, a.DefaultLimit)
	}
	if a.HydrationWorkers <= 0 {
		return fmt.Errorf("hydration_workers must be > 0 (got %d)", a.HydrationWorkers)
	}
	return nil
}
