package config

import (
	"strings"
	"time"

	"github.com/kbss-cvut/termit-sub001/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	Repository RepositoryConfig `yaml:"repository"`
	Activity   ActivityConfig   `yaml:"activity"`
	Search     SearchConfig     `yaml:"search"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds access-token validation settings.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"termit"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RepositoryConfig identifies the classes and predicates that make an
// entity a countable asset, and the language its labels are read in.
type RepositoryConfig struct {
	Language           string `yaml:"language"            env:"REPOSITORY_LANGUAGE"            env-default:"en"`
	LabelPredicatesRaw string `yaml:"label_predicates"    env:"REPOSITORY_LABEL_PREDICATES"    env-default:"http://www.w3.org/2004/02/skos/core#prefLabel,http://purl.org/dc/terms/title"`
	TermType           string `yaml:"term_type"           env:"REPOSITORY_TERM_TYPE"           env-default:"http://www.w3.org/2004/02/skos/core#Concept"`
	VocabularyType     string `yaml:"vocabulary_type"     env:"REPOSITORY_VOCABULARY_TYPE"     env-default:"http://onto.fel.cvut.cz/ontologies/application/termit/pojem/slovnik"`
	ResourceType       string `yaml:"resource_type"       env:"REPOSITORY_RESOURCE_TYPE"       env-default:"http://onto.fel.cvut.cz/ontologies/application/termit/pojem/zdroj"`
	SnapshotType       string `yaml:"snapshot_type"       env:"REPOSITORY_SNAPSHOT_TYPE"       env-default:"http://onto.fel.cvut.cz/ontologies/application/termit/pojem/verze-objektu"`
	InVocabulary       string `yaml:"in_vocabulary"       env:"REPOSITORY_IN_VOCABULARY"       env-default:"http://onto.fel.cvut.cz/ontologies/application/termit/pojem/je-pojmem-ze-slovniku"`

	// LabelPredicates is parsed from LabelPredicatesRaw during validation.
	LabelPredicates []string `yaml:"-" env:"-"`
}

// TypeIRI returns the class IRI configured for the given asset type.
func (r RepositoryConfig) TypeIRI(t domain.AssetType) string {
	switch t {
	case domain.AssetTypeTerm:
		return r.TermType
	case domain.AssetTypeVocabulary:
		return r.VocabularyType
	case domain.AssetTypeResource:
		return r.ResourceType
	}
	return ""
}

// ActivityConfig holds activity feed settings.
type ActivityConfig struct {
	DefaultLimit     int  `yaml:"default_limit"     env:"ACTIVITY_DEFAULT_LIMIT"     env-default:"10"`
	MaxLimit         int  `yaml:"max_limit"         env:"ACTIVITY_MAX_LIMIT"         env-default:"100"`
	SnapshotReads    bool `yaml:"snapshot_reads"    env:"ACTIVITY_SNAPSHOT_READS"    env-default:"false"`
	HydrationWorkers int  `yaml:"hydration_workers" env:"ACTIVITY_HYDRATION_WORKERS" env-default:"4"`
}

// SearchConfig holds search settings.
type SearchConfig struct {
	// FTSTemplatePath overrides the embedded full-text query template.
	FTSTemplatePath string `yaml:"fts_template_path" env:"SEARCH_FTS_TEMPLATE_PATH"`
	DefaultPageSize int    `yaml:"default_page_size" env:"SEARCH_DEFAULT_PAGE_SIZE" env-default:"20"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// ParseList splits a comma-separated list, trimming blanks.
// An empty string returns a nil slice.
func ParseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
