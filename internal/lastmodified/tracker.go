// Package lastmodified caches the newest change time per asset type.
// Values are loaded from the change log on demand and reloaded when a
// change event arrives on the event bus.
package lastmodified

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/kbss-cvut/termit-sub001/internal/domain"
	"github.com/kbss-cvut/termit-sub001/internal/eventbus"
)

const (
	unset    int64 = -1
	noChange int64 = 0
)

type changeLog interface {
	LastModified(ctx context.Context, assetType domain.AssetType) (time.Time, error)
}

// Tracker holds one atomic timestamp per asset type.
type Tracker struct {
	log    *slog.Logger
	source changeLog
	values map[domain.AssetType]*atomic.Int64
}

// New creates a Tracker with every value unset.
func New(log *slog.Logger, source changeLog) *Tracker {
	values := make(map[domain.AssetType]*atomic.Int64, len(domain.AssetTypes))
	for _, t := range domain.AssetTypes {
		v := &atomic.Int64{}
		v.Store(unset)
		values[t] = v
	}
	return &Tracker{
		log:    log.With("component", "lastmodified"),
		source: source,
		values: values,
	}
}

// Get returns the newest change time for assetType, loading it from the
// change log when no value is cached. The zero time means no change exists.
func (t *Tracker) Get(ctx context.Context, assetType domain.AssetType) (time.Time, error) {
	v, err := t.value(assetType)
	if err != nil {
		return time.Time{}, err
	}
	if n := v.Load(); n != unset {
		return decode(n), nil
	}
	return t.Refresh(ctx, assetType)
}

// Refresh reloads the value for assetType from the change log.
func (t *Tracker) Refresh(ctx context.Context, assetType domain.AssetType) (time.Time, error) {
	v, err := t.value(assetType)
	if err != nil {
		return time.Time{}, err
	}

	last, err := t.source.LastModified(ctx, assetType)
	if err != nil {
		return time.Time{}, fmt.Errorf("refresh last modified %s: %w", assetType, err)
	}

	advance(v, encode(last))
	return decode(v.Load()), nil
}

// HandleEvent implements eventbus.Handler. A recorded change reloads every
// asset type from the change log, because the store decides which type the
// changed entity has. Reloaded values replace cached ones outright. A type
// that fails to reload is dropped so the next Get reads the log again.
func (t *Tracker) HandleEvent(ctx context.Context, evt eventbus.Event) error {
	if evt.Type != eventbus.ChangeRecorded {
		return nil
	}

	var errs []error
	for _, assetType := range domain.AssetTypes {
		v := t.values[assetType]
		last, err := t.source.LastModified(ctx, assetType)
		if err != nil {
			v.Store(unset)
			errs = append(errs, fmt.Errorf("reload last modified %s: %w", assetType, err))
			continue
		}
		v.Store(encode(last))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	t.log.DebugContext(ctx, "reloaded after change", slog.String("entity", evt.Entity))
	return nil
}

func (t *Tracker) value(assetType domain.AssetType) (*atomic.Int64, error) {
	v, ok := t.values[assetType]
	if !ok {
		return nil, domain.NewValidationError("asset_type", "unknown asset type")
	}
	return v, nil
}

// advance stores next unless a newer value is already present. An unset
// value is always replaced.
func advance(v *atomic.Int64, next int64) {
	for {
		cur := v.Load()
		if (cur != unset && next <= cur) || v.CompareAndSwap(cur, next) {
			return
		}
	}
}

func encode(at time.Time) int64 {
	if at.IsZero() {
		return noChange
	}
	return at.UnixNano()
}

func decode(n int64) time.Time {
	if n == noChange {
		return time.Time{}
	}
	return time.Unix(0, n).UTC()
}
