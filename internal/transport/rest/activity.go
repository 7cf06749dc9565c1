package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kbss-cvut/termit-sub001/internal/domain"
	"github.com/kbss-cvut/termit-sub001/internal/service/activity"
)

type activityService interface {
	FindLastEdited(ctx context.Context, count int) ([]domain.RecentlyModifiedAsset, error)
	FindLastEditedBy(ctx context.Context, user uuid.UUID, count int) ([]domain.RecentlyModifiedAsset, error)
	FindMyLastEdited(ctx context.Context, count int) ([]domain.RecentlyModifiedAsset, error)
	FindLastCommented(ctx context.Context, count int) ([]domain.RecentlyCommentedAsset, error)
	FindMyLastCommented(ctx context.Context, count int) ([]domain.RecentlyCommentedAsset, error)
	FindLastCommentedInReaction(ctx context.Context, count int) ([]domain.RecentlyCommentedAsset, error)
	RecordChange(ctx context.Context, input activity.RecordChangeInput) (*domain.ChangeRecord, error)
	LastModified(ctx context.Context, assetType domain.AssetType) (time.Time, error)
}

// assetCollections maps the plural path segment onto an asset type.
var assetCollections = map[string]domain.AssetType{
	"terms":        domain.AssetTypeTerm,
	"vocabularies": domain.AssetTypeVocabulary,
	"resources":    domain.AssetTypeResource,
}

// ActivityHandler serves the activity feeds and change recording.
type ActivityHandler struct {
	svc          activityService
	defaultLimit int
	log          *slog.Logger
}

// NewActivityHandler creates an ActivityHandler. defaultLimit applies when
// a request has no limit parameter.
func NewActivityHandler(logger *slog.Logger, svc activityService, defaultLimit int) *ActivityHandler {
	return &ActivityHandler{
		svc:          svc,
		defaultLimit: defaultLimit,
		log:          logger.With("handler", "activity"),
	}
}

type recordChangeRequest struct {
	Entity    string `json:"entity"`
	Kind      string `json:"kind"`
	AssetType string `json:"assetType,omitempty"`
}

// LastEdited handles GET /assets/last-edited. forCurrentUserOnly restricts
// the feed to the caller; author restricts it to another user.
func (h *ActivityHandler) LastEdited(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", h.defaultLimit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	mine, err := queryBool(r, "forCurrentUserOnly")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var assets []domain.RecentlyModifiedAsset
	switch author := r.URL.Query().Get("author"); {
	case mine:
		assets, err = h.svc.FindMyLastEdited(r.Context(), limit)
	case author != "":
		id, perr := uuid.Parse(author)
		if perr != nil {
			handleError(h.log, w, r, domain.NewValidationError("author", "must be a UUID"))
			return
		}
		assets, err = h.svc.FindLastEditedBy(r.Context(), id, limit)
	default:
		assets, err = h.svc.FindLastEdited(r.Context(), limit)
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecentlyModifiedDTOs(assets))
}

// LastCommented handles GET /assets/last-commented.
func (h *ActivityHandler) LastCommented(w http.ResponseWriter, r *http.Request) {
	h.commentFeed(w, r, h.svc.FindLastCommented)
}

// MyLastCommented handles GET /assets/last-commented-by-me.
func (h *ActivityHandler) MyLastCommented(w http.ResponseWriter, r *http.Request) {
	h.commentFeed(w, r, h.svc.FindMyLastCommented)
}

// LastCommentedInReaction handles GET /assets/last-commented-in-reaction.
func (h *ActivityHandler) LastCommentedInReaction(w http.ResponseWriter, r *http.Request) {
	h.commentFeed(w, r, h.svc.FindLastCommentedInReaction)
}

func (h *ActivityHandler) commentFeed(
	w http.ResponseWriter,
	r *http.Request,
	find func(context.Context, int) ([]domain.RecentlyCommentedAsset, error),
) {
	limit, err := queryInt(r, "limit", h.defaultLimit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	assets, err := find(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecentlyCommentedDTOs(assets))
}

// RecordChange handles POST /changes.
func (h *ActivityHandler) RecordChange(w http.ResponseWriter, r *http.Request) {
	var req recordChangeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.svc.RecordChange(r.Context(), activity.RecordChangeInput{
		Entity:    req.Entity,
		Kind:      domain.ChangeKind(req.Kind),
		AssetType: domain.AssetType(req.AssetType),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toChangeRecordDTO(rec))
}

// LastModified handles GET /{assets}/last-modified. The timestamp is also
// sent as a Last-Modified header; it is null when nothing has changed yet.
func (h *ActivityHandler) LastModified(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "assets")
	assetType, ok := assetCollections[collection]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown asset collection: "+collection)
		return
	}

	last, err := h.svc.LastModified(r.Context(), assetType)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := lastModifiedDTO{AssetType: assetType.String()}
	if !last.IsZero() {
		ts := formatTime(last)
		resp.LastModified = &ts
		w.Header().Set("Last-Modified", last.UTC().Format(http.TimeFormat))
	}
	writeJSON(w, http.StatusOK, resp)
}
