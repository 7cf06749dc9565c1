package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kbss-cvut/termit-sub001/internal/dataloader"
	"github.com/kbss-cvut/termit-sub001/internal/domain"
	"github.com/kbss-cvut/termit-sub001/pkg/ctxutil"
)

// FindLastCommented returns up to count assets with their latest comment,
// most recently commented first.
func (s *Service) FindLastCommented(ctx context.Context, count int) ([]domain.RecentlyCommentedAsset, error) {
	if err := s.validateCount(count); err != nil {
		return nil, err
	}

	feed, err := s.comments.FindLastCommented(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("find last commented: %w", err)
	}
	return s.hydrateFeed(ctx, feed)
}

// FindMyLastCommented is FindLastCommented restricted to assets the
// authenticated user has edited.
func (s *Service) FindMyLastCommented(ctx context.Context, count int) ([]domain.RecentlyCommentedAsset, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := s.validateCount(count); err != nil {
		return nil, err
	}

	feed, err := s.comments.FindMyLastCommented(ctx, userID, count)
	if err != nil {
		return nil, fmt.Errorf("find my last commented: %w", err)
	}
	return s.hydrateFeed(ctx, feed)
}

// FindLastCommentedInReaction returns assets where someone commented after
// the authenticated user's own latest comment. Each item carries both the
// latest comment and the user's.
func (s *Service) FindLastCommentedInReaction(ctx context.Context, count int) ([]domain.RecentlyCommentedAsset, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := s.validateCount(count); err != nil {
		return nil, err
	}

	feed, err := s.comments.FindLastCommentedInReaction(ctx, userID, count)
	if err != nil {
		return nil, fmt.Errorf("find last commented in reaction: %w", err)
	}
	return s.hydrateFeed(ctx, feed)
}

// hydrateFeed loads the comments a feed refers to and their authors. A
// comment deleted since the feed was read stays nil.
func (s *Service) hydrateFeed(ctx context.Context, feed []domain.RecentlyCommentedAsset) ([]domain.RecentlyCommentedAsset, error) {
	if len(feed) == 0 {
		return []domain.RecentlyCommentedAsset{}, nil
	}

	loaders := dataloader.For(ctx, s.lookups)

	ids := make([]string, 0, 2*len(feed))
	for _, item := range feed {
		ids = append(ids, item.LastCommentURI)
		if item.MyLastCommentURI != nil {
			ids = append(ids, *item.MyLastCommentURI)
		}
	}

	comments, errs := loaders.CommentByID.LoadMany(ctx, ids)()
	if err := firstError(errs); err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}

	var authors []uuid.UUID
	for _, c := range comments {
		if c != nil {
			authors = append(authors, c.Author)
		}
	}
	byAuthor := make(map[uuid.UUID]*domain.User, len(authors))
	if len(authors) > 0 {
		users, errs := loaders.UserByID.LoadMany(ctx, authors)()
		if err := firstError(errs); err != nil {
			return nil, fmt.Errorf("load comment authors: %w", err)
		}
		for _, u := range users {
			if u != nil {
				byAuthor[u.ID] = u
			}
		}
	}

	next := 0
	take := func() *domain.Comment {
		c := comments[next]
		next++
		if c == nil {
			return nil
		}
		withAuthor := *c
		withAuthor.AuthorUser = byAuthor[c.Author]
		return &withAuthor
	}

	for i := range feed {
		feed[i].LastComment = take()
		if feed[i].MyLastCommentURI != nil {
			feed[i].MyLastComment = take()
		}
	}
	return feed, nil
}
