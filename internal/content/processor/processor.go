package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketing-server/internal/observability"
	"marketing-server/internal/store"

	"github.com/google/uuid"
)

// Store defines the database operations required by ContentProcessor
type Store interface {
	GetCompanyByUserID(ctx context.Context, userID uuid.UUID) (store.Company, error)
	CreateContentItem(ctx context.Context, params store.CreateContentItemParams) (store.ContentItem, error)
	GetContentItemByID(ctx context.Context, companyID, itemID uuid.UUID) (store.ContentItem, error)
	GetContentItemsByCompany(ctx context.Context, companyID uuid.UUID) ([]store.ContentItem, error)
	UpdateContentItem(ctx context.Context, companyID, itemID uuid.UUID, params store.UpdateContentItemParams) (store.ContentItem, error)
	DeleteContentItem(ctx context.Context, companyID, itemID uuid.UUID) error
	CreateBlogIdea(ctx context.Context, params store.CreateBlogIdeaParams) (store.BlogIdea, error)
	GetBlogIdeasByStatus(ctx context.Context, companyID uuid.UUID, status store.BlogIdeaStatus) ([]store.BlogIdea, error)
	DeleteBlogIdea(ctx context.Context, companyID, ideaID uuid.UUID) error
	PublishBlogIdea(ctx context.Context, idea store.CreateBlogIdeaParams, item store.CreateContentItemParams) (store.BlogIdea, store.ContentItem, error)
}

var (
	ErrCompanyNotFound   = errors.New("company not found")
	ErrContentNotFound   = errors.New("content item not found")
	ErrBlogIdeaNotFound  = errors.New("blog idea not found")
	ErrInvalidStatus     = errors.New("invalid content status")
	ErrArticleRequired   = errors.New("article content is required to publish")
	ErrPersistenceFailed = errors.New("failed to persist content")
)

const defaultContentType = "blog_post"

type ContentProcessor struct {
	store  Store
	logger *observability.Logger
	now    func() time.Time
}

func New(store Store, logger *observability.Logger) ContentProcessor {
	return ContentProcessor{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (p *ContentProcessor) loadCompany(ctx context.Context, userID uuid.UUID) (context.Context, store.Company, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	company, err := p.store.GetCompanyByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ctx, store.Company{}, ErrCompanyNotFound
		}
		p.logger.Error(ctx, "failed to get company", err)
		return ctx, store.Company{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "company_id", Value: company.ID.String()})
	return ctx, company, nil
}

// parseStatus accepts draft, review and published. Empty means draft.
func parseStatus(s string) (store.ContentStatus, error) {
	switch store.ContentStatus(s) {
	case "":
		return store.ContentStatusDraft, nil
	case store.ContentStatusDraft, store.ContentStatusReview, store.ContentStatusPublished:
		return store.ContentStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func persistenceFailed(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
}
