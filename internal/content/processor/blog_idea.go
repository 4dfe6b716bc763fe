package processor

import (
	"context"
	"errors"
	"strings"

	"marketing-server/internal/analysis/normalize"
	"marketing-server/internal/observability"
	"marketing-server/internal/store"

	"github.com/google/uuid"
)

// PublishedIdea is the history row and the draft created from its article
type PublishedIdea struct {
	Idea    store.BlogIdea    `json:"idea"`
	Content store.ContentItem `json:"content"`
}

// RejectIdea records an idea the user does not want suggested again
func (p *ContentProcessor) RejectIdea(ctx context.Context, userID uuid.UUID, idea normalize.BlogIdea, reason *string) (store.BlogIdea, error) {
	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return store.BlogIdea{}, err
	}

	if reason != nil && strings.TrimSpace(*reason) == "" {
		reason = nil
	}

	params := ideaParams(company.ID, idea)
	params.Status = store.BlogIdeaStatusRejected
	params.Reason = reason

	rejected, err := p.store.CreateBlogIdea(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to record rejected blog idea", err)
		return store.BlogIdea{}, persistenceFailed(err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "blog_idea_id", Value: rejected.ID.String()})
	p.logger.Info(ctx, "blog idea rejected")
	return rejected, nil
}

func (p *ContentProcessor) ListRejectedIdeas(ctx context.Context, userID uuid.UUID) ([]store.BlogIdea, error) {
	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return nil, err
	}

	ideas, err := p.store.GetBlogIdeasByStatus(ctx, company.ID, store.BlogIdeaStatusRejected)
	if err != nil {
		p.logger.Error(ctx, "failed to list rejected blog ideas", err)
		return nil, err
	}
	return ideas, nil
}

// PublishIdea records the idea as published and turns its article into a draft content item.
func (p *ContentProcessor) PublishIdea(ctx context.Context, userID uuid.UUID, idea normalize.BlogIdea, article normalize.Article) (PublishedIdea, error) {
	if strings.TrimSpace(article.Content) == "" {
		return PublishedIdea{}, ErrArticleRequired
	}

	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return PublishedIdea{}, err
	}

	keywords := article.Keywords
	if len(keywords) == 0 {
		keywords = idea.Keywords
	}

	params := ideaParams(company.ID, idea)
	params.Status = store.BlogIdeaStatusPublished

	published, item, err := p.store.PublishBlogIdea(ctx, params, store.CreateContentItemParams{
		CompanyID: company.ID,
		Title:     orDefault(article.Title, idea.Title),
		Body:      article.Content,
		Type:      defaultContentType,
		Status:    store.ContentStatusDraft,
		Keywords:  keywords,
		WordCount: normalize.WordCount(article.Content),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to publish blog idea", err)
		return PublishedIdea{}, persistenceFailed(err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "blog_idea_id", Value: published.ID.String()},
		observability.Field{Key: "content_id", Value: item.ID.String()},
	)
	p.logger.Info(ctx, "blog idea published")
	return PublishedIdea{Idea: published, Content: item}, nil
}

// DeleteIdea removes a history row so the idea may be suggested again
func (p *ContentProcessor) DeleteIdea(ctx context.Context, userID, ideaID uuid.UUID) error {
	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return err
	}

	if err := p.store.DeleteBlogIdea(ctx, company.ID, ideaID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrBlogIdeaNotFound
		}
		p.logger.Error(ctx, "failed to delete blog idea", err)
		return persistenceFailed(err)
	}
	return nil
}

func ideaParams(companyID uuid.UUID, idea normalize.BlogIdea) store.CreateBlogIdeaParams {
	seoScore := idea.SEOScore
	if seoScore < 0 || seoScore > 100 {
		seoScore = normalize.DefaultSEOScore
	}
	return store.CreateBlogIdeaParams{
		CompanyID:       companyID,
		Title:           strings.TrimSpace(idea.Title),
		Description:     idea.Description,
		Keywords:        idea.Keywords,
		EstimatedLength: idea.EstimatedLength,
		Difficulty:      idea.Difficulty,
		TargetAudience:  idea.TargetAudience,
		ContentPillars:  idea.ContentPillars,
		SEOScore:        seoScore,
		Rationale:       idea.Rationale,
	}
}
