package generate

import (
	"context"
	"fmt"

	"github.com/fwojciec/blogsmith"
)

// Ensure ArticleService implements blogsmith.ArticleGenerator at compile time.
var _ blogsmith.ArticleGenerator = (*ArticleService)(nil)

// ArticleService drafts article bodies. It never attaches metadata;
// see Drafter for the combined flow.
type ArticleService struct {
	completer blogsmith.Completer
}

// NewArticleService creates a new ArticleService.
func NewArticleService(completer blogsmith.Completer) *ArticleService {
	return &ArticleService{completer: completer}
}

type articleResponse struct {
	Title    *string             `json:"title"`
	Sections []blogsmith.Section `json:"sections"`
}

// GenerateArticle drafts an article for the requested title.
func (s *ArticleService) GenerateArticle(ctx context.Context, req *blogsmith.ArticleRequest) (*blogsmith.Article, error) {
	if req == nil {
		return nil, blogsmith.Errorf(blogsmith.EINVALID, "article request required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp articleResponse
	if err := complete(ctx, s.completer, BuildArticlePrompt(req), &resp); err != nil {
		return nil, fmt.Errorf("generate article: %w", err)
	}
	if resp.Title == nil {
		return nil, blogsmith.Errorf(blogsmith.EMALFORMED, "article response missing title")
	}
	if resp.Sections == nil {
		return nil, blogsmith.Errorf(blogsmith.EMALFORMED, "article response missing sections array")
	}

	article := &blogsmith.Article{
		Title:    *resp.Title,
		Sections: resp.Sections,
	}
	if err := article.Validate(); err != nil {
		return nil, blogsmith.Errorf(blogsmith.EMALFORMED, "invalid article response: %s", blogsmith.ErrorMessage(err))
	}

	return article, nil
}
