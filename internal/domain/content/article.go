package content

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Kind distinguishes blog posts from case studies.
type Kind string

const (
	KindBlog      Kind = "blog"
	KindCaseStudy Kind = "case_study"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Article is a markdown document published on the platform.
type Article struct {
	ID        uint
	AuthorID  uint
	Kind      Kind
	Slug      string
	Title     string
	Body      string // markdown source
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewArticle(authorID uint, kind Kind, title, body string) (*Article, error) {
	if kind != KindBlog && kind != KindCaseStudy {
		return nil, fmt.Errorf("unknown article kind %q", kind)
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	now := time.Now().UTC()
	return &Article{
		AuthorID:  authorID,
		Kind:      kind,
		Slug:      Slugify(title),
		Title:     title,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Slugify turns a title into a URL-safe slug.
func Slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// Repository persists articles. Lookups return (nil, nil) when absent.
type Repository interface {
	Create(ctx context.Context, a *Article) error
	Update(ctx context.Context, a *Article) error
	GetBySlug(ctx context.Context, slug string) (*Article, error)
	List(ctx context.Context, kind Kind, publishedOnly bool, page, pageSize int) ([]*Article, int64, error)
}
