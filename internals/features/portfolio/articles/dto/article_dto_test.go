package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internals/features/portfolio/articles/model"
	helper "portfolio_backend/internals/helpers"
)

func TestToArticleDetailDTO(t *testing.T) {
	m := model.ArticleModel{
		ArticleID:      uuid.New(),
		ArticleTitle:   "Halo",
		ArticleSlug:    "halo",
		ArticleContent: "# Halo\n\nisi artikel",
	}

	contentHTML, err := helper.RenderMarkdown(m.ArticleContent)
	require.NoError(t, err)

	out := ToArticleDetailDTO(m, contentHTML)
	assert.Equal(t, "halo", out.ArticleSlug)
	assert.Equal(t, m.ArticleContent, out.ArticleContent)
	assert.Contains(t, out.ArticleContentHTML, "<h1>Halo</h1>")
}

func TestFallbackArticlesSlugs(t *testing.T) {
	require.Len(t, FallbackArticles, 2)
	assert.Equal(t, "future-web-dev", FallbackArticles[0].ArticleSlug)
	assert.Equal(t, "mastering-tailwind", FallbackArticles[1].ArticleSlug)
	// urutan terbaru dulu, konsisten dengan list publik
	assert.True(t, FallbackArticles[0].ArticleCreatedAt.After(FallbackArticles[1].ArticleCreatedAt))
}
