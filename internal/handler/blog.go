package handler

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/languagebaba/site-api/internal/model"
	"github.com/languagebaba/site-api/internal/repository"
)

type BlogHandler struct {
	Posts    *repository.BlogRepo
	Recorder Recorder
}

func NewBlogHandler(r *repository.BlogRepo, rec Recorder) *BlogHandler {
	return &BlogHandler{Posts: r, Recorder: rec}
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// slugify derives a URL slug from a title when the client did not send
// one explicitly.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

type blogReq struct {
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Excerpt       string `json:"excerpt"`
	Content       string `json:"content"`
	FeaturedImage string `json:"featured_image"`
	Status        string `json:"status"`
}

// PublicList serves published posts only, newest first.
func (h *BlogHandler) PublicList(c echo.Context) error {
	limit, offset := pagination(c, 10, 50)
	ctx, cancel := dbCtx(c)
	defer cancel()

	posts, err := h.Posts.List(ctx, model.BlogStatusPublished, limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list posts failed"})
	}
	return c.JSON(http.StatusOK, posts)
}

// PublicGet serves a single published post by slug. Drafts and archived
// posts 404 here even when the slug exists.
func (h *BlogHandler) PublicGet(c echo.Context) error {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid slug"})
	}
	ctx, cancel := dbCtx(c)
	defer cancel()

	post, err := h.Posts.GetBySlug(ctx, slug)
	if err != nil {
		return repoError(c, err, "get post failed")
	}
	return c.JSON(http.StatusOK, post)
}

// AdminList returns posts in any status, filterable by ?status=.
func (h *BlogHandler) AdminList(c echo.Context) error {
	limit, offset := pagination(c, 20, 100)
	ctx, cancel := dbCtx(c)
	defer cancel()

	posts, err := h.Posts.List(ctx, strings.TrimSpace(c.QueryParam("status")), limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list posts failed"})
	}
	return c.JSON(http.StatusOK, posts)
}

func (h *BlogHandler) Create(c echo.Context) error {
	var req blogReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = slugify(req.Title)
	}
	status := req.Status
	if status == "" {
		status = model.BlogStatusDraft
	}
	if status != model.BlogStatusDraft && status != model.BlogStatusPublished && status != model.BlogStatusArchived {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	actor, _ := userID(c)
	ctx, cancel := dbCtx(c)
	defer cancel()

	id, err := h.Posts.Create(ctx, model.BlogPost{
		Title:         req.Title,
		Slug:          slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		FeaturedImage: req.FeaturedImage,
		Status:        status,
		AuthorID:      actor,
	})
	if err != nil {
		if err == repository.ErrDuplicate {
			return c.JSON(http.StatusConflict, echo.Map{"error": "slug already exists"})
		}
		return repoError(c, err, "create post failed")
	}
	created, err := h.Posts.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "create post failed")
	}

	record(h.Recorder, c, "blog", "Post created", fmt.Sprintf("created post %q (%s)", created.Title, created.Status), model.SeveritySuccess)
	return c.JSON(http.StatusCreated, created)
}

func (h *BlogHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req blogReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	existing, err := h.Posts.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "get post failed")
	}
	if v := strings.TrimSpace(req.Title); v != "" {
		existing.Title = v
	}
	if v := strings.TrimSpace(req.Slug); v != "" {
		existing.Slug = v
	}
	existing.Excerpt = req.Excerpt
	if req.Content != "" {
		existing.Content = req.Content
	}
	existing.FeaturedImage = req.FeaturedImage
	if req.Status != "" {
		if req.Status != model.BlogStatusDraft && req.Status != model.BlogStatusPublished && req.Status != model.BlogStatusArchived {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
		}
		existing.Status = req.Status
	}

	if err := h.Posts.Update(ctx, existing); err != nil {
		if err == repository.ErrDuplicate {
			return c.JSON(http.StatusConflict, echo.Map{"error": "slug already exists"})
		}
		return repoError(c, err, "update post failed")
	}
	updated, err := h.Posts.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "update post failed")
	}

	record(h.Recorder, c, "blog", "Post updated", fmt.Sprintf("updated post %q", updated.Title), model.SeverityInfo)
	return c.JSON(http.StatusOK, updated)
}

func (h *BlogHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Posts.Delete(ctx, id); err != nil {
		return repoError(c, err, "delete post failed")
	}

	record(h.Recorder, c, "blog", "Post deleted", fmt.Sprintf("deleted post #%d", id), model.SeverityWarning)
	return c.NoContent(http.StatusNoContent)
}
