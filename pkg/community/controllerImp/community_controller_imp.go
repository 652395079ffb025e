package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"plantscan/entities"
	"plantscan/pkg/community/service"
	"plantscan/pkg/logger"
	"plantscan/pkg/middleware"
)

type CommunityCtrl struct{ s service.CommunityService }

func New(s service.CommunityService) *CommunityCtrl { return &CommunityCtrl{s} }

func (h *CommunityCtrl) ListPosts(c echo.Context) error {
	posts, err := h.s.ListPosts(service.PostQuery{
		Q:    c.QueryParam("q"),
		Tag:  c.QueryParam("tag"),
		Sort: c.QueryParam("sort"),
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": len(posts), "posts": posts})
}

func (h *CommunityCtrl) CreatePost(c echo.Context) error {
	var req service.NewPost
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	p, err := h.s.CreatePost(middleware.MemberID(c), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *CommunityCtrl) vote(c echo.Context, fn func(string) (*entities.Post, error)) error {
	p, err := fn(c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *CommunityCtrl) Upvote(c echo.Context) error   { return h.vote(c, h.s.Upvote) }
func (h *CommunityCtrl) Downvote(c echo.Context) error { return h.vote(c, h.s.Downvote) }

func (h *CommunityCtrl) Tags(c echo.Context) error {
	tags, err := h.s.Tags()
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, tags)
}

func (h *CommunityCtrl) Contributors(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.s.Contributors(limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CommunityCtrl) Guidelines(c echo.Context) error {
	return c.JSON(http.StatusOK, h.s.Guidelines())
}

func (h *CommunityCtrl) Me(c echo.Context) error {
	m, err := h.s.Member(middleware.MemberID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *CommunityCtrl) fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidPost):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrPostNotFound), errors.Is(err, service.ErrMemberNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	logger.For("community").
		WithField("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		WithError(err).
		Error("request failed")
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}
