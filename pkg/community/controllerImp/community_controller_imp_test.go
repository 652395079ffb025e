package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantscan/database"
	"plantscan/entities"
	"plantscan/pkg/community/repositoryImp"
	"plantscan/pkg/community/serviceImp"
	"plantscan/pkg/middleware"
)

func newServer(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Seed(db, database.DefaultPlants(), time.Now()))

	h := New(serviceImp.NewCommunityService(repositoryImp.New(db)))
	e := echo.New()
	g := e.Group("/api/community", middleware.MemberSession(database.CurrentMemberID))
	g.GET("/posts", h.ListPosts)
	g.POST("/posts", h.CreatePost)
	g.POST("/posts/:id/upvote", h.Upvote)
	g.POST("/posts/:id/downvote", h.Downvote)
	g.GET("/tags", h.Tags)
	g.GET("/contributors", h.Contributors)
	g.GET("/guidelines", h.Guidelines)
	g.GET("/me", h.Me)
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestListPostsEndpoint(t *testing.T) {
	rec := do(newServer(t), http.MethodGet, "/api/community/posts?tag=monstera", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count int             `json:"count"`
		Posts []entities.Post `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "4", body.Posts[0].ID)
	assert.Equal(t, "@davidp", body.Posts[0].Author.Username)
	assert.Equal(t, "1 day ago", body.Posts[0].Timestamp)
}

func TestCreatePostEndpoint(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodPost, "/api/community/posts", `{"title":"Repotting a jade","content":"When should I repot?","tags":"jade, repotting"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var p entities.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Alex Green", p.Author.Name)
	assert.Equal(t, []string{"jade", "repotting"}, p.Tags)

	rec = do(e, http.MethodPost, "/api/community/posts", `{"title":"","content":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/api/community/posts", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePostAsOtherMember(t *testing.T) {
	rec := do(newServer(t), http.MethodPost, "/api/community/posts?member=3", `{"title":"Cuttings","content":"Rooted in water"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mike Chen")
}

func TestVoteEndpoints(t *testing.T) {
	e := newServer(t)
	rec := do(e, http.MethodPost, "/api/community/posts/2/upvote", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"upvotes":29`)

	rec = do(e, http.MethodPost, "/api/community/posts/2/downvote", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"downvotes":1`)

	rec = do(e, http.MethodPost, "/api/community/posts/999/upvote", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSideBarEndpoints(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodGet, "/api/community/contributors?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var top []entities.Contributor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &top))
	require.Len(t, top, 2)
	assert.Equal(t, "@mikec", top[0].Username)

	rec = do(e, http.MethodGet, "/api/community/tags", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"watering"`)

	rec = do(e, http.MethodGet, "/api/community/guidelines", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Search before posting")
}

func TestMe(t *testing.T) {
	e := newServer(t)
	rec := do(e, http.MethodGet, "/api/community/me", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"@alexgreen"`)

	rec = do(e, http.MethodGet, "/api/community/me?member=nobody", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
