package controller

import "github.com/labstack/echo/v4"

type CommunityController interface {
	ListPosts(c echo.Context) error
	CreatePost(c echo.Context) error
	Upvote(c echo.Context) error
	Downvote(c echo.Context) error
	Tags(c echo.Context) error
	Contributors(c echo.Context) error
	Guidelines(c echo.Context) error
	Me(c echo.Context) error
}
