package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	MemberCookie = "member_id"
	memberKey    = "member_id"
)

// MemberSession picks the acting community member from the member_id cookie.
// ?member=<id> switches member; with neither, defaultID is used. Nothing is
// verified: this is a mock session.
func MemberSession(defaultID string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if ck, err := c.Cookie(MemberCookie); err == nil {
				id = ck.Value
			}
			if q := c.QueryParam("member"); q != "" && q != id {
				id = q
				c.SetCookie(&http.Cookie{Name: MemberCookie, Value: id, Path: "/", HttpOnly: true})
			}
			if id == "" {
				id = defaultID
				c.SetCookie(&http.Cookie{Name: MemberCookie, Value: id, Path: "/", HttpOnly: true})
			}
			c.Set(memberKey, id)
			return next(c)
		}
	}
}

func MemberID(c echo.Context) string {
	id, _ := c.Get(memberKey).(string)
	return id
}
