package context

import (
	"chatter/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetIdentity stores the verified identity descriptor on the echo context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(KeyIdentity, identity)
}

// GetIdentity extracts the verified identity descriptor set by the auth
// middleware. The second return is false when the route ran without it.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(KeyIdentity).(*entity.Identity)

	return identity, ok
}
