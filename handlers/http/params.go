package httpHandler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"starwars-api/apierror"
)

func pathID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apierror.BadRequest("invalid " + name + ": " + raw)
	}
	return uint(id), nil
}
