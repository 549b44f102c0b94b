package httpHandler

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

type Route struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// Routes lists the engine's registered routes ordered by path, then method.
func Routes(engine *gin.Engine) []Route {
	info := engine.Routes()
	routes := make([]Route, 0, len(info))
	for _, r := range info {
		routes = append(routes, Route{Method: r.Method, Path: r.Path})
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
	return routes
}

// Sitemap handles GET / with the map of available routes.
func Sitemap(engine *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"routes": Routes(engine)})
	}
}
