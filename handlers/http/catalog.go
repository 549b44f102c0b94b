package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"starwars-api/usecases"
)

type CatalogHandler struct {
	catalog *usecases.CatalogUseCase
}

func NewCatalogHandler(catalog *usecases.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListPlanets handles GET /planets
func (h *CatalogHandler) ListPlanets(c *gin.Context) {
	planets, err := h.catalog.ListPlanets(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, planets)
}

// GetPlanet handles GET /planets/:id
func (h *CatalogHandler) GetPlanet(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	planet, err := h.catalog.GetPlanet(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, planet)
}

// ListPeople handles GET /people
func (h *CatalogHandler) ListPeople(c *gin.Context) {
	people, err := h.catalog.ListPeople(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, people)
}

// GetPerson handles GET /people/:id
func (h *CatalogHandler) GetPerson(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	person, err := h.catalog.GetPerson(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, person)
}
