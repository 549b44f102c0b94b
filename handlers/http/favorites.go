package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"starwars-api/apierror"
	"starwars-api/entities"
	"starwars-api/usecases"
)

// FavoriteHandler serves the token-protected routes; the caller is always
// the user resolved from the token, never a field in the body.
type FavoriteHandler struct {
	favorites *usecases.FavoriteUseCase
}

func NewFavoriteHandler(favorites *usecases.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

func callerAndID(c *gin.Context) (*entities.User, uint, error) {
	user, ok := CurrentUser(c)
	if !ok {
		return nil, 0, apierror.Unauthorized("Authentication required")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return nil, 0, err
	}
	return user, id, nil
}

// GetMyFavorites handles GET /users/favorites
func (h *FavoriteHandler) GetMyFavorites(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		_ = c.Error(apierror.Unauthorized("Authentication required"))
		return
	}

	favorites, err := h.favorites.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, entities.SerializeFavorites(favorites))
}

// AddPlanet handles POST /favorite/planet/:id
func (h *FavoriteHandler) AddPlanet(c *gin.Context) {
	user, id, err := callerAndID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	favorite, err := h.favorites.AddPlanet(c.Request.Context(), user.ID, id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, favorite.Serialize())
}

// RemovePlanet handles DELETE /favorite/planet/:id
func (h *FavoriteHandler) RemovePlanet(c *gin.Context) {
	user, id, err := callerAndID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.favorites.RemovePlanet(c.Request.Context(), user.ID, id); err != nil {
		_ = c.Error(err)
		return
	}
	noContent(c)
}

// AddPerson handles POST /favorite/people/:id
func (h *FavoriteHandler) AddPerson(c *gin.Context) {
	user, id, err := callerAndID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	favorite, err := h.favorites.AddPerson(c.Request.Context(), user.ID, id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, favorite.Serialize())
}

// RemovePerson handles DELETE /favorite/people/:id
func (h *FavoriteHandler) RemovePerson(c *gin.Context) {
	user, id, err := callerAndID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.favorites.RemovePerson(c.Request.Context(), user.ID, id); err != nil {
		_ = c.Error(err)
		return
	}
	noContent(c)
}
