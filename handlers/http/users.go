package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"starwars-api/entities"
	"starwars-api/usecases"
)

type UserHandler struct {
	users     *usecases.UserUseCase
	favorites *usecases.FavoriteUseCase
}

func NewUserHandler(users *usecases.UserUseCase, favorites *usecases.FavoriteUseCase) *UserHandler {
	return &UserHandler{users: users, favorites: favorites}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, entities.SerializeUsers(users))
}

// GetUser handles GET /user/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user.Serialize())
}

// GetFavoritesByUserID handles GET /users/:id/favorites
func (h *UserHandler) GetFavoritesByUserID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	favorites, err := h.favorites.ListForUser(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, entities.SerializeFavorites(favorites))
}
