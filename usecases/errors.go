package usecases

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"starwars-api/apierror"
	"starwars-api/auth"
)

var (
	ErrUserNotFound       = apierror.NotFound("User not found")
	ErrPlanetNotFound     = apierror.NotFound("Planet not found")
	ErrPersonNotFound     = apierror.NotFound("Person not found")
	ErrFavoriteNotFound   = apierror.NotFound("Favorite not found")
	ErrNoFavorites        = apierror.NotFound("Favorites not found for user")
	ErrMissingCredentials = apierror.BadRequest("username and password are required")
	ErrInvalidCredentials = apierror.Unauthorized("Invalid username or password")
	ErrUsernameTaken      = apierror.Conflict("Username already exists")
	ErrFavoriteExists     = apierror.Conflict("Favorite already exists")
	ErrPasswordTooLong    = apierror.BadRequest(fmt.Sprintf("password must be at most %d bytes", auth.MaxPasswordBytes))
)

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isDuplicate reports a unique index violation that lost a race with the pre-check.
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// normalizeUsername is applied on every path that stores or looks up a username.
func normalizeUsername(username string) string {
	return strings.TrimSpace(username)
}
