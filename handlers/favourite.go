package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starwars-blog/catalogapi/repository"
	"github.com/starwars-blog/catalogapi/validation"
)

var (
	favouritePlanetRequiredFields = []string{"planet_id", "user_id"}
	favouritePeopleRequiredFields = []string{"people_id", "user_id"}
)

type addFavouritePlanetRequest struct {
	PlanetID uint `json:"planet_id" validate:"gt=0"`
	UserID   uint `json:"user_id" validate:"gt=0"`
}

type addFavouritePeopleRequest struct {
	PeopleID uint `json:"people_id" validate:"gt=0"`
	UserID   uint `json:"user_id" validate:"gt=0"`
}

type FavouriteHandler struct {
	Favourites repository.FavouriteRepositoryInterface
	Users      repository.UserRepositoryInterface
	People     repository.PersonRepositoryInterface
	Planets    repository.PlanetRepositoryInterface
}

func (fh *FavouriteHandler) ListFavouritePlanets(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	favourites, err := fh.Favourites.ListPlanetsByUser(r.Context(), uint(userID))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"FavoritePlanets": favourites})
}

func (fh *FavouriteHandler) AddFavouritePlanet(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req addFavouritePlanetRequest
	if err := validation.Bind(r, favouritePlanetRequiredFields, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if uint64(req.UserID) != userID {
		writeError(w, r, identifierMismatch(userID, req.UserID))
		return
	}
	if err := fh.requireExisting(r.Context(), "User", fh.Users.Exists, req.UserID); err != nil {
		writeError(w, r, err)
		return
	}
	if err := fh.requireExisting(r.Context(), "Planet", fh.Planets.Exists, req.PlanetID); err != nil {
		writeError(w, r, err)
		return
	}

	favourite, created, err := fh.Favourites.AddPlanet(r.Context(), req.UserID, req.PlanetID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !created {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"ok":       true,
			"message":  fmt.Sprintf("Planet %d is already a favorite of user %d", req.PlanetID, req.UserID),
			"favorite": favourite,
		})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"ok":       true,
		"message":  fmt.Sprintf("Planet %d added to favorites of user %d", req.PlanetID, req.UserID),
		"favorite": favourite,
	})
}

func (fh *FavouriteHandler) ListFavouritePeople(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	favourites, err := fh.Favourites.ListPeopleByUser(r.Context(), uint(userID))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"Favorite_people": favourites})
}

func (fh *FavouriteHandler) AddFavouritePeople(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req addFavouritePeopleRequest
	if err := validation.Bind(r, favouritePeopleRequiredFields, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if uint64(req.UserID) != userID {
		writeError(w, r, identifierMismatch(userID, req.UserID))
		return
	}
	if err := fh.requireExisting(r.Context(), "User", fh.Users.Exists, req.UserID); err != nil {
		writeError(w, r, err)
		return
	}
	if err := fh.requireExisting(r.Context(), "People", fh.People.Exists, req.PeopleID); err != nil {
		writeError(w, r, err)
		return
	}

	favourite, created, err := fh.Favourites.AddPeople(r.Context(), req.UserID, req.PeopleID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !created {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"ok":       true,
			"message":  fmt.Sprintf("People %d is already a favorite of user %d", req.PeopleID, req.UserID),
			"favorite": favourite,
		})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"ok":       true,
		"message":  fmt.Sprintf("People %d added to favorites of user %d", req.PeopleID, req.UserID),
		"favorite": favourite,
	})
}

// requireExisting turns a missing referenced row into a 404 before the insert
// would trip over the foreign key.
func (fh *FavouriteHandler) requireExisting(ctx context.Context, resource string, exists func(context.Context, uint) (bool, error), id uint) error {
	ok, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound(resource, uint64(id))
	}
	return nil
}

// pathID parses a numeric URL parameter. The routes only match digits, so a
// failure here means the value overflowed and cannot name a stored row.
func pathID(r *http.Request, name string) (uint64, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	if err != nil {
		return 0, &APIError{Status: http.StatusNotFound, Code: CodeNotFound, Message: "Resource not found"}
	}
	return id, nil
}
