package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/starwars-blog/catalogapi/models"
	"github.com/starwars-blog/catalogapi/repository"
	"github.com/starwars-blog/catalogapi/validation"
)

var planetRequiredFields = []string{"name", "description", "galaxy", "population", "gravity", "image"}

type createPlanetRequest struct {
	Name        string          `json:"name" validate:"max=120"`
	Description string          `json:"description"`
	Galaxy      string          `json:"galaxy" validate:"max=120"`
	Population  int64           `json:"population" validate:"gte=0"`
	Gravity     validation.Text `json:"gravity" validate:"max=40"`
	Image       string          `json:"image"`
}

type PlanetHandler struct {
	Planets repository.PlanetRepositoryInterface
}

func (ph *PlanetHandler) ListPlanets(w http.ResponseWriter, r *http.Request) {
	planets, err := ph.Planets.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"Planets": planets})
}

func (ph *PlanetHandler) GetPlanet(w http.ResponseWriter, r *http.Request) {
	planetID, err := pathID(r, "planet_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	planet, err := ph.Planets.GetByID(r.Context(), uint(planetID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = notFound("Planet", planetID)
		}
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"Planet": planet})
}

func (ph *PlanetHandler) CreatePlanet(w http.ResponseWriter, r *http.Request) {
	var req createPlanetRequest
	if err := validation.Bind(r, planetRequiredFields, &req); err != nil {
		writeError(w, r, err)
		return
	}

	planet := &models.Planet{
		Name:        req.Name,
		Description: req.Description,
		Galaxy:      req.Galaxy,
		Population:  req.Population,
		Gravity:     req.Gravity.String(),
		Image:       req.Image,
	}
	if err := ph.Planets.Create(r.Context(), planet); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "id": planet.ID})
}
