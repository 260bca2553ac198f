package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/starwars-blog/catalogapi/models"
	"github.com/starwars-blog/catalogapi/repository"
	"github.com/starwars-blog/catalogapi/validation"
)

var personRequiredFields = []string{"name", "age", "gender", "height", "weight", "image", "planet_of_birth"}

type createPersonRequest struct {
	Name          string  `json:"name" validate:"max=120"`
	Age           int     `json:"age" validate:"gte=0"`
	Gender        string  `json:"gender" validate:"max=40"`
	Height        float64 `json:"height" validate:"gte=0"`
	Weight        float64 `json:"weight" validate:"gte=0"`
	Image         string  `json:"image"`
	PlanetOfBirth string  `json:"planet_of_birth" validate:"max=120"`
}

type PersonHandler struct {
	People repository.PersonRepositoryInterface
}

func (ph *PersonHandler) ListPeople(w http.ResponseWriter, r *http.Request) {
	people, err := ph.People.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"People": people})
}

func (ph *PersonHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	personID, err := pathID(r, "people_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	person, err := ph.People.GetByID(r.Context(), uint(personID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = notFound("People", personID)
		}
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"People": person})
}

func (ph *PersonHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req createPersonRequest
	if err := validation.Bind(r, personRequiredFields, &req); err != nil {
		writeError(w, r, err)
		return
	}

	person := &models.Person{
		Name:          req.Name,
		Age:           req.Age,
		Gender:        req.Gender,
		Height:        req.Height,
		Weight:        req.Weight,
		Image:         req.Image,
		PlanetOfBirth: req.PlanetOfBirth,
	}
	if err := ph.People.Create(r.Context(), person); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "id": person.ID})
}
