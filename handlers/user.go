package handlers

import (
	"net/http"

	"github.com/starwars-blog/catalogapi/repository"
)

type UserHandler struct {
	Users repository.UserRepositoryInterface
}

func (uh *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := uh.Users.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"Users": users})
}
