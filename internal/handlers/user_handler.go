package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/finboard/finboard/internal/services"
	"github.com/finboard/finboard/internal/utils"
)

// UserHandler serves the admin user listing.
type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/users", h.GetUsers).Methods("GET")
	router.HandleFunc("/me", h.GetCurrentUser).Methods("GET")
}

// GetUsers returns all users without credential fields.
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.GetUsers()
	if err != nil {
		log.Printf("Error fetching users: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

// GetCurrentUser returns the user behind the request's token.
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	username, err := utils.GetUsernameFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.userService.GetUserByUsername(username)
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	user.Password = ""

	writeJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
