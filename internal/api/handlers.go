// Package api exposes HTTP handlers for the extracurricular service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"example.com/extracurricular/internal/domain"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/activities", h.activities)
	mux.HandleFunc("/activities/", h.rosterAction)
	mux.HandleFunc("/healthz", healthz)
	mux.HandleFunc("/", h.root)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// root redirects the landing page to the static UI.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
		return
	}
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	catalog, err := h.service.ListActivities(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	resp := make(map[string]ActivityView, len(catalog))
	for name, activity := range catalog {
		resp[name] = toActivityView(activity)
	}
	writeJSON(w, http.StatusOK, resp)
}

// rosterAction dispatches /activities/{name}/signup and
// /activities/{name}/unregister. The name segment is taken verbatim from the
// decoded path; matching against the catalog is exact and case-sensitive.
func (h *Handler) rosterAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	slash := strings.LastIndex(rest, "/")
	if slash <= 0 {
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
		return
	}
	name, action := rest[:slash], rest[slash+1:]

	switch action {
	case "signup":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
			return
		}
		h.signup(w, r, name)
	case "unregister":
		if r.Method != http.MethodDelete {
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
			return
		}
		h.unregister(w, r, name)
	default:
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request, name string) {
	email, ok := requireEmail(w, r)
	if !ok {
		return
	}

	activity, err := h.service.Signup(r.Context(), name, email)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activity.Name),
	})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request, name string) {
	email, ok := requireEmail(w, r)
	if !ok {
		return
	}

	activity, err := h.service.Unregister(r.Context(), name, email)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activity.Name),
	})
}

func requireEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_failed", "email query parameter is required")
		return "", false
	}
	return email, true
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Activity not found")
	case errors.Is(err, domain.ErrAlreadySignedUp):
		writeError(w, http.StatusBadRequest, "conflict", "Student is already signed up for this activity")
	case errors.Is(err, domain.ErrNotSignedUp):
		writeError(w, http.StatusBadRequest, "conflict", "Student is not signed up for this activity")
	case errors.Is(err, domain.ErrActivityFull):
		writeError(w, http.StatusBadRequest, "conflict", "Activity is full")
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

// MessageResponse confirms a successful roster mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ActivityView exposes one catalog entry.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

func toActivityView(activity domain.Activity) ActivityView {
	participants := activity.Participants
	if participants == nil {
		participants = []string{}
	}
	return ActivityView{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    participants,
	}
}

// SortedNames returns catalog keys in lexical order, useful for stable logs.
func SortedNames(catalog map[string]domain.Activity) []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
