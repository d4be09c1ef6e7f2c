// Package api exposes HTTP handlers for the activities service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"example.com/activities/internal/domain"
	"example.com/activities/internal/observability"
)

// Handler coordinates HTTP requests with the activity catalog.
type Handler struct {
	catalog *domain.Catalog
}

// NewHandler builds a Handler.
func NewHandler(catalog *domain.Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/activities", h.listActivities)
	mux.HandleFunc("/activities/", h.activityAction)
	mux.HandleFunc("/healthz", healthz)
	mux.HandleFunc("/", root)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// root redirects the bare path to the static front end. Anything else
// falling through to this pattern is an unknown route.
func root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
		return
	}
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	activities := h.catalog.List()
	out := make(map[string]ActivityView, len(activities))
	for _, activity := range activities {
		out[activity.Name] = toActivityView(activity)
	}
	writeJSON(w, http.StatusOK, out)
}

// activityAction handles POST /activities/{name}/signup and
// POST /activities/{name}/unregister. The activity name arrives
// percent-encoded in the path; the student email rides the query string.
func (h *Handler) activityAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	slash := strings.LastIndex(rest, "/")
	if slash <= 0 {
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
		return
	}
	action := rest[slash+1:]
	if action != "signup" && action != "unregister" {
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
		return
	}

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	// The mux hands us an already percent-decoded path, so activity
	// names with spaces arrive literal here.
	name := rest[:slash]
	if strings.TrimSpace(name) == "" {
		observability.RecordRejection("validation_failed")
		writeError(w, http.StatusBadRequest, "validation_failed", "invalid activity name")
		return
	}

	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		observability.RecordRejection("validation_failed")
		writeError(w, http.StatusBadRequest, "validation_failed", "email query parameter is required")
		return
	}

	switch action {
	case "signup":
		h.signup(w, name, email)
	case "unregister":
		h.unregister(w, name, email)
	}
}

func (h *Handler) signup(w http.ResponseWriter, name, email string) {
	if err := h.catalog.Enroll(name, email); err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			observability.RecordRejection("not_found")
			writeError(w, http.StatusNotFound, "not_found", "Activity not found")
		case errors.Is(err, domain.ErrAlreadyEnrolled):
			observability.RecordRejection("already_enrolled")
			writeError(w, http.StatusBadRequest, "already_enrolled", "Student is already signed up for this activity")
		case errors.Is(err, domain.ErrActivityFull):
			observability.RecordRejection("activity_full")
			writeError(w, http.StatusBadRequest, "activity_full", "Activity is full, no spots available")
		default:
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		}
		return
	}

	if activity, err := h.catalog.Get(name); err == nil {
		observability.RecordSignup(name, len(activity.Participants))
	}
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

func (h *Handler) unregister(w http.ResponseWriter, name, email string) {
	if err := h.catalog.Withdraw(name, email); err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			observability.RecordRejection("not_found")
			writeError(w, http.StatusNotFound, "not_found", "Activity not found")
		case errors.Is(err, domain.ErrNotEnrolled):
			observability.RecordRejection("not_enrolled")
			writeError(w, http.StatusBadRequest, "not_enrolled", "Student is not registered for this activity")
		default:
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		}
		return
	}

	if activity, err := h.catalog.Get(name); err == nil {
		observability.RecordWithdrawal(name, len(activity.Participants))
	}
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// ActivityView is the JSON record exposed per activity.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse confirms a successful signup or unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

func toActivityView(activity domain.Activity) ActivityView {
	return ActivityView{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    activity.Participants,
	}
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
