package ui

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"habitlens/domain/core"
	"habitlens/domain/student"
	"habitlens/internal/errors"
)

// errorResponse is the JSON body of every failed request
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleHealth reports liveness and the loaded row count
func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status": "ok",
		"rows":   a.service.RowCount(),
	})
}

// handleOptions returns the values offered by the three filter controls
func (a *App) handleOptions(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, a.service.Options())
}

// handleDashboard recomputes every output for ?gender=&major=&semester=.
// Absent or empty parameters leave the field unconstrained.
func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r)
	if err != nil {
		a.renderError(w, r, err)
		return
	}

	start := time.Now()
	snapshot, err := a.service.Update(r.Context(), criteria)
	if err != nil {
		a.renderError(w, r, err)
		return
	}
	a.metrics.observeUpdate(criteria, snapshot, time.Since(start))

	// The fingerprint covers the dashboard only, so an unchanged selection
	// revalidates even though each snapshot gets a new ID.
	w.Header().Set("ETag", `"`+snapshot.Fingerprint.String()+`"`)
	if matchesETag(r.Header.Get("If-None-Match"), snapshot.Fingerprint) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	render.JSON(w, r, snapshot)
}

func (a *App) handleNotFound(w http.ResponseWriter, r *http.Request) {
	a.renderError(w, r, errors.NotFound("route "+r.URL.Path))
}

func (a *App) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusMethodNotAllowed)
	render.JSON(w, r, errorResponse{Code: errors.CodeInvalidInput, Message: r.Method + " not allowed"})
}

func matchesETag(header string, fingerprint core.Hash) bool {
	for _, tag := range strings.Split(header, ",") {
		tag = strings.TrimPrefix(strings.TrimSpace(tag), "W/")
		if core.Hash(strings.Trim(tag, `"`)).Equals(fingerprint) {
			return true
		}
	}
	return false
}

// criteriaFromQuery reads the filter parameters. Each may appear at most once.
func criteriaFromQuery(r *http.Request) (student.FilterCriteria, error) {
	query := r.URL.Query()
	values := make(map[string]string, 3)
	for _, key := range []string{student.ColGender, student.ColMajor, student.ColSemester} {
		if len(query[key]) > 1 {
			return student.FilterCriteria{}, errors.InvalidInput(key + " may only be given once")
		}
		values[key] = query.Get(key)
	}
	return student.NewFilterCriteria(values[student.ColGender], values[student.ColMajor], values[student.ColSemester]), nil
}

func (a *App) renderError(w http.ResponseWriter, r *http.Request, err error) {
	a.metrics.observeFailure(errors.GetCode(err))
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[API] %s %s failed: %v", r.Method, r.URL.Path, err)
	}
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Code: errors.GetCode(err), Message: err.Error()})
}
