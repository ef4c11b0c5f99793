package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// CreateFilm handles POST /api/films
func (h *CatalogHandler) CreateFilm(w http.ResponseWriter, r *http.Request) {
	var req request.FilmRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	film, err := h.service.CreateFilm(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create film")
		return
	}

	utils.ResponseCreated(w, "Film created successfully", film)
}

// GetFilms handles GET /api/films with optional title/genre filters
func (h *CatalogHandler) GetFilms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if term := query.Get("title"); term != "" {
		films, err := h.service.SearchFilms(r.Context(), term)
		if err != nil {
			handleServiceError(h.log, w, err, "search films")
			return
		}
		utils.ResponseSuccess(w, "Films retrieved successfully", films)
		return
	}

	if genre := query.Get("genre"); genre != "" {
		films, err := h.service.GetFilmsByGenre(r.Context(), genre)
		if err != nil {
			handleServiceError(h.log, w, err, "get films by genre")
			return
		}
		utils.ResponseSuccess(w, "Films retrieved successfully", films)
		return
	}

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	films, err := h.service.GetFilms(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get films")
		return
	}

	utils.ResponseSuccess(w, "Films retrieved successfully", films)
}

// GetFilmByID handles GET /api/films/{id}
func (h *CatalogHandler) GetFilmByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid film ID", nil)
		return
	}

	film, err := h.service.GetFilmByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get film")
		return
	}

	utils.ResponseSuccess(w, "Film retrieved successfully", film)
}

// DeleteFilm handles DELETE /api/films/{id}
func (h *CatalogHandler) DeleteFilm(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid film ID", nil)
		return
	}

	if err := h.service.DeleteFilm(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete film")
		return
	}

	utils.ResponseSuccess(w, "Film deleted successfully", nil)
}

// CreateDirector handles POST /api/directors
func (h *CatalogHandler) CreateDirector(w http.ResponseWriter, r *http.Request) {
	var req request.DirectorRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	director, err := h.service.CreateDirector(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create director")
		return
	}

	utils.ResponseCreated(w, "Director created successfully", director)
}

// GetDirectors handles GET /api/directors
func (h *CatalogHandler) GetDirectors(w http.ResponseWriter, r *http.Request) {
	directors, err := h.service.GetDirectors(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get directors")
		return
	}

	utils.ResponseSuccess(w, "Directors retrieved successfully", directors)
}

// DeleteDirector handles DELETE /api/directors/{id}
func (h *CatalogHandler) DeleteDirector(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid director ID", nil)
		return
	}

	if err := h.service.DeleteDirector(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete director")
		return
	}

	utils.ResponseSuccess(w, "Director deleted successfully", nil)
}
