package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"spotstay/internal/app"
	"spotstay/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	C *app.CommandService
	U *app.UserService
}

// errorBody is the only failure shape clients ever see. No stack traces,
// no query text.
type errorBody struct {
	Message    string            `json:"message"`
	StatusCode int               `json:"statusCode"`
	Errors     map[string]string `json:"errors,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers, tokens domain.TokenManager) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/api", func(api chi.Router) {
		api.Use(Authenticate(tokens))

		api.Route("/spots", func(r chi.Router) {
			r.Get("/", h.listSpots)
			r.With(RequireAuth).Get("/current", h.listOwnSpots)
			r.With(RequireAuth).Post("/", h.createSpot)
			r.Get("/{spotId}", h.getSpot)
			r.Get("/{spotId}/reviews", h.listSpotReviews)
			r.With(RequireAuth).Get("/{spotId}/bookings", h.listSpotBookings)
			r.With(RequireAuth).Post("/{spotId}/reviews", h.createReview)
		})

		api.With(RequireAuth).Delete("/review-images/{imageId}", h.deleteReviewImage)

		api.Post("/users", h.signup)
		api.With(LoginRateLimit(1, 5)).Post("/session", h.login)
		api.With(RequireAuth).Get("/session", h.currentUser)
		api.With(RequireAuth).Delete("/session", h.logout)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Message: message, StatusCode: status})
}

// respondErr maps the domain error taxonomy onto HTTP statuses.
func respondErr(w http.ResponseWriter, err error) {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		writeError(w, http.StatusNotFound, nf.Error())
		return
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, errorBody{
			Message:    ve.Error(),
			StatusCode: http.StatusBadRequest,
			Errors:     ve.Errors,
		})
		return
	}
	switch {
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		log.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func spotID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "spotId"), 10, 64)
}

// ---- spots ----

func (h *Handlers) listSpots(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListSpots(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) listOwnSpots(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := RequesterID(r.Context())
	out, err := h.Q.ListSpotsByOwner(r.Context(), viewerID)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getSpot(w http.ResponseWriter, r *http.Request) {
	id, err := spotID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Spot couldn't be found")
		return
	}
	out, err := h.Q.GetSpotDetail(r.Context(), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) createSpot(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := RequesterID(r.Context())
	var in app.NewSpotInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	created, err := h.C.CreateSpot(r.Context(), viewerID, in)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ---- reviews ----

func (h *Handlers) listSpotReviews(w http.ResponseWriter, r *http.Request) {
	id, err := spotID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Spot couldn't be found")
		return
	}
	out, err := h.Q.ListSpotReviews(r.Context(), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := RequesterID(r.Context())
	id, err := spotID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Spot couldn't be found")
		return
	}
	var in app.NewReviewInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	created, err := h.C.CreateReview(r.Context(), viewerID, id, in)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

// ---- bookings ----

func (h *Handlers) listSpotBookings(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := RequesterID(r.Context())
	id, err := spotID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Spot couldn't be found")
		return
	}
	out, err := h.Q.ListSpotBookings(r.Context(), id, viewerID)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// ---- review images ----

func (h *Handlers) deleteReviewImage(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := RequesterID(r.Context())
	imageID, err := strconv.ParseInt(chi.URLParam(r, "imageId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Review Image couldn't be found")
		return
	}
	if err := h.C.DeleteReviewImage(r.Context(), viewerID, imageID); err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Successfully deleted",
		"statusCode": http.StatusOK,
	})
}

// ---- users & sessions ----

func (h *Handlers) signup(w http.ResponseWriter, r *http.Request) {
	var in app.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	res, err := h.U.Signup(r.Context(), in)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Credential string `json:"credential"`
		Password   string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	res, err := h.U.Login(r.Context(), in.Credential, in.Password)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handlers) currentUser(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := RequesterID(r.Context())
	u, err := h.U.GetUser(r.Context(), viewerID)
	if err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": u})
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.U.Logout(r.Context(), bearerToken(r)); err != nil {
		respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "success"})
}
