package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"watchparty/internal/api/httpx"
	"watchparty/internal/api/validate"
	"watchparty/internal/config"
	"watchparty/internal/metrics"
	"watchparty/internal/middleware"
	"watchparty/internal/services"
	"watchparty/internal/web"
)

// wire shapes of the public API
type userResp struct {
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
	APIKey   string `json:"api_key"`
}

type roomResp struct {
	RoomID   int64  `json:"room_id"`
	RoomName string `json:"room_name"`
}

type messageResp struct {
	Message string `json:"message"`
}

func NewRouter(cfg config.Config, us *services.UserService, rs *services.RoomService, ms *services.MessageService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	gate := middleware.NewAPIKeyAuth(us)

	r.Route("/api", func(r chi.Router) {
		// ---------- open ----------
		r.Post("/signup", func(w http.ResponseWriter, r *http.Request) {
			u, err := us.Signup(r.Context())
			if err != nil {
				httpx.WriteError(w, http.StatusInternalServerError, "internal_error", err.Error(), nil)
				return
			}
			httpx.WriteJSON(w, http.StatusOK, userResp{UserID: u.ID, UserName: u.Name, APIKey: u.APIKey})
		})

		r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				UserName string `json:"userName"`
				Password string `json:"password"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil)
				return
			}
			var errs validate.Errs
			if e := validate.Required("userName", req.UserName); e != nil {
				errs = append(errs, *e)
			}
			if e := validate.Required("password", req.Password); e != nil {
				errs = append(errs, *e)
			}
			if len(errs) > 0 {
				httpx.WriteError(w, http.StatusBadRequest, "validation_error", errs.Error(), errs)
				return
			}
			u, err := us.Login(r.Context(), req.UserName, req.Password)
			if errors.Is(err, services.ErrInvalidCredentials) {
				httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", nil)
				return
			}
			if err != nil {
				httpx.WriteError(w, http.StatusInternalServerError, "internal_error", err.Error(), nil)
				return
			}
			httpx.WriteJSON(w, http.StatusOK, userResp{UserID: u.ID, UserName: u.Name, APIKey: u.APIKey})
		})

		// ---------- protected ----------
		r.Group(func(r chi.Router) {
			r.Use(gate.Require)

			r.Post("/user/name", func(w http.ResponseWriter, r *http.Request) {
				user, _ := middleware.CurrentUser(r.Context())
				var req struct {
					NewName string `json:"new_name"`
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil)
					return
				}
				var errs validate.Errs
				if e := validate.Required("new_name", req.NewName); e != nil {
					errs = append(errs, *e)
				}
				if len(errs) > 0 {
					httpx.WriteError(w, http.StatusBadRequest, "validation_error", errs.Error(), errs)
					return
				}
				if err := us.UpdateName(r.Context(), user.ID, req.NewName); err != nil {
					httpx.WriteError(w, http.StatusInternalServerError, "internal_error", err.Error(), nil)
					return
				}
				httpx.WriteJSON(w, http.StatusOK, messageResp{Message: "Username updated successfully"})
			})

			r.Post("/user/password", func(w http.ResponseWriter, r *http.Request) {
				user, _ := middleware.CurrentUser(r.Context())
				var req struct {
					NewPassword string `json:"new_password"`
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil)
					return
				}
				var errs validate.Errs
				if e := validate.Required("new_password", req.NewPassword); e != nil {
					errs = append(errs, *e)
				}
				if len(errs) > 0 {
					httpx.WriteError(w, http.StatusBadRequest, "validation_error", errs.Error(), errs)
					return
				}
				if err := us.UpdatePassword(r.Context(), user.ID, req.NewPassword); err != nil {
					httpx.WriteError(w, http.StatusInternalServerError, "internal_error", err.Error(), nil)
					return
				}
				httpx.WriteJSON(w, http.StatusOK, messageResp{Message: "Password updated successfully"})
			})

			r.Post("/rooms/new", func(w http.ResponseWriter, r *http.Request) {
				rm, err := rs.Create(r.Context())
				if err != nil {
					httpx.WriteError(w, http.StatusInternalServerError, "internal_error", err.Error(), nil)
					return
				}
				httpx.WriteJSON(w, http.StatusOK, struct {
					ID   int64  `json:"id"`
					Name string `json:"name"`
				}{ID: rm.ID, Name: rm.Name})
			})

			r.Get("/rooms", func(w http.ResponseWriter, r *http.Request) {
				rooms, err := rs.List(r.Context())
				if err != nil {
					httpx.WriteError(w, http.StatusInternalServerError, "internal_error", err.Error(), nil)
					return
				}
				out := make([]roomResp, 0, len(rooms))
				for _, rm := range rooms {
					out = append(out, roomResp{RoomID: rm.ID, RoomName: rm.Name})
				}
				httpx.WriteJSON(w, http.StatusOK, out)
			})

			r.Get("/rooms/{roomID}", func(w http.ResponseWriter, r *http.Request) {
				id, err := roomIDParam(r)
				if err != nil {
					httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad room id", nil)
					return
				}
				rm, err := rs.Get(r.Context(), id)
				if errors.Is(err, services.ErrNotFound) {
					httpx.WriteError(w, http.StatusNotFound, "not_found", "room not found", nil)
					return
				}
				if err != nil {
					httpx.WriteError(w, http.StatusInternalServerError, "internal_error", err.Error(), nil)
					return
				}
				httpx.WriteJSON(w, http.StatusOK, roomResp{RoomID: rm.ID, RoomName: rm.Name})
			})

			r.Post("/rooms/name", func(w http.ResponseWriter, r *http.Request) {
				var req struct {
					RoomID  int64  `json:"room_id"`
					NewName string `json:"new_name"`
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil)
					return
				}
				var errs validate.Errs
				if e := validate.MinInt("room_id", req.RoomID, 1); e != nil {
					errs = append(errs, *e)
				}
				if e := validate.Required("new_name", req.NewName); e != nil {
					errs = append(errs, *e)
				}
				if len(errs) > 0 {
					httpx.WriteError(w, http.StatusBadRequest, "validation_error", errs.Error(), errs)
					return
				}
				if err := rs.Rename(r.Context(), req.RoomID, req.NewName); err != nil {
					httpx.WriteError(w, http.StatusInternalServerError, "internal_error", err.Error(), nil)
					return
				}
				httpx.WriteJSON(w, http.StatusOK, messageResp{Message: "Room name updated successfully"})
			})

			r.Get("/rooms/{roomID}/messages", func(w http.ResponseWriter, r *http.Request) {
				id, err := roomIDParam(r)
				if err != nil {
					httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad room id", nil)
					return
				}
				msgs, err := ms.List(r.Context(), id)
				if err != nil {
					httpx.WriteError(w, http.StatusInternalServerError, "internal_error", err.Error(), nil)
					return
				}
				httpx.WriteJSON(w, http.StatusOK, msgs)
			})

			r.Post("/rooms/{roomID}/messages", func(w http.ResponseWriter, r *http.Request) {
				id, err := roomIDParam(r)
				if err != nil {
					httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad room id", nil)
					return
				}
				var req struct {
					UserID int64  `json:"user_id"`
					Body   string `json:"body"`
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil)
					return
				}
				var errs validate.Errs
				if e := validate.MinInt("user_id", req.UserID, 1); e != nil {
					errs = append(errs, *e)
				}
				if e := validate.Required("body", req.Body); e != nil {
					errs = append(errs, *e)
				}
				if len(errs) > 0 {
					httpx.WriteError(w, http.StatusBadRequest, "validation_error", errs.Error(), errs)
					return
				}
				if _, err := ms.Post(r.Context(), id, req.UserID, req.Body); err != nil {
					httpx.WriteError(w, http.StatusInternalServerError, "internal_error", err.Error(), nil)
					return
				}
				httpx.WriteJSON(w, http.StatusOK, messageResp{Message: "Message posted successfully"})
			})
		})
	})

	// UI pages: the SPA is served for every UI route, anything else is the
	// static 404 page.
	for _, p := range []string{"/", "/profile", "/login", "/room", "/room/{id}"} {
		r.Get(p, web.Index)
	}
	r.NotFound(web.NotFound)

	return r
}

func roomIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "roomID"), 10, 64)
}
