package controllers

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"surveyd/internal/models"
	"surveyd/internal/providers"
	"surveyd/internal/services"
	"surveyd/internal/structures"
)

const defaultMaxBodySize = 1 << 20 // 1 MB

type SurveyController struct {
	logger      providers.Logger
	service     services.SurveyServiceInterface
	maxBodySize int64
}

func NewSurveyController(logger providers.Logger, service services.SurveyServiceInterface, conf *structures.Config) *SurveyController {
	maxBodySize := conf.Survey.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = defaultMaxBodySize
	}
	return &SurveyController{
		logger:      logger,
		service:     service,
		maxBodySize: maxBodySize,
	}
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail any    `json:"detail"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// SubmitSurvey maps pipeline outcomes onto the response contract:
// unparseable body 400, field failures 422, durable append 201, anything
// else 500.
func (sc *SurveyController) SubmitSurvey(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, sc.maxBodySize)

	var payload models.SurveySubmission
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		// A wrong-typed known field means the payload itself was a parseable
		// mapping; report it as a field failure rather than invalid_json.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
				Error: "validation_error",
				Detail: models.ValidationErrors{{
					Field:   typeErr.Field,
					Message: typeErr.Field + " must be of type " + typeErr.Type.String(),
				}},
			})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "invalid_json",
			Detail: "Body must be valid JSON",
		})
		return
	}

	meta := structures.RequestMeta{
		RemoteAddr:   r.RemoteAddr,
		ForwardedFor: r.Header.Get("X-Forwarded-For"),
		UserAgent:    r.Header.Get("User-Agent"),
	}

	if _, err := sc.service.Submit(&payload, meta); err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
				Error:  "validation_error",
				Detail: verrs,
			})
			return
		}
		sc.logger.Errorf(providers.TypePost, "Submission failed: %s", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:  "request_failed",
			Detail: "could not persist submission",
		})
		return
	}

	writeJSON(w, http.StatusCreated, statusResponse{Status: "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	gson, err := json.Marshal(body)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}
