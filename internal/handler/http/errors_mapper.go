package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/internal/service"
	"github.com/MKhiriev/go-member-portal/internal/utils"
)

// problemClass pairs the HTTP status with the generic title written into the
// problem document. Titles stay short and reveal nothing internal.
type problemClass struct {
	status int
	title  string
}

var errorProblemMap = map[error]problemClass{
	service.ErrInvalidDataProvided:    {http.StatusBadRequest, "invalid data provided"},
	service.ErrInvalidCredentials:     {http.StatusUnauthorized, "invalid credentials"},
	service.ErrAccountLocked:          {http.StatusUnauthorized, "account is temporarily locked"},
	service.ErrEmailNotConfirmed:      {http.StatusUnauthorized, "email address is not confirmed"},
	service.ErrInvalidCode:            {http.StatusBadRequest, "invalid or expired code"},
	service.ErrInvalidToken:           {http.StatusBadRequest, "invalid or expired token"},
	service.ErrUserNotFound:           {http.StatusNotFound, "user was not found"},
	service.ErrEmailAlreadyRegistered: {http.StatusBadRequest, "email is already registered"},
	service.ErrEmailAlreadyConfirmed:  {http.StatusBadRequest, "email is already confirmed"},
	service.ErrSessionNotFound:        {http.StatusUnauthorized, "session is missing or expired"},
	service.ErrInstallerNotAvailable:  {http.StatusNotFound, "installer is not available"},
}

func problemFromError(err error) problemClass {
	for target, class := range errorProblemMap {
		if errors.Is(err, target) {
			return class
		}
	}
	return problemClass{http.StatusInternalServerError, "internal server error"}
}

// writeError renders err as a problem document. Validation failures carry
// their message list; everything unexpected collapses to a generic 500 with
// the detail kept in the log only.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		log.Err(err).Msg("request validation failed")
		_, _ = utils.WriteProblem(w, r, http.StatusBadRequest, "invalid data provided", validationErr.Reasons)
		return
	}

	class := problemFromError(err)
	if class.status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
	} else {
		log.Err(err).Msg(class.title)
	}
	_, _ = utils.WriteProblem(w, r, class.status, class.title, nil)
}

// writeAccountError renders err like writeError but reports an unknown
// account as a plain bad request. The account and code endpoints answer 400
// when the referenced user does not exist; only the session-gated
// projections (manage/info, mypage, download) keep the 404 mapping.
func (h *Handler) writeAccountError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrUserNotFound) {
		logger.FromRequest(r).Err(err).Msg("user was not found")
		_, _ = utils.WriteProblem(w, r, http.StatusBadRequest, "user was not found", nil)
		return
	}
	h.writeError(w, r, err)
}

// writeInvalidJSON is the shared response for undecodable request bodies.
func (h *Handler) writeInvalidJSON(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
	_, _ = utils.WriteProblem(w, r, http.StatusBadRequest, "Invalid JSON was passed", nil)
}
