package response

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/anastasya/flower-shop/internal/domain"
	"github.com/anastasya/flower-shop/internal/validation"
)

// HandleError is the single funnel for handler failures. Domain errors map to
// their HTTP kind; anything unrecognized is logged and downgraded to a
// generic 500 so internals never reach the client.
func HandleError(w http.ResponseWriter, log *logrus.Logger, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		ValidationError(w, verr.Error())
		return
	}

	switch {
	case errors.Is(err, validation.ErrMalformedBody):
		BadRequest(w, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, domain.ErrAdminSecret):
		Forbidden(w, err.Error())
	case errors.Is(err, domain.ErrEmailExists),
		errors.Is(err, domain.ErrSlugExists),
		errors.Is(err, gorm.ErrDuplicatedKey):
		Conflict(w, messageFor(err, "Resource already exists"))
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrBlogNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(w, messageFor(err, "Resource not found"))
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		BadRequest(w, "Cannot delete: record has related data")
	case errors.Is(err, domain.ErrSelfDelete),
		errors.Is(err, domain.ErrFileMissing),
		errors.Is(err, domain.ErrFileType),
		errors.Is(err, domain.ErrFileTooLarge),
		errors.Is(err, domain.ErrFolderName):
		BadRequest(w, err.Error())
	default:
		if log != nil {
			log.WithError(err).Error("unhandled request error")
		}
		InternalError(w)
	}
}

func messageFor(err error, fallback string) string {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrRecordNotFound) {
		return fallback
	}
	return err.Error()
}
