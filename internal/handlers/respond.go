package handlers

import (
	"errors"

	"github.com/madome/auth-core/internal/apperr"
	"github.com/madome/auth-core/internal/utils"
	"github.com/madome/auth-core/pkg"
)

// RespondError writes a domain error to the HTTP response using the wire shape
// {"kind": ..., "message": ...} and logs it if (and only if) it is internal —
// per the propagation policy, 4xx responses are not logged here since
// request-level trace middleware already records them.
func RespondError(wr *utils.HttpWriter, logger *pkg.Logger, err error) {
	var aerr *apperr.Error
	if !errors.As(err, &aerr) {
		aerr = apperr.AsInternal(err)
	}

	if aerr.Kind == apperr.Internal {
		logger.Error("internal error", "err", aerr.Error())
	}

	wr.KindError(aerr.Kind.Status(), string(aerr.Kind), aerr.Message)
}
