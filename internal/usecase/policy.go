package usecase

import (
	"github.com/mikiasgoitom/carkenya/internal/domain/apperr"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

// Messages shared by the authorization checks.
const (
	errNotAuthenticated   = "not authenticated"
	errAccountDeactivated = "account is deactivated"
	errAdminRequired      = "admin access required"
)

// requireAuthenticated admits any active caller.
func requireAuthenticated(caller *entity.User) error {
	if caller == nil {
		return apperr.Unauthenticated(errNotAuthenticated)
	}
	if !caller.IsActive {
		return apperr.Forbidden(errAccountDeactivated)
	}
	return nil
}

func requireAdmin(caller *entity.User) error {
	if err := requireAuthenticated(caller); err != nil {
		return err
	}
	if !caller.IsAdmin() {
		return apperr.Forbidden(errAdminRequired)
	}
	return nil
}

// requireOwnerOrAdmin admits the owner of the target entity or any admin.
// deniedMsg is reported when the caller is neither.
func requireOwnerOrAdmin(caller *entity.User, ownerID, deniedMsg string) error {
	if err := requireAuthenticated(caller); err != nil {
		return err
	}
	if caller.IsAdmin() || caller.ID == ownerID {
		return nil
	}
	return apperr.Forbidden(deniedMsg)
}

// viewerOf returns the identity public operations should see. Deactivated
// accounts browse as anonymous.
func viewerOf(caller *entity.User) *entity.User {
	if caller == nil || !caller.IsActive {
		return nil
	}
	return caller
}

func viewerID(caller *entity.User) string {
	if v := viewerOf(caller); v != nil {
		return v.ID
	}
	return ""
}

// internal wraps an infrastructure failure for the caller and logs the cause.
func internal(logger usecasecontract.IAppLogger, what string, err error) error {
	logger.Errorf("%s: %v", what, err)
	return apperr.Internal(what, err)
}
