package staffauthhandler

import (
	"onboarding-backend/db"
	"onboarding-backend/lib/apperr"
	staffstore "onboarding-backend/lib/staff/store"
	authutils "onboarding-backend/lib/utils/auth-utils"
	authapimodels "onboarding-backend/models/api/auth"
	"time"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Login(data authapimodels.LoginRequest) (response authapimodels.StaffLoginResponse, err error)
}

var Instance Provider

func NewHandler(tokens authutils.TokenIssuer) {
	Instance = NewInstance(staffstore.NewInstance(db.DB), tokens)
}

func NewInstance(store staffstore.Provider, tokens authutils.TokenIssuer) Provider {
	return impl{
		store:  store,
		tokens: tokens,
	}
}

type impl struct {
	store  staffstore.Provider
	tokens authutils.TokenIssuer
}

func (i impl) Login(data authapimodels.LoginRequest) (response authapimodels.StaffLoginResponse, err error) {
	if err = data.Validate(); err != nil {
		return authapimodels.StaffLoginResponse{}, err
	}
	email := data.NormalizedEmail()
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("error finding staff user by email")
		return authapimodels.StaffLoginResponse{}, apperr.NewInternal(err, "Login failed.")
	}
	if user == nil {
		logger.Debug("staff user not found")
		return authapimodels.StaffLoginResponse{}, apperr.NewAuthentication("Invalid credentials.")
	}
	if !authutils.CheckPassword(user.PasswordHash, data.Password) {
		logger.Debug("staff user failed password check")
		return authapimodels.StaffLoginResponse{}, apperr.NewAuthentication("Invalid credentials.")
	}
	token, err := i.tokens.GetToken(user.ID, user.Name, user.Role)
	if err != nil {
		logger.WithError(err).Error("error signing JWT")
		return authapimodels.StaffLoginResponse{}, apperr.NewInternal(err, "Login failed.")
	}
	err = i.store.Update(user.ID, map[string]interface{}{"LastLogin": time.Now()})
	if err != nil {
		logger.
			WithError(err).
			Error("error updating last login date")
	}
	return authapimodels.StaffLoginResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}, nil
}
