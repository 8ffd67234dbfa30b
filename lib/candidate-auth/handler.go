package candidateauthhandler

import (
	"onboarding-backend/db"
	"onboarding-backend/lib/apperr"
	candidatestore "onboarding-backend/lib/candidate/store"
	authutils "onboarding-backend/lib/utils/auth-utils"
	"onboarding-backend/models"
	authapimodels "onboarding-backend/models/api/auth"
	dbmodels "onboarding-backend/models/db"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// Login signs a candidate in, creating an empty application on first use.
	Login(data authapimodels.LoginRequest) (response authapimodels.CandidateLoginResponse, created bool, err error)
}

var Instance Provider

func NewHandler(tokens authutils.TokenIssuer) {
	Instance = NewInstance(candidatestore.NewInstance(db.DB), tokens)
}

func NewInstance(store candidatestore.Provider, tokens authutils.TokenIssuer) Provider {
	return impl{
		store:  store,
		tokens: tokens,
	}
}

type impl struct {
	store  candidatestore.Provider
	tokens authutils.TokenIssuer
}

func (i impl) Login(data authapimodels.LoginRequest) (response authapimodels.CandidateLoginResponse, created bool, err error) {
	if err = data.Validate(); err != nil {
		return authapimodels.CandidateLoginResponse{}, false, err
	}
	email := data.NormalizedEmail()
	logger := log.WithField("email", email)

	rec, err := i.store.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("error finding candidate by email")
		return authapimodels.CandidateLoginResponse{}, false, apperr.NewInternal(err, "Candidate login failed.")
	}
	if rec == nil {
		rec, created, err = i.register(email, data.Password)
		if err != nil {
			logger.
				WithError(err).
				Error("error creating candidate account")
			return authapimodels.CandidateLoginResponse{}, false, apperr.NewInternal(err, "Candidate login failed.")
		}
	}
	if !created && !authutils.CheckPassword(rec.PasswordHash, data.Password) {
		logger.Debug("candidate failed password check")
		return authapimodels.CandidateLoginResponse{}, false, apperr.NewAuthentication("Invalid credentials.")
	}

	token, err := i.tokens.GetToken(rec.ID, rec.FullName, models.CandidateRole)
	if err != nil {
		logger.WithError(err).Error("error signing JWT")
		return authapimodels.CandidateLoginResponse{}, false, apperr.NewInternal(err, "Candidate login failed.")
	}
	if created {
		logger.
			WithField("candidate_id", rec.ID).
			Info("candidate account created")
	}
	return authapimodels.CandidateLoginResponse{
		ID:       rec.ID,
		Email:    rec.Email,
		FullName: rec.FullName,
		Status:   rec.DeriveStatus(),
		Token:    token,
	}, created, nil
}

// register creates the shell record; a concurrent first sign-in that won the unique
// email race is returned as an existing account.
func (i impl) register(email, password string) (*dbmodels.Candidate, bool, error) {
	passwordHash, err := authutils.HashPassword(password)
	if err != nil {
		return nil, false, err
	}
	rec := dbmodels.Candidate{
		Email:        email,
		PasswordHash: passwordHash,
		Status:       models.CandidateStatusPending,
		Documents:    []string{},
	}
	id, createErr := i.store.Create(rec)
	if createErr == nil {
		rec.ID = id
		return &rec, true, nil
	}
	existing, err := i.store.FindByEmail(email)
	if err != nil || existing == nil {
		return nil, false, createErr
	}
	return existing, false, nil
}
