package candidate

import (
	"context"
	"fmt"
	"io"
	"onboarding-backend/db"
	"onboarding-backend/lib/apperr"
	candidatestore "onboarding-backend/lib/candidate/store"
	filestorage "onboarding-backend/lib/file-storage"
	"onboarding-backend/models"
	candidateapimodels "onboarding-backend/models/api/candidate"
	dbmodels "onboarding-backend/models/db"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Submit(actor candidateapimodels.Actor, data candidateapimodels.SubmitRequest) (candidateapimodels.CandidateView, error)
	List(filter candidateapimodels.ListFilter) ([]candidateapimodels.CandidateView, error)
	Get(actor candidateapimodels.Actor, id string) (candidateapimodels.CandidateView, error)
	Approve(actor candidateapimodels.Actor, id string, data candidateapimodels.ApproveRequest) (candidateapimodels.CandidateView, error)
	UploadDocument(ctx context.Context, actor candidateapimodels.Actor, id, fileName string, fileReader io.Reader, fileSize int64, contentType string) (string, error)
	GetDocument(ctx context.Context, actor candidateapimodels.Actor, id, fileName string) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(candidatestore.NewInstance(db.DB), filestorage.Instance)
}

func NewInstance(store candidatestore.Provider, fileStorage filestorage.Provider) Provider {
	return &impl{
		store:       store,
		fileStorage: fileStorage,
		now:         time.Now,
	}
}

type impl struct {
	store       candidatestore.Provider
	fileStorage filestorage.Provider
	now         func() time.Time
}

var documentReaders = map[models.UserRole]bool{
	models.CandidateRole: true,
	models.HrRole:        true,
	models.FinanceRole:   true,
	models.AdminRole:     true,
}

func (i impl) Submit(actor candidateapimodels.Actor, data candidateapimodels.SubmitRequest) (candidateapimodels.CandidateView, error) {
	if err := data.Validate(); err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	data = data.Normalized()
	if actor.IsBoundCandidate() {
		data.CandidateID = actor.SubjectID
	}
	logger := log.
		WithField("candidate_id", data.CandidateID).
		WithField("email", data.Email)

	var result dbmodels.Candidate
	err := i.store.Transaction(func(store candidatestore.Provider) error {
		rec, err := i.resolveForSubmit(store, actor, data)
		if err != nil {
			return err
		}
		if err = i.checkEmailOwner(store, rec.ID, data.Email); err != nil {
			return err
		}
		applySubmission(rec, data)
		if err = store.Save(rec); err != nil {
			return apperr.NewInternal(err, "Failed to create candidate.")
		}
		result = *rec
		return nil
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.Internal {
			logger.WithError(err).Error("error saving candidate application")
		}
		return candidateapimodels.CandidateView{}, err
	}
	logger.
		WithField("status", result.Status).
		Info("candidate application submitted")
	return candidateapimodels.CandidateConvert(result, models.CandidateRole), nil
}

// resolveForSubmit finds the record created at sign-in: by id first, then by email.
// A token-bound candidate is never resolved by email.
func (i impl) resolveForSubmit(store candidatestore.Provider, actor candidateapimodels.Actor, data candidateapimodels.SubmitRequest) (*dbmodels.Candidate, error) {
	var rec *dbmodels.Candidate
	var err error
	if data.CandidateID != "" {
		rec, err = store.GetByIDForUpdate(data.CandidateID)
		if err != nil {
			return nil, apperr.NewInternal(err, "Failed to create candidate.")
		}
	}
	if rec == nil && !actor.IsBoundCandidate() {
		found, err := store.FindByEmail(data.Email)
		if err != nil {
			return nil, apperr.NewInternal(err, "Failed to create candidate.")
		}
		if found != nil {
			rec, err = store.GetByIDForUpdate(found.ID)
			if err != nil {
				return nil, apperr.NewInternal(err, "Failed to create candidate.")
			}
		}
	}
	if rec == nil {
		return nil, apperr.NewNotFound("Candidate account not found. Please login first.")
	}
	if !actor.CanAccessCandidate(rec.ID) {
		return nil, apperr.NewAuthorization("Not authorized to update candidate.")
	}
	return rec, nil
}

func (i impl) checkEmailOwner(store candidatestore.Provider, candidateID, email string) error {
	owner, err := store.FindByEmail(email)
	if err != nil {
		return apperr.NewInternal(err, "Failed to create candidate.")
	}
	if owner != nil && owner.ID != candidateID {
		return apperr.NewValidation("Email is already registered to another candidate.")
	}
	return nil
}

func (i impl) List(filter candidateapimodels.ListFilter) ([]candidateapimodels.CandidateView, error) {
	role := filter.Actor.Role
	storeFilter := candidatestore.Filter{}
	switch role {
	case models.CandidateRole:
		candidateID := strings.TrimSpace(filter.CandidateID)
		if candidateID == "" && filter.Actor.IsBoundCandidate() {
			candidateID = filter.Actor.SubjectID
		}
		if candidateID == "" {
			return nil, apperr.NewValidation("Candidate id is required.")
		}
		if !filter.Actor.CanAccessCandidate(candidateID) {
			return nil, apperr.NewAuthorization("Not authorized to view candidate.")
		}
		storeFilter.ID = candidateID
	case models.HrRole:
		storeFilter.Status = models.CandidateStatusPending
	case models.ItRole, models.FinanceRole:
		storeFilter.Status = models.CandidateStatusInProgress
	case models.AdminRole:
	default:
		return nil, apperr.NewAuthorization("Not authorized to view candidates.")
	}

	recList, err := i.store.List(storeFilter)
	if err != nil {
		log.
			WithField("role", role).
			WithError(err).
			Error("error listing candidates")
		return nil, apperr.NewInternal(err, "Failed to fetch candidates.")
	}
	result := make([]candidateapimodels.CandidateView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, candidateapimodels.CandidateConvert(rec, role))
	}
	return result, nil
}

func (i impl) Get(actor candidateapimodels.Actor, id string) (candidateapimodels.CandidateView, error) {
	if !actor.CanAccessCandidate(id) {
		return candidateapimodels.CandidateView{}, apperr.NewAuthorization("Not authorized to view candidate.")
	}
	rec, err := i.getRec(id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	return candidateapimodels.CandidateConvert(*rec, actor.Role), nil
}

func (i impl) Approve(actor candidateapimodels.Actor, id string, data candidateapimodels.ApproveRequest) (candidateapimodels.CandidateView, error) {
	logger := log.
		WithField("candidate_id", id).
		WithField("role", actor.Role)
	var result dbmodels.Candidate
	err := i.store.Transaction(func(store candidatestore.Provider) error {
		rec, err := store.GetByIDForUpdate(id)
		if err != nil {
			return apperr.NewInternal(err, "Failed to update candidate.")
		}
		if rec == nil {
			return apperr.NewNotFound("Candidate not found.")
		}
		updated, err := ApplyApproval(*rec, actor.Role, data, i.now())
		if err != nil {
			return err
		}
		if err = store.Save(&updated); err != nil {
			return apperr.NewInternal(err, "Failed to update candidate.")
		}
		result = updated
		return nil
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.Internal {
			logger.WithError(err).Error("error updating candidate approval")
		} else {
			logger.WithError(err).Debug("candidate approval declined")
		}
		return candidateapimodels.CandidateView{}, err
	}
	logger.
		WithField("status", result.Status).
		Info("candidate approval updated")
	return candidateapimodels.CandidateConvert(result, actor.Role), nil
}

func (i impl) UploadDocument(ctx context.Context, actor candidateapimodels.Actor, id, fileName string, fileReader io.Reader, fileSize int64, contentType string) (string, error) {
	if actor.Role != models.CandidateRole && actor.Role != models.AdminRole {
		return "", apperr.NewAuthorization("Not authorized to upload documents.")
	}
	if !actor.CanAccessCandidate(id) {
		return "", apperr.NewAuthorization("Not authorized to upload documents.")
	}
	if i.fileStorage == nil {
		return "", apperr.NewUnavailable("Document storage is not configured.")
	}
	if _, err := i.getRec(id); err != nil {
		return "", err
	}
	baseName := sanitizeFileName(fileName)
	if baseName == "" {
		return "", apperr.NewValidation("File name is required.")
	}
	name := fmt.Sprintf("%s-%s", uuid.NewString()[:8], baseName)
	err := i.fileStorage.UploadDocument(ctx, id, name, fileReader, fileSize, contentType)
	if err != nil {
		log.
			WithField("candidate_id", id).
			WithField("document", name).
			WithError(err).
			Error("error uploading candidate document")
		return "", apperr.NewInternal(err, "Failed to upload document.")
	}
	return name, nil
}

func (i impl) GetDocument(ctx context.Context, actor candidateapimodels.Actor, id, fileName string) ([]byte, error) {
	if !documentReaders[actor.Role] || !actor.CanAccessCandidate(id) {
		return nil, apperr.NewAuthorization("Not authorized to read documents.")
	}
	if i.fileStorage == nil {
		return nil, apperr.NewUnavailable("Document storage is not configured.")
	}
	if fileName == "" || sanitizeFileName(fileName) != fileName {
		return nil, apperr.NewValidation("Invalid document name.")
	}
	if _, err := i.getRec(id); err != nil {
		return nil, err
	}
	body, err := i.fileStorage.GetDocument(ctx, id, fileName)
	if err != nil {
		if apperr.KindOf(err) == apperr.NotFound {
			return nil, err
		}
		return nil, apperr.NewInternal(err, "Failed to read document.")
	}
	return body, nil
}

func (i impl) getRec(id string) (*dbmodels.Candidate, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, apperr.NewInternal(err, "Failed to fetch candidate.")
	}
	if rec == nil {
		return nil, apperr.NewNotFound("Candidate not found.")
	}
	return rec, nil
}

func sanitizeFileName(fileName string) string {
	name := filepath.Base(strings.TrimSpace(fileName))
	if name == "." || name == "/" || name == ".." {
		return ""
	}
	return strings.ReplaceAll(name, " ", "_")
}
