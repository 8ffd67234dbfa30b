package candidatestore

import (
	"onboarding-backend/models"
	dbmodels "onboarding-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (id string, err error)
	Save(rec *dbmodels.Candidate) error
	GetByID(id string) (*dbmodels.Candidate, error)
	GetByIDForUpdate(id string) (*dbmodels.Candidate, error)
	FindByEmail(email string) (*dbmodels.Candidate, error)
	List(filter Filter) ([]dbmodels.Candidate, error)
	// Transaction runs fn against a store bound to a single DB transaction.
	Transaction(fn func(store Provider) error) error
}

type Filter struct {
	ID     string
	Status models.CandidateStatus
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Candidate) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Save(rec *dbmodels.Candidate) error {
	if rec.ID == "" {
		return errors.New("candidate id is not set")
	}
	return i.db.
		Save(rec).
		Error
}

func (i impl) GetByID(id string) (*dbmodels.Candidate, error) {
	return i.first(i.db.Where("id = ?", id))
}

func (i impl) GetByIDForUpdate(id string) (*dbmodels.Candidate, error) {
	tx := i.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id)
	return i.first(tx)
}

func (i impl) FindByEmail(email string) (*dbmodels.Candidate, error) {
	return i.first(i.db.Where("email = ?", email))
}

func (i impl) List(filter Filter) ([]dbmodels.Candidate, error) {
	list := []dbmodels.Candidate{}
	tx := i.db.Model(dbmodels.Candidate{})
	if filter.ID != "" {
		tx = tx.Where("id = ?", filter.ID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	err := tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Transaction(fn func(store Provider) error) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewInstance(tx))
	})
}

func (i impl) first(tx *gorm.DB) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := tx.
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
