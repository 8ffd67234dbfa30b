package staffstore

import (
	dbmodels "onboarding-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.StaffUser) (userID string, err error)
	FindByEmail(email string) (*dbmodels.StaffUser, error)
	Update(userID string, updMap map[string]interface{}) error
	Count() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.StaffUser) (userID string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	r, err := i.FindByEmail(rec.Email)
	if err != nil {
		return "", err
	}
	if r != nil {
		return "", errors.Errorf("user %s already exists", rec.Email)
	}
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) FindByEmail(email string) (*dbmodels.StaffUser, error) {
	rec := dbmodels.StaffUser{}
	err := i.db.
		Where("email = ?", email).
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

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.StaffUser{}).
		Where("id = ?", userID).
		Updates(updMap).
		Error
}

func (i impl) Count() (int64, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.StaffUser{}).
		Count(&count).
		Error
	return count, err
}
