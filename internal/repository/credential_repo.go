package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/herupa/herupa-go-api/internal/models"
)

// ErrNoCredential indicates no API key is currently stored.
var ErrNoCredential = errors.New("no credential stored")

// CredentialRepository persists the single provider API key. It is the only
// state the service keeps across restarts.
type CredentialRepository interface {
	Get(ctx context.Context) (string, error)
	Save(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository constructs a credential repository.
func NewCredentialRepository(db *gorm.DB) CredentialRepository {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) Get(ctx context.Context) (string, error) {
	var credential models.Credential
	if err := r.db.WithContext(ctx).Order("id").First(&credential).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNoCredential
		}
		return "", err
	}

	return credential.Key, nil
}

// Save replaces any previously stored key so at most one row ever exists.
func (r *credentialRepository) Save(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Credential{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.Credential{Key: key}).Error
	})
}

func (r *credentialRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Credential{}).Error
}
