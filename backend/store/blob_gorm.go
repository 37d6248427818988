package store

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"vidyabandhan/backend/config"
	"vidyabandhan/backend/models"
)

// InitDB connects to the blob database and migrates the resources table.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Resource{}); err != nil {
		return nil, err
	}

	return db, nil
}

type GormBlobStore struct {
	DB *gorm.DB
}

func NewGormBlobStore(db *gorm.DB) *GormBlobStore {
	return &GormBlobStore{DB: db}
}

func (s *GormBlobStore) Put(ctx context.Context, res models.Resource) error {
	return s.DB.WithContext(ctx).Save(&res).Error
}

func (s *GormBlobStore) ListAll(ctx context.Context) ([]models.Resource, error) {
	var resources []models.Resource
	if err := s.DB.WithContext(ctx).Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}
