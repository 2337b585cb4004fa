package services

import (
	"context"
	"errors"
	"io"

	"github.com/hirehub/backend/internal/models"
	"github.com/hirehub/backend/internal/storage"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CompanyService struct {
	DB       *gorm.DB
	Uploader storage.Uploader
}

func NewCompanyService(db *gorm.DB, uploader storage.Uploader) *CompanyService {
	return &CompanyService{DB: db, Uploader: uploader}
}

// Register creates a company account. The logo is pushed to the media host
// and only its URL is stored.
func (s *CompanyService) Register(ctx context.Context, name, email, password string, logo io.Reader) (*models.Company, error) {
	if name == "" || email == "" || password == "" || logo == nil {
		return nil, ErrMissingDetails
	}

	var existing models.Company
	err := s.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrCompanyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.Uploader.Upload(ctx, logo, "logos")
	if err != nil {
		return nil, err
	}

	company := &models.Company{
		Name:     name,
		Email:    email,
		Password: hash,
		Image:    imageURL,
	}
	if err := s.DB.Create(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

// Login checks the password against the stored hash. The two failure modes
// stay distinct so the handler can keep the original messages.
func (s *CompanyService) Login(email, password string) (*models.Company, error) {
	var company models.Company
	err := s.DB.Where("email = ?", email).First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoAccount
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(company.Password, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrWrongPassword
		}
		return nil, err
	}
	return &company, nil
}

// ListApplicants returns every application against the company's jobs, with
// the applicant and job loaded for display.
func (s *CompanyService) ListApplicants(companyID uint) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := s.DB.
		Where("company_id = ?", companyID).
		Preload("User").
		Preload("Job").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// ChangeApplicationStatus overwrites an application's status. Only Accepted
// and Rejected are valid targets. The original never checks that the
// application belongs to the calling company; that gap is preserved here
// rather than silently fixed.
func (s *CompanyService) ChangeApplicationStatus(id uint, status string) error {
	if status != models.StatusAccepted && status != models.StatusRejected {
		return ErrInvalidStatus
	}

	res := s.DB.Model(&models.JobApplication{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAppNotFound
	}
	return nil
}
