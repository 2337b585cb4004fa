package services

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/hirehub/backend/internal/dtos"
	"github.com/hirehub/backend/internal/models"
	"github.com/hirehub/backend/internal/storage"
	"gorm.io/gorm"
)

type UserService struct {
	DB       *gorm.DB
	Uploader storage.Uploader
}

func NewUserService(db *gorm.DB, uploader storage.Uploader) *UserService {
	return &UserService{DB: db, Uploader: uploader}
}

func (s *UserService) Get(userID string) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Apply creates a Pending application for the user, denormalizing the job's
// company onto the record. The duplicate pre-check keeps the user-facing
// message; the unique index on (user_id, job_id) closes the race behind it.
func (s *UserService) Apply(userID string, jobID uint) (*models.JobApplication, error) {
	var count int64
	err := s.DB.Model(&models.JobApplication{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyApplied
	}

	var job models.Job
	err = s.DB.First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}

	application := &models.JobApplication{
		UserID:    userID,
		JobID:     job.ID,
		CompanyID: job.CompanyID,
		Status:    models.StatusPending,
		AppliedAt: time.Now(),
	}
	if err := s.DB.Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}
	return application, nil
}

// ListApplications returns the user's applications with company and job
// loaded. An empty result is an error to match the original's envelope.
func (s *UserService) ListApplications(userID string) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := s.DB.
		Where("user_id = ?", userID).
		Preload("Company").
		Preload("Job").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	if len(applications) == 0 {
		return nil, ErrNoApplications
	}
	return applications, nil
}

// UpdateProfile overwrites only the fields present in the request.
func (s *UserService) UpdateProfile(userID string, req *dtos.UpdateProfileRequest) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Skills != nil {
		user.Skills = *req.Skills
	}
	if req.Experience != nil {
		user.Experience = *req.Experience
	}
	if req.Education != nil {
		user.Education = *req.Education
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}

	if err := s.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateResume uploads the resume to the media host and stores its URL.
func (s *UserService) UpdateResume(ctx context.Context, userID string, resume io.Reader) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	url, err := s.Uploader.Upload(ctx, resume, "resumes")
	if err != nil {
		return nil, err
	}

	user.Resume = url
	if err := s.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
