package services

import (
	"errors"
	"time"

	"github.com/hirehub/backend/internal/dtos"
	"github.com/hirehub/backend/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// JobWithApplicants is a job annotated with a live count of its applications.
type JobWithApplicants struct {
	models.Job
	Applicants int64 `json:"applicants"`
}

// Create posts a new job for a company.
func (s *JobService) Create(companyID uint, req *dtos.PostJobRequest) (*models.Job, error) {
	if req.Salary < 0 {
		return nil, ErrInvalidSalary
	}

	job := &models.Job{
		CompanyID:   companyID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Category:    req.Category,
		Level:       req.Level,
		Salary:      req.Salary,
		Visible:     true,
		PostedAt:    time.Now(),
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// ListVisible returns all publicly listed jobs, newest first, each with its
// applicant count and company attached. Title and location narrow the result
// by case-insensitive substring when non-empty.
func (s *JobService) ListVisible(title, location string) ([]JobWithApplicants, error) {
	query := s.DB.Where("visible = ?", true).Preload("Company")
	if title != "" {
		query = query.Where("LOWER(title) LIKE LOWER(?)", "%"+title+"%")
	}
	if location != "" {
		query = query.Where("LOWER(location) LIKE LOWER(?)", "%"+location+"%")
	}

	var jobs []models.Job
	if err := query.Order("posted_at desc").Find(&jobs).Error; err != nil {
		return nil, err
	}

	return s.withApplicantCounts(jobs)
}

// ListByCompany returns all jobs a company has posted, visible or not, with
// applicant counts.
func (s *JobService) ListByCompany(companyID uint) ([]JobWithApplicants, error) {
	var jobs []models.Job
	if err := s.DB.Where("company_id = ?", companyID).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return s.withApplicantCounts(jobs)
}

// Get fetches a single job with its company and applicant count.
func (s *JobService) Get(id uint) (*JobWithApplicants, error) {
	var job models.Job
	err := s.DB.Preload("Company").First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}

	count, err := s.applicantCount(job.ID)
	if err != nil {
		return nil, err
	}
	return &JobWithApplicants{Job: job, Applicants: count}, nil
}

// ToggleVisibility inverts a job's visible flag if the job belongs to the
// company. The original produces no response at all on an ownership mismatch;
// here that surfaces as the job-not-found error without touching the row.
func (s *JobService) ToggleVisibility(companyID, jobID uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}

	if job.CompanyID != companyID {
		return nil, ErrJobNotFound
	}

	job.Visible = !job.Visible
	if err := s.DB.Model(&job).Update("visible", job.Visible).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *JobService) withApplicantCounts(jobs []models.Job) ([]JobWithApplicants, error) {
	result := make([]JobWithApplicants, 0, len(jobs))
	for _, job := range jobs {
		count, err := s.applicantCount(job.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, JobWithApplicants{Job: job, Applicants: count})
	}
	return result, nil
}

func (s *JobService) applicantCount(jobID uint) (int64, error) {
	var count int64
	err := s.DB.Model(&models.JobApplication{}).Where("job_id = ?", jobID).Count(&count).Error
	return count, err
}
