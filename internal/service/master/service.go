package master

import (
	"context"

	"github.com/hrpms/pms-backend-go/internal/domain/master/grade"
	"github.com/hrpms/pms-backend-go/internal/domain/master/job"
)

type MasterService interface {
	// Grade operations
	CreateGrade(ctx context.Context, req grade.CreateGradeRequest) (grade.Grade, error)
	GetGrade(ctx context.Context, id string) (grade.Grade, error)
	ListGrades(ctx context.Context) ([]grade.Grade, error)
	UpdateGrade(ctx context.Context, req grade.UpdateGradeRequest) error
	DeleteGrade(ctx context.Context, id string) error

	// Job operations
	CreateJob(ctx context.Context, req job.CreateJobRequest) (job.Job, error)
	GetJob(ctx context.Context, id string) (job.Job, error)
	ListJobs(ctx context.Context) ([]job.Job, error)
	UpdateJob(ctx context.Context, req job.UpdateJobRequest) error
	DeleteJob(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	gradeRepo grade.GradeRepository
	jobRepo   job.JobRepository
}

func NewMasterService(gradeRepo grade.GradeRepository, jobRepo job.JobRepository) MasterService {
	return &masterServiceImpl{
		gradeRepo: gradeRepo,
		jobRepo:   jobRepo,
	}
}

// ==================== GRADE OPERATIONS ====================

func (s *masterServiceImpl) CreateGrade(ctx context.Context, req grade.CreateGradeRequest) (grade.Grade, error) {
	if err := req.Validate(); err != nil {
		return grade.Grade{}, err
	}

	return s.gradeRepo.Create(ctx, grade.Grade{
		Name:        req.Name,
		Description: req.Description,
	})
}

func (s *masterServiceImpl) GetGrade(ctx context.Context, id string) (grade.Grade, error) {
	return s.gradeRepo.GetByID(ctx, id)
}

func (s *masterServiceImpl) ListGrades(ctx context.Context) ([]grade.Grade, error) {
	grades, err := s.gradeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(grades) == 0 {
		return []grade.Grade{}, nil
	}
	return grades, nil
}

func (s *masterServiceImpl) UpdateGrade(ctx context.Context, req grade.UpdateGradeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.gradeRepo.Update(ctx, req)
}

func (s *masterServiceImpl) DeleteGrade(ctx context.Context, id string) error {
	return s.gradeRepo.Delete(ctx, id)
}

// ==================== JOB OPERATIONS ====================

func (s *masterServiceImpl) CreateJob(ctx context.Context, req job.CreateJobRequest) (job.Job, error) {
	if err := req.Validate(); err != nil {
		return job.Job{}, err
	}

	if req.GradeID != nil {
		if _, err := s.gradeRepo.GetByID(ctx, *req.GradeID); err != nil {
			return job.Job{}, err
		}
	}

	return s.jobRepo.Create(ctx, job.Job{
		Title:   req.Title,
		GradeID: req.GradeID,
	})
}

func (s *masterServiceImpl) GetJob(ctx context.Context, id string) (job.Job, error) {
	return s.jobRepo.GetByID(ctx, id)
}

func (s *masterServiceImpl) ListJobs(ctx context.Context) ([]job.Job, error) {
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return []job.Job{}, nil
	}
	return jobs, nil
}

func (s *masterServiceImpl) UpdateJob(ctx context.Context, req job.UpdateJobRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if req.GradeID != nil {
		if _, err := s.gradeRepo.GetByID(ctx, *req.GradeID); err != nil {
			return err
		}
	}

	return s.jobRepo.Update(ctx, req)
}

func (s *masterServiceImpl) DeleteJob(ctx context.Context, id string) error {
	return s.jobRepo.Delete(ctx, id)
}
