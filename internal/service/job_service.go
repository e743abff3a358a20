package service

import (
	"context"
	"time"

	"jobboard/internal/model"
	"jobboard/internal/repository"
)

// ErrJobNotFound is returned for a well-formed id with no job behind it.
var ErrJobNotFound = model.NewNotFoundError("job not found")

// JobService provides CRUD operations over job postings
type JobService interface {
	List(ctx context.Context) ([]model.Job, error)
	Get(ctx context.Context, id string) (*model.Job, error)
	Create(ctx context.Context, req model.CreateJobRequest) (*model.Job, error)
	Update(ctx context.Context, id string, req model.UpdateJobRequest) (*model.Job, error)
	Delete(ctx context.Context, id string) error
}

type jobService struct {
	repo         repository.JobRepository
	storeTimeout time.Duration
	now          func() time.Time
}

// NewJobService creates a new JobService
func NewJobService(repo repository.JobRepository, storeTimeout time.Duration) JobService {
	return &jobService{
		repo:         repo,
		storeTimeout: storeTimeout,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// List returns every job in insertion order; never nil.
func (s *jobService) List(ctx context.Context) ([]model.Job, error) {
	ctx, cancel := storeContext(ctx, s.storeTimeout)
	defer cancel()

	jobs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, internalStoreError(err)
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	return jobs, nil
}

// Get returns a single job. A malformed id is a validation error, an absent one is not found.
func (s *jobService) Get(ctx context.Context, id string) (*model.Job, error) {
	id, err := model.CanonicalID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := storeContext(ctx, s.storeTimeout)
	defer cancel()

	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, ErrJobNotFound.Message)
	}
	return job, nil
}

func (s *jobService) Create(ctx context.Context, req model.CreateJobRequest) (*model.Job, error) {
	job := req.NewJob()
	if err := job.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	job.CreatedAt = now
	job.UpdatedAt = now

	ctx, cancel := storeContext(ctx, s.storeTimeout)
	defer cancel()

	if err := s.repo.Create(ctx, job); err != nil {
		return nil, internalStoreError(err)
	}
	return job, nil
}

// Update applies only the fields present in req. Blanking title or description is rejected.
func (s *jobService) Update(ctx context.Context, id string, req model.UpdateJobRequest) (*model.Job, error) {
	id, err := model.CanonicalID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := storeContext(ctx, s.storeTimeout)
	defer cancel()

	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, ErrJobNotFound.Message)
	}

	req.Apply(job)
	if err := job.Validate(); err != nil {
		return nil, err
	}
	job.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, job); err != nil {
		return nil, translateStoreError(err, ErrJobNotFound.Message)
	}
	return job, nil
}

func (s *jobService) Delete(ctx context.Context, id string) error {
	id, err := model.CanonicalID(id)
	if err != nil {
		return err
	}

	ctx, cancel := storeContext(ctx, s.storeTimeout)
	defer cancel()

	return translateStoreError(s.repo.Delete(ctx, id), ErrJobNotFound.Message)
}
