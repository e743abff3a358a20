// Package fixtures holds the sample job postings used by the seed command and tests.
package fixtures

import (
	"context"
	"fmt"
	"time"

	"jobboard/internal/model"
	"jobboard/internal/repository"
)

// Jobs returns fresh copies of the sample postings.
func Jobs() []model.Job {
	return []model.Job{
		{
			Title:       "Software Engineer",
			Type:        "Full-time",
			Description: "Develop new features for Google products.",
			Company: model.Company{
				Name:         "Google",
				ContactEmail: "gmail@gmail.com",
				ContactPhone: "123-456-7890",
			},
		},
		{
			Title:       "Product Manager",
			Type:        "Full-time",
			Description: "Manage the product development process.",
			Company: model.Company{
				Name:         "Facebook",
				ContactEmail: "facebook@facebook.com",
				ContactPhone: "123-456-7890",
			},
		},
	}
}

// ResetJobs empties the job store and inserts the sample postings in order.
// It returns the stored jobs with their ids.
func ResetJobs(ctx context.Context, repo repository.JobRepository) ([]model.Job, error) {
	if err := repo.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear jobs: %w", err)
	}

	jobs := Jobs()
	base := time.Now().UTC()
	for i := range jobs {
		ts := base.Add(time.Duration(i) * time.Millisecond)
		jobs[i].CreatedAt = ts
		jobs[i].UpdatedAt = ts
		if err := repo.Create(ctx, &jobs[i]); err != nil {
			return nil, fmt.Errorf("failed to insert job %q: %w", jobs[i].Title, err)
		}
	}
	return jobs, nil
}
