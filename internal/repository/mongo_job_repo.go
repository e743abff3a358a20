package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobboard/internal/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const jobsCollection = "jobs"

type companyDocument struct {
	Name         string `bson:"name"`
	ContactEmail string `bson:"contactEmail"`
	ContactPhone string `bson:"contactPhone"`
}

type jobDocument struct {
	ID          bson.ObjectID   `bson:"_id"`
	Title       string          `bson:"title"`
	Type        string          `bson:"type"`
	Description string          `bson:"description"`
	Company     companyDocument `bson:"company"`
	CreatedAt   time.Time       `bson:"created_at"`
	UpdatedAt   time.Time       `bson:"updated_at"`
}

func newJobDocument(id bson.ObjectID, job *model.Job) jobDocument {
	return jobDocument{
		ID:          id,
		Title:       job.Title,
		Type:        job.Type,
		Description: job.Description,
		Company: companyDocument{
			Name:         job.Company.Name,
			ContactEmail: job.Company.ContactEmail,
			ContactPhone: job.Company.ContactPhone,
		},
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}
}

func (d *jobDocument) toModel() model.Job {
	return model.Job{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Type:        d.Type,
		Description: d.Description,
		Company: model.Company{
			Name:         d.Company.Name,
			ContactEmail: d.Company.ContactEmail,
			ContactPhone: d.Company.ContactPhone,
		},
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// MongoJobRepository stores job postings in the "jobs" collection
type MongoJobRepository struct {
	coll *mongo.Collection
}

// NewMongoJobRepository creates a JobRepository backed by MongoDB
func NewMongoJobRepository(db *mongo.Database) *MongoJobRepository {
	return &MongoJobRepository{coll: db.Collection(jobsCollection)}
}

// EnsureIndexes creates the index used to list jobs in insertion order.
func (r *MongoJobRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create jobs index: %w", err)
	}
	return nil
}

func (r *MongoJobRepository) Create(ctx context.Context, job *model.Job) error {
	doc := newJobDocument(bson.NewObjectID(), job)
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	job.ID = doc.ID.Hex()
	return nil
}

func (r *MongoJobRepository) FindAll(ctx context.Context) ([]model.Job, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}

	var docs []jobDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode jobs: %w", err)
	}

	jobs := make([]model.Job, 0, len(docs))
	for i := range docs {
		jobs = append(jobs, docs[i].toModel())
	}
	return jobs, nil
}

func (r *MongoJobRepository) FindByID(ctx context.Context, id string) (*model.Job, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc jobDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find job by ID: %w", err)
	}
	job := doc.toModel()
	return &job, nil
}

func (r *MongoJobRepository) Update(ctx context.Context, job *model.Job) error {
	oid, err := bson.ObjectIDFromHex(job.ID)
	if err != nil {
		return ErrNotFound
	}

	doc := newJobDocument(oid, job)
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: doc.Title},
		{Key: "type", Value: doc.Type},
		{Key: "description", Value: doc.Description},
		{Key: "company", Value: doc.Company},
		{Key: "updated_at", Value: doc.UpdatedAt},
	}}}
	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoJobRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoJobRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("failed to delete jobs: %w", err)
	}
	return nil
}

func (r *MongoJobRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return n, nil
}
