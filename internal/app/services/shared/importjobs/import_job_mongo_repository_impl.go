package importjobs

import (
	"context"
	"errors"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/app/models"
	"patient-sync-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ImportJobMongoRepository struct {
	Collection *mongo.Collection
}

func NewImportJobMongoRepository(db *mongo.Client, dbName, collectionName string) contracts.ImportJobRepository {
	return &ImportJobMongoRepository{
		Collection: db.Database(dbName).Collection(collectionName),
	}
}

func (r *ImportJobMongoRepository) Insert(ctx context.Context, job *models.ImportJob) error {
	_, err := r.Collection.InsertOne(ctx, job)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *ImportJobMongoRepository) Update(ctx context.Context, job *models.ImportJob) error {
	filter := bson.M{"_id": job.ID}
	_, err := r.Collection.ReplaceOne(ctx, filter, job, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// FindByID returns nil, nil when no job has the id.
func (r *ImportJobMongoRepository) FindByID(ctx context.Context, jobID string) (*models.ImportJob, error) {
	var job models.ImportJob
	err := r.Collection.FindOne(ctx, bson.M{"_id": jobID}).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &job, nil
}
