package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/sh1vam31/food-inventory-console/internal/domain"
	"github.com/sh1vam31/food-inventory-console/internal/repo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const submissionAuditCollection = "submission_audit"

type SubmissionAuditRepository struct {
	collection *mongo.Collection
}

func NewSubmissionAuditRepository(db *mongo.Database) *SubmissionAuditRepository {
	return &SubmissionAuditRepository{
		collection: db.Collection(submissionAuditCollection),
	}
}

var _ repo.SubmissionAuditRepository = (*SubmissionAuditRepository)(nil)

func (r *SubmissionAuditRepository) Create(ctx context.Context, audit *domain.SubmissionAudit) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if audit.ID.IsZero() {
		audit.ID = primitive.NewObjectID()
	}
	if audit.Timestamp.IsZero() {
		audit.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, audit)
	if err != nil {
		return fmt.Errorf("failed to create submission audit: %w", err)
	}

	return nil
}

func (r *SubmissionAuditRepository) List(ctx context.Context, filter repo.SubmissionAuditFilter, limit int) ([]domain.SubmissionAudit, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.UserID != "" {
		query["user_id"] = filter.UserID
	}
	if filter.CartID != "" {
		query["cart_id"] = filter.CartID
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get submission audits: %w", err)
	}
	defer cursor.Close(ctx)

	audits := []domain.SubmissionAudit{}
	if err := cursor.All(ctx, &audits); err != nil {
		return nil, fmt.Errorf("failed to decode submission audits: %w", err)
	}

	return audits, nil
}
