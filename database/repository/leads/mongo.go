package leads

import (
	"context"
	"errors"
	"time"

	"moveflow/database"
	"moveflow/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoLeadRepo struct {
	coll *mongo.Collection
}

// NewMongoLeadRepo returns a Repository backed by MongoDB.
func NewMongoLeadRepo() Repository {
	db := database.MongoClient.Database("moveflow")
	return &mongoLeadRepo{
		coll: db.Collection("leads"),
	}
}

// Create inserts a new lead record.
func (r *mongoLeadRepo) Create(ctx context.Context, lead *models.Lead) error {
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}
	lead.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, lead)
	return err
}

// GetByID returns a lead by its ID.
func (r *mongoLeadRepo) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	var lead models.Lead
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetByBookingID returns the lead attached to an upstream booking.
func (r *mongoLeadRepo) GetByBookingID(ctx context.Context, bookingID string) (*models.Lead, error) {
	var lead models.Lead
	if err := r.coll.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

// UpdateStatus moves a lead through the funnel lifecycle.
func (r *mongoLeadRepo) UpdateStatus(ctx context.Context, id, status, failureKind string) error {
	update := bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}
	if failureKind != "" {
		update["failure_kind"] = failureKind
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("lead not found")
	}
	return nil
}
