package contactRepo

import (
	"context"
	"fmt"
	"time"

	"cerberus/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const counterKey = "clients"

type mongoSubmissionRepo struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

// NewMongoSubmissionRepo returns a repository over the clients collection in db.
// Integer ids come from a counters collection.
func NewMongoSubmissionRepo(ctx context.Context, db *mongo.Database) (SubmissionRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("contact repository: mongo database not initialized")
	}
	coll := db.Collection("clients")
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return nil, fmt.Errorf("contact repository: indexes: %w", err)
	}
	return &mongoSubmissionRepo{coll: coll, counters: db.Collection("counters")}, nil
}

func (r *mongoSubmissionRepo) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": counterKey},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

// Create inserts a new submission document. sub gets its id and timestamp
// only once the insert succeeds.
func (r *mongoSubmissionRepo) Create(ctx context.Context, sub *models.ContactSubmission) error {
	id, err := r.nextID(ctx)
	if err != nil {
		return fmt.Errorf("insert client: next id: %w", err)
	}
	doc := *sub
	doc.ID = id
	doc.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	sub.ID, sub.CreatedAt = doc.ID, doc.CreatedAt
	return nil
}
