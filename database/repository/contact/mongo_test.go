package contactRepo

import (
	"context"
	"testing"

	"cerberus/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func counterReply(seq int64) bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
		{Key: "_id", Value: counterKey},
		{Key: "seq", Value: seq},
	}})
}

func TestMongoCreate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns id after insert", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(), counterReply(7), mtest.CreateSuccessResponse())

		repo, err := NewMongoSubmissionRepo(context.Background(), mt.DB)
		if err != nil {
			mt.Fatalf("repo: %v", err)
		}
		sub := &models.ContactSubmission{Name: "Jo", Email: "jo@x.com"}
		if err := repo.Create(context.Background(), sub); err != nil {
			mt.Fatalf("create: %v", err)
		}
		if sub.ID != 7 || sub.CreatedAt.IsZero() {
			mt.Errorf("submission: %+v", sub)
		}
	})

	mt.Run("failed insert leaves submission untouched", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			counterReply(8),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}),
		)

		repo, err := NewMongoSubmissionRepo(context.Background(), mt.DB)
		if err != nil {
			mt.Fatalf("repo: %v", err)
		}
		sub := &models.ContactSubmission{Name: "Jo", Email: "jo@x.com"}
		if err := repo.Create(context.Background(), sub); err == nil {
			mt.Fatal("expected insert error")
		}
		if sub.ID != 0 || !sub.CreatedAt.IsZero() {
			mt.Errorf("submission changed on failure: %+v", sub)
		}
	})
}

func TestMongoRepoRequiresDatabase(t *testing.T) {
	if _, err := NewMongoSubmissionRepo(context.Background(), nil); err == nil {
		t.Error("expected error for nil database")
	}
}
