package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"readiness/internal/model"
)

// Fixed document ID: the service serves exactly one questionnaire
const questionnaireID = "readiness-v1"

// QuestionnaireRepo handles MongoDB operations for the assessment content.
// This is the only collection the service touches; respondent data never
// reaches Mongo.
type QuestionnaireRepo interface {
	Get(ctx context.Context) (*model.Questionnaire, error)
	Upsert(ctx context.Context, q *model.Questionnaire) error
}

type questionnaireRepo struct {
	collection *mongo.Collection
}

// NewQuestionnaireRepo creates a new questionnaire repository
func NewQuestionnaireRepo(db *mongo.Database) QuestionnaireRepo {
	return &questionnaireRepo{
		collection: db.Collection("questionnaire"),
	}
}

func (r *questionnaireRepo) Get(ctx context.Context) (*model.Questionnaire, error) {
	var q model.Questionnaire
	err := r.collection.FindOne(ctx, bson.M{"_id": questionnaireID}).Decode(&q)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *questionnaireRepo) Upsert(ctx context.Context, q *model.Questionnaire) error {
	q.ID = questionnaireID
	q.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": questionnaireID}, q, opts)
	return err
}
