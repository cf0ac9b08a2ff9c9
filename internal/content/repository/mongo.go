package repository

import (
	"context"

	"github.com/foliocms/foliocms/internal/content"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo persists content in two collections: "portfolio" holds the
// singleton documents under their fixed string _id keys, "projects" holds
// the project collection sorted by the order field.
type MongoRepo struct {
	portfolio *mongo.Collection
	projects  *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	projects := db.Collection("projects")
	// index on order keeps listing cheap; ties stay in natural order
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "order", Value: 1}}}
	projects.Indexes().CreateOne(context.Background(), idxModel)
	return &MongoRepo{portfolio: db.Collection("portfolio"), projects: projects}
}

func (m *MongoRepo) GetSingleton(ctx context.Context, key string, out interface{}) error {
	err := m.portfolio.FindOne(ctx, bson.M{"_id": key}).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

func (m *MongoRepo) MergeSingleton(ctx context.Context, key string, fields map[string]interface{}) error {
	opts := options.Update().SetUpsert(true)
	_, err := m.portfolio.UpdateOne(ctx, bson.M{"_id": key}, bson.M{"$set": bson.M(fields)}, opts)
	return err
}

func (m *MongoRepo) ListProjects(ctx context.Context) ([]*content.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := m.projects.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*content.Project{}
	for cur.Next(ctx) {
		var p content.Project
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

func (m *MongoRepo) InsertProject(ctx context.Context, p *content.Project) (string, error) {
	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	if _, err := m.projects.InsertOne(ctx, p); err != nil {
		return "", err
	}
	return p.ID, nil
}

func (m *MongoRepo) PatchProject(ctx context.Context, id string, fields map[string]interface{}) error {
	res, err := m.projects.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo) DeleteProject(ctx context.Context, id string) error {
	res, err := m.projects.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
