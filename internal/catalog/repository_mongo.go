package catalog

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "products"

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(collectionName)}
}

func (r *MongoRepository) ListAll(ctx context.Context) ([]MenuItem, error) {
	cursor, err := r.coll.Find(
		ctx,
		bson.D{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *MongoRepository) Upsert(ctx context.Context, item *MenuItem) error {
	if item.ID == "" {
		item.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.coll.ReplaceOne(
		ctx,
		bson.D{{Key: "_id", Value: item.ID}},
		item,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("menu item not found")
	}
	return nil
}

func (r *MongoRepository) SetImageURL(ctx context.Context, id, url string) error {
	res, err := r.coll.UpdateOne(
		ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "imageUrl", Value: url}}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("menu item not found")
	}
	return nil
}
