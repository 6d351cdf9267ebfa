package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/HasibAliOpu/Auto-Motive-Server/model"
)

// Stores bundles one implementation per collection over a shared database
// handle, acquired once in main and passed down explicitly.
type Stores struct {
	Parts    *MongoParts
	Users    *MongoUsers
	Orders   *MongoOrders
	Reviews  *MongoReviews
	Profiles *MongoProfiles
	Payments *MongoPayments
}

func NewStores(db *mongo.Database) *Stores {
	return &Stores{
		Parts:    &MongoParts{c: db.Collection("Parts")},
		Users:    &MongoUsers{c: db.Collection("Users")},
		Orders:   &MongoOrders{c: db.Collection("Orders")},
		Reviews:  &MongoReviews{c: db.Collection("Reviews")},
		Profiles: &MongoProfiles{c: db.Collection("Profiles")},
		Payments: &MongoPayments{c: db.Collection("Payments")},
	}
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

func updateResult(res *mongo.UpdateResult) UpdateResult {
	return UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

type MongoParts struct {
	c *mongo.Collection
}

func (s *MongoParts) All(ctx context.Context) ([]model.Part, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	parts := []model.Part{}
	if err := cur.All(ctx, &parts); err != nil {
		return nil, err
	}
	return parts, nil
}

func (s *MongoParts) Get(ctx context.Context, id string) (model.Part, error) {
	oid, err := objectID(id)
	if err != nil {
		return model.Part{}, err
	}
	var p model.Part
	err = s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Part{}, ErrNotFound
	}
	return p, err
}

func (s *MongoParts) Insert(ctx context.Context, p model.Part) (InsertResult, error) {
	res, err := s.c.InsertOne(ctx, p)
	if err != nil {
		return InsertResult{}, err
	}
	return InsertResult{InsertedID: res.InsertedID}, nil
}

func (s *MongoParts) SetAvailableQuantity(ctx context.Context, id string, qty int) (UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return UpdateResult{}, err
	}
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"availableQuantity": qty}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return UpdateResult{}, err
	}
	return updateResult(res), nil
}

func (s *MongoParts) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	_, err = s.c.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

type MongoUsers struct {
	c *mongo.Collection
}

func (s *MongoUsers) Get(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

func (s *MongoUsers) All(ctx context.Context) ([]model.User, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	users := []model.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoUsers) Upsert(ctx context.Context, email string, u model.User) (UpdateResult, error) {
	u.Email = email
	res, err := s.c.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": u},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return UpdateResult{}, err
	}
	return updateResult(res), nil
}

func (s *MongoUsers) MakeAdmin(ctx context.Context, email string) (UpdateResult, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": model.RoleAdmin}},
	)
	if err != nil {
		return UpdateResult{}, err
	}
	if res.MatchedCount == 0 {
		return UpdateResult{}, ErrNotFound
	}
	return updateResult(res), nil
}

type MongoOrders struct {
	c *mongo.Collection
}

func (s *MongoOrders) Insert(ctx context.Context, o model.Order) (InsertResult, error) {
	res, err := s.c.InsertOne(ctx, o)
	if err != nil {
		return InsertResult{}, err
	}
	return InsertResult{InsertedID: res.InsertedID}, nil
}

func (s *MongoOrders) ByEmail(ctx context.Context, email string) ([]model.Order, error) {
	cur, err := s.c.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	orders := []model.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *MongoOrders) MarkPaid(ctx context.Context, id, transactionID string) (UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return UpdateResult{}, err
	}
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"paid":          true,
			"status":        "pending",
			"transactionId": transactionID,
		}},
	)
	if err != nil {
		return UpdateResult{}, err
	}
	if res.MatchedCount == 0 {
		return UpdateResult{}, ErrNotFound
	}
	return updateResult(res), nil
}

func (s *MongoOrders) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	_, err = s.c.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

type MongoReviews struct {
	c *mongo.Collection
}

func (s *MongoReviews) All(ctx context.Context) ([]model.Review, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	reviews := []model.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *MongoReviews) Insert(ctx context.Context, r model.Review) (InsertResult, error) {
	res, err := s.c.InsertOne(ctx, r)
	if err != nil {
		return InsertResult{}, err
	}
	return InsertResult{InsertedID: res.InsertedID}, nil
}

type MongoProfiles struct {
	c *mongo.Collection
}

func (s *MongoProfiles) Get(ctx context.Context, email string) (model.Profile, error) {
	var p model.Profile
	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Profile{}, ErrNotFound
	}
	return p, err
}

func (s *MongoProfiles) Upsert(ctx context.Context, email string, p model.Profile) (UpdateResult, error) {
	p.Email = email
	res, err := s.c.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": p},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return UpdateResult{}, err
	}
	return updateResult(res), nil
}

type MongoPayments struct {
	c *mongo.Collection
}

func (s *MongoPayments) Insert(ctx context.Context, p model.Payment) (InsertResult, error) {
	res, err := s.c.InsertOne(ctx, p)
	if err != nil {
		return InsertResult{}, err
	}
	return InsertResult{InsertedID: res.InsertedID}, nil
}
