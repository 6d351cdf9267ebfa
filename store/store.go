package store

import (
	"context"
	"errors"

	"github.com/HasibAliOpu/Auto-Motive-Server/model"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrInvalidID = errors.New("invalid id")
)

// UpdateResult mirrors the driver's update summary without leaking the
// driver type through the interfaces.
type UpdateResult struct {
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}

type InsertResult struct {
	InsertedID interface{} `json:"insertedId"`
}

type PartStore interface {
	All(ctx context.Context) ([]model.Part, error)
	Get(ctx context.Context, id string) (model.Part, error)
	Insert(ctx context.Context, p model.Part) (InsertResult, error)
	SetAvailableQuantity(ctx context.Context, id string, qty int) (UpdateResult, error)
	Delete(ctx context.Context, id string) error
}

type UserStore interface {
	Get(ctx context.Context, email string) (model.User, error)
	All(ctx context.Context) ([]model.User, error)
	Upsert(ctx context.Context, email string, u model.User) (UpdateResult, error)
	MakeAdmin(ctx context.Context, email string) (UpdateResult, error)
}

type OrderStore interface {
	Insert(ctx context.Context, o model.Order) (InsertResult, error)
	ByEmail(ctx context.Context, email string) ([]model.Order, error)
	MarkPaid(ctx context.Context, id, transactionID string) (UpdateResult, error)
	Delete(ctx context.Context, id string) error
}

type ReviewStore interface {
	All(ctx context.Context) ([]model.Review, error)
	Insert(ctx context.Context, r model.Review) (InsertResult, error)
}

type ProfileStore interface {
	Get(ctx context.Context, email string) (model.Profile, error)
	Upsert(ctx context.Context, email string, p model.Profile) (UpdateResult, error)
}

type PaymentStore interface {
	Insert(ctx context.Context, p model.Payment) (InsertResult, error)
}
