package controller

import (
	"context"

	"github.com/HasibAliOpu/Auto-Motive-Server/model"
	"github.com/HasibAliOpu/Auto-Motive-Server/store"
)

type fakeParts struct {
	parts   map[string]model.Part
	err     error
	deleted []string
}

func (f *fakeParts) All(context.Context) ([]model.Part, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []model.Part{}
	for _, p := range f.parts {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeParts) Get(_ context.Context, id string) (model.Part, error) {
	if f.err != nil {
		return model.Part{}, f.err
	}
	if len(id) != 24 {
		return model.Part{}, store.ErrInvalidID
	}
	p, ok := f.parts[id]
	if !ok {
		return model.Part{}, store.ErrNotFound
	}
	return p, nil
}

func (f *fakeParts) Insert(_ context.Context, p model.Part) (store.InsertResult, error) {
	if f.err != nil {
		return store.InsertResult{}, f.err
	}
	if f.parts == nil {
		f.parts = map[string]model.Part{}
	}
	f.parts["aaaaaaaaaaaaaaaaaaaaaaaa"] = p
	return store.InsertResult{InsertedID: "aaaaaaaaaaaaaaaaaaaaaaaa"}, nil
}

func (f *fakeParts) SetAvailableQuantity(_ context.Context, id string, qty int) (store.UpdateResult, error) {
	if f.err != nil {
		return store.UpdateResult{}, f.err
	}
	if len(id) != 24 {
		return store.UpdateResult{}, store.ErrInvalidID
	}
	p, ok := f.parts[id]
	if !ok {
		return store.UpdateResult{UpsertedCount: 1}, nil
	}
	p.AvailableQuantity = qty
	f.parts[id] = p
	return store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeParts) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if len(id) != 24 {
		return store.ErrInvalidID
	}
	delete(f.parts, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeOrders struct {
	orders map[string]model.Order
	err    error
}

func (f *fakeOrders) Insert(_ context.Context, o model.Order) (store.InsertResult, error) {
	if f.err != nil {
		return store.InsertResult{}, f.err
	}
	if f.orders == nil {
		f.orders = map[string]model.Order{}
	}
	f.orders["bbbbbbbbbbbbbbbbbbbbbbbb"] = o
	return store.InsertResult{InsertedID: "bbbbbbbbbbbbbbbbbbbbbbbb"}, nil
}

func (f *fakeOrders) ByEmail(_ context.Context, email string) ([]model.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []model.Order{}
	for _, o := range f.orders {
		if o.Email == email {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrders) MarkPaid(_ context.Context, id, transactionID string) (store.UpdateResult, error) {
	if f.err != nil {
		return store.UpdateResult{}, f.err
	}
	if len(id) != 24 {
		return store.UpdateResult{}, store.ErrInvalidID
	}
	o, ok := f.orders[id]
	if !ok {
		return store.UpdateResult{}, store.ErrNotFound
	}
	o.Paid = true
	o.Status = "pending"
	o.TransactionID = transactionID
	f.orders[id] = o
	return store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeOrders) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.orders, id)
	return nil
}

type fakePayments struct {
	payments []model.Payment
	err      error
}

func (f *fakePayments) Insert(_ context.Context, p model.Payment) (store.InsertResult, error) {
	if f.err != nil {
		return store.InsertResult{}, f.err
	}
	f.payments = append(f.payments, p)
	return store.InsertResult{InsertedID: "cccccccccccccccccccccccc"}, nil
}

type fakeUsers struct {
	users map[string]model.User
	err   error
}

func (f *fakeUsers) Get(_ context.Context, email string) (model.User, error) {
	if f.err != nil {
		return model.User{}, f.err
	}
	u, ok := f.users[email]
	if !ok {
		return model.User{}, store.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) All(context.Context) ([]model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []model.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsers) Upsert(_ context.Context, email string, u model.User) (store.UpdateResult, error) {
	if f.err != nil {
		return store.UpdateResult{}, f.err
	}
	if f.users == nil {
		f.users = map[string]model.User{}
	}
	existing, ok := f.users[email]
	u.Email = email
	if ok && u.Role == "" {
		u.Role = existing.Role
	}
	f.users[email] = u
	if ok {
		return store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return store.UpdateResult{UpsertedCount: 1, UpsertedID: email}, nil
}

func (f *fakeUsers) MakeAdmin(_ context.Context, email string) (store.UpdateResult, error) {
	if f.err != nil {
		return store.UpdateResult{}, f.err
	}
	u, ok := f.users[email]
	if !ok {
		return store.UpdateResult{}, store.ErrNotFound
	}
	u.Role = model.RoleAdmin
	f.users[email] = u
	return store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

type fakeReviews struct {
	reviews []model.Review
	err     error
}

func (f *fakeReviews) All(context.Context) ([]model.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.reviews, nil
}

func (f *fakeReviews) Insert(_ context.Context, r model.Review) (store.InsertResult, error) {
	if f.err != nil {
		return store.InsertResult{}, f.err
	}
	f.reviews = append(f.reviews, r)
	return store.InsertResult{InsertedID: "dddddddddddddddddddddddd"}, nil
}

type fakeProfiles struct {
	profiles map[string]model.Profile
	err      error
}

func (f *fakeProfiles) Get(_ context.Context, email string) (model.Profile, error) {
	if f.err != nil {
		return model.Profile{}, f.err
	}
	p, ok := f.profiles[email]
	if !ok {
		return model.Profile{}, store.ErrNotFound
	}
	return p, nil
}

func (f *fakeProfiles) Upsert(_ context.Context, email string, p model.Profile) (store.UpdateResult, error) {
	if f.err != nil {
		return store.UpdateResult{}, f.err
	}
	if f.profiles == nil {
		f.profiles = map[string]model.Profile{}
	}
	p.Email = email
	_, ok := f.profiles[email]
	f.profiles[email] = p
	if ok {
		return store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return store.UpdateResult{UpsertedCount: 1}, nil
}

type fakeIntents struct {
	secret string
	err    error
	price  float64
}

func (f *fakeIntents) CreateIntent(price float64) (string, error) {
	f.price = price
	if f.err != nil {
		return "", f.err
	}
	return f.secret, nil
}
