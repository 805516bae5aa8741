// Package mongo - реализация репозиториев поверх MongoDB.
// Коллекции и имена полей совпадают с исходной схемой users/messages.
package mongo

import (
	"context"
	"fmt"

	"sponsorly_backend/internal/repositories"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	mongoopts "go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Open подключается к MongoDB, создает индексы и возвращает Store.
// Close у Store отключает клиента.
func Open(ctx context.Context, uri string, opts ...Option) (*repositories.Store, error) {
	o := newOptions(opts...)

	client, err := mongo.Connect(mongoopts.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	store, err := newStore(ctx, client, o)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return store, nil
}

func newStore(ctx context.Context, client *mongo.Client, o *options) (*repositories.Store, error) {
	pingCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(o.database)
	if err := ensureIndexes(pingCtx, db); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	o.logger.Info("connected to MongoDB", "database", o.database)

	return repositories.NewStore(
		"mongo",
		&UserRepository{coll: db.Collection(usersCollection), opts: o},
		&MessageRepository{coll: db.Collection(messagesCollection), opts: o},
		&SupportTicketRepository{coll: db.Collection(ticketsCollection), opts: o},
		func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, o.timeout)
			defer cancel()
			return client.Ping(ctx, nil)
		},
		func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	), nil
}

// ensureIndexes создает индексы; уникальный индекс по email
// обеспечивает атомарную проверку при регистрации.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	users := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: mongoopts.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "role", Value: 1}, {Key: "createdAt", Value: 1}}},
	}
	if _, err := db.Collection(usersCollection).Indexes().CreateMany(ctx, users); err != nil {
		return err
	}

	messages := []mongo.IndexModel{
		{Keys: bson.D{{Key: "sender", Value: 1}, {Key: "receiver", Value: 1}, {Key: "timestamp", Value: 1}}},
		{Keys: bson.D{{Key: "receiver", Value: 1}, {Key: "read", Value: 1}}},
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
	}
	if _, err := db.Collection(messagesCollection).Indexes().CreateMany(ctx, messages); err != nil {
		return err
	}

	tickets := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}
	_, err := db.Collection(ticketsCollection).Indexes().CreateMany(ctx, tickets)
	return err
}

// objectIDs переводит hex-строки в ObjectID, пропуская невалидные
func objectIDs(ids []string) []bson.ObjectID {
	out := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := bson.ObjectIDFromHex(id); err == nil {
			out = append(out, oid)
		}
	}
	return out
}

func hexOrEmpty(oid bson.ObjectID) string {
	if oid.IsZero() {
		return ""
	}
	return oid.Hex()
}
