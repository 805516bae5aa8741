package mongo

import (
	"context"
	"fmt"
	"time"

	"sponsorly_backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	mongoopts "go.mongodb.org/mongo-driver/v2/mongo/options"
)

type messageDoc struct {
	ID        bson.ObjectID `bson:"_id"`
	Sender    bson.ObjectID `bson:"sender"`
	Receiver  bson.ObjectID `bson:"receiver"`
	Content   string        `bson:"content"`
	Read      bool          `bson:"read"`
	Timestamp time.Time     `bson:"timestamp"`
	CreatedAt time.Time     `bson:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt"`
}

func docToMessage(doc *messageDoc) models.Message {
	return models.Message{
		BaseModel: models.BaseModel{
			ID:        hexOrEmpty(doc.ID),
			CreatedAt: doc.CreatedAt,
			UpdatedAt: doc.UpdatedAt,
		},
		SenderID:   hexOrEmpty(doc.Sender),
		ReceiverID: hexOrEmpty(doc.Receiver),
		Content:    doc.Content,
		Read:       doc.Read,
		Timestamp:  doc.Timestamp,
	}
}

type MessageRepository struct {
	coll *mongo.Collection
	opts *options
}

func (r *MessageRepository) Create(ctx context.Context, msg *models.Message) error {
	sender, err := bson.ObjectIDFromHex(msg.SenderID)
	if err != nil {
		return fmt.Errorf("invalid sender id %q: %w", msg.SenderID, err)
	}
	receiver, err := bson.ObjectIDFromHex(msg.ReceiverID)
	if err != nil {
		return fmt.Errorf("invalid receiver id %q: %w", msg.ReceiverID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.opts.timeout)
	defer cancel()

	now := time.Now().UTC()
	if msg.Timestamp.IsZero() {
		msg.Timestamp = now
	}
	msg.CreatedAt = now
	msg.UpdatedAt = now

	doc := &messageDoc{
		ID:        bson.NewObjectID(),
		Sender:    sender,
		Receiver:  receiver,
		Content:   msg.Content,
		Read:      msg.Read,
		Timestamp: msg.Timestamp,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	msg.ID = doc.ID.Hex()
	return nil
}

func (r *MessageRepository) find(ctx context.Context, filter bson.M, direction int) ([]models.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opts.timeout)
	defer cancel()

	opts := mongoopts.Find().SetSort(bson.D{{Key: "timestamp", Value: direction}, {Key: "_id", Value: direction}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find messages: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []messageDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}

	out := make([]models.Message, 0, len(docs))
	for i := range docs {
		out = append(out, docToMessage(&docs[i]))
	}
	return out, nil
}

func (r *MessageRepository) FindBetween(ctx context.Context, userID, otherID string) ([]models.Message, error) {
	ids := objectIDs([]string{userID, otherID})
	if len(ids) != 2 {
		return nil, nil
	}
	filter := bson.M{"$or": bson.A{
		bson.M{"sender": ids[0], "receiver": ids[1]},
		bson.M{"sender": ids[1], "receiver": ids[0]},
	}}
	return r.find(ctx, filter, 1)
}

func (r *MessageRepository) FindByParticipant(ctx context.Context, userID string) ([]models.Message, error) {
	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, nil
	}
	filter := bson.M{"$or": bson.A{
		bson.M{"sender": oid},
		bson.M{"receiver": oid},
	}}
	return r.find(ctx, filter, -1)
}

func (r *MessageRepository) MarkRead(ctx context.Context, receiverID string, ids []string) (int64, error) {
	receiver, err := bson.ObjectIDFromHex(receiverID)
	if err != nil {
		return 0, nil
	}
	oids := objectIDs(ids)
	if len(oids) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.opts.timeout)
	defer cancel()

	res, err := r.coll.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": oids}, "receiver": receiver, "read": false},
		bson.M{"$set": bson.M{"read": true, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return 0, fmt.Errorf("mark messages read: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *MessageRepository) CountUnread(ctx context.Context, receiverID string) (int64, error) {
	receiver, err := bson.ObjectIDFromHex(receiverID)
	if err != nil {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.opts.timeout)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"receiver": receiver, "read": false})
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	return count, nil
}

func (r *MessageRepository) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opts.timeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("delete messages: %w", err)
	}
	return res.DeletedCount, nil
}
