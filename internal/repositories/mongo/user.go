package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sponsorly_backend/internal/models"
	"sponsorly_backend/internal/repositories"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	mongoopts "go.mongodb.org/mongo-driver/v2/mongo/options"
)

type linkDoc struct {
	Label string `bson:"label"`
	URL   string `bson:"url"`
}

type userDoc struct {
	ID            bson.ObjectID `bson:"_id"`
	FirstName     string        `bson:"firstName"`
	LastName      string        `bson:"lastName"`
	Email         string        `bson:"email"`
	Password      string        `bson:"password"`
	Role          string        `bson:"role"`
	Bio           string        `bson:"bio,omitempty"`
	Location      string        `bson:"location,omitempty"`
	Links         []linkDoc     `bson:"links,omitempty"`
	Platform      string        `bson:"platform,omitempty"`
	Handle        string        `bson:"handle,omitempty"`
	Followers     int64         `bson:"followers,omitempty"`
	DOB           *time.Time    `bson:"dob,omitempty"`
	AudienceReach string        `bson:"audienceReach,omitempty"`
	CompanyName   string        `bson:"companyName,omitempty"`
	NoOfEmployees string        `bson:"noOfEmployees,omitempty"`
	Budget        string        `bson:"budget,omitempty"`
	Requirements  string        `bson:"requirements,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt"`
}

func userToDoc(u *models.User, oid bson.ObjectID) *userDoc {
	doc := &userDoc{
		ID:            oid,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		Password:      u.PasswordHash,
		Role:          string(u.Role),
		Bio:           u.Bio,
		Location:      u.Location,
		Platform:      u.Platform,
		Handle:        u.Handle,
		Followers:     u.Followers,
		DOB:           u.DOB,
		AudienceReach: u.AudienceReach,
		CompanyName:   u.CompanyName,
		NoOfEmployees: u.NoOfEmployees,
		Budget:        u.Budget,
		Requirements:  u.Requirements,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
	for _, l := range u.Links {
		doc.Links = append(doc.Links, linkDoc{Label: l.Label, URL: l.URL})
	}
	return doc
}

func docToUser(doc *userDoc) models.User {
	u := models.User{
		BaseModel: models.BaseModel{
			ID:        hexOrEmpty(doc.ID),
			CreatedAt: doc.CreatedAt,
			UpdatedAt: doc.UpdatedAt,
		},
		FirstName:     doc.FirstName,
		LastName:      doc.LastName,
		Email:         doc.Email,
		PasswordHash:  doc.Password,
		Role:          models.UserRole(doc.Role),
		Bio:           doc.Bio,
		Location:      doc.Location,
		Platform:      doc.Platform,
		Handle:        doc.Handle,
		Followers:     doc.Followers,
		DOB:           doc.DOB,
		AudienceReach: doc.AudienceReach,
		CompanyName:   doc.CompanyName,
		NoOfEmployees: doc.NoOfEmployees,
		Budget:        doc.Budget,
		Requirements:  doc.Requirements,
	}
	for _, l := range doc.Links {
		u.Links = append(u.Links, models.Link{Label: l.Label, URL: l.URL})
	}
	return u
}

type UserRepository struct {
	coll *mongo.Collection
	opts *options
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, r.opts.timeout)
	defer cancel()

	oid := bson.NewObjectID()
	now := time.Now().UTC()
	user.Email = models.NormalizeEmail(user.Email)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, userToDoc(user, oid)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrUserAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = oid.Hex()
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opts.timeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	u := docToUser(&doc)
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": models.NormalizeEmail(email)})
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	oids := objectIDs(ids)
	if len(oids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}}, nil)
}

func (r *UserRepository) find(ctx context.Context, filter bson.M, opts *mongoopts.FindOptionsBuilder) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opts.timeout)
	defer cancel()

	if opts == nil {
		opts = mongoopts.Find()
	}
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]models.User, 0, len(docs))
	for i := range docs {
		users = append(users, docToUser(&docs[i]))
	}
	return users, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, email string, upd models.ProfileUpdate) (*models.User, error) {
	email = models.NormalizeEmail(email)

	set := profileSet(upd)
	if len(set) > 0 {
		set["updatedAt"] = time.Now().UTC()

		opCtx, cancel := context.WithTimeout(ctx, r.opts.timeout)
		res, err := r.coll.UpdateOne(opCtx, bson.M{"email": email}, bson.M{"$set": set})
		cancel()
		if err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, repositories.ErrUserNotFound
		}
	}

	return r.FindByEmail(ctx, email)
}

// profileSet переводит ProfileUpdate в $set с именами полей документа
func profileSet(upd models.ProfileUpdate) bson.M {
	set := bson.M{}
	str := func(field string, v *string) {
		if v != nil {
			set[field] = *v
		}
	}
	str("firstName", upd.FirstName)
	str("lastName", upd.LastName)
	str("bio", upd.Bio)
	str("location", upd.Location)
	str("platform", upd.Platform)
	str("handle", upd.Handle)
	str("audienceReach", upd.AudienceReach)
	str("companyName", upd.CompanyName)
	str("noOfEmployees", upd.NoOfEmployees)
	str("budget", upd.Budget)
	str("requirements", upd.Requirements)
	if upd.Links != nil {
		links := make([]linkDoc, 0, len(*upd.Links))
		for _, l := range *upd.Links {
			links = append(links, linkDoc{Label: l.Label, URL: l.URL})
		}
		set["links"] = links
	}
	if upd.Followers != nil {
		set["followers"] = *upd.Followers
	}
	if upd.DOB != nil {
		set["dob"] = *upd.DOB
	}
	return set
}

func (r *UserRepository) Discover(ctx context.Context, filter repositories.UserFilter) ([]models.User, int64, error) {
	query := bson.M{}
	if filter.Role != "" {
		query["role"] = string(filter.Role)
	}
	if filter.ExcludeEmail != "" {
		query["email"] = bson.M{"$ne": models.NormalizeEmail(filter.ExcludeEmail)}
	}

	countCtx, cancel := context.WithTimeout(ctx, r.opts.timeout)
	total, err := r.coll.CountDocuments(countCtx, query)
	cancel()
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	opts := mongoopts.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(filter.Offset))
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	users, err := r.find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	return r.find(ctx, bson.M{}, mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}))
}

func (r *UserRepository) Delete(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opts.timeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"email": models.NormalizeEmail(email)})
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *UserRepository) DeleteWithoutLocation(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opts.timeout)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"location": bson.M{"$exists": false}},
		bson.M{"location": nil},
		bson.M{"location": bson.Regex{Pattern: `^\s*$`}},
	}}
	res, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete users without location: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *UserRepository) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opts.timeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("delete users: %w", err)
	}
	return res.DeletedCount, nil
}
