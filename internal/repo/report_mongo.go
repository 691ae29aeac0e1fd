package repo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"roadwatch.dev/backend/internal/model"
)

type reportDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserName    string             `bson:"userName"`
	Type        string             `bson:"type"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Location    string             `bson:"location,omitempty"`
	Image       *imageDocument     `bson:"image,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

type imageDocument struct {
	Data        []byte `bson:"data"`
	ContentType string `bson:"contentType"`
}

// MongoReport stores reports as documents of a MongoDB collection.
type MongoReport struct {
	coll      *mongo.Collection
	opTimeout time.Duration
}

var _ ReportStore = (*MongoReport)(nil)

func NewMongoReport(coll *mongo.Collection, opTimeout time.Duration) *MongoReport {
	return &MongoReport{coll: coll, opTimeout: opTimeout}
}

// EnsureIndexes creates the createdAt index used by operators browsing the collection.
func (r *MongoReport) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, r.opTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	return errors.Wrap(err, "mongo: create createdAt index")
}

func (r *MongoReport) Create(ctx context.Context, report *model.Report) (*model.Report, error) {
	ctx, cancel := withTimeout(ctx, r.opTimeout)
	defer cancel()

	doc := toReportDocument(report)
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = now()
	doc.UpdatedAt = doc.CreatedAt

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "mongo: insert report")
	}

	return doc.toModel(), nil
}

func (r *MongoReport) ListAll(ctx context.Context) ([]*model.Report, error) {
	ctx, cancel := withTimeout(ctx, r.opTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "mongo: find reports")
	}

	var docs []reportDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "mongo: decode reports")
	}

	return lo.Map(docs, func(doc reportDocument, _ int) *model.Report {
		return doc.toModel()
	}), nil
}

func (r *MongoReport) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, r.opTimeout)
	defer cancel()

	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}

func toReportDocument(report *model.Report) *reportDocument {
	doc := &reportDocument{
		UserName:    report.UserName,
		Type:        report.Type,
		Title:       report.Title,
		Description: report.Description,
		Location:    report.Location,
	}
	if report.Image != nil {
		doc.Image = &imageDocument{
			Data:        report.Image.Data,
			ContentType: report.Image.ContentType,
		}
	}
	return doc
}

func (d *reportDocument) toModel() *model.Report {
	report := &model.Report{
		ID:          d.ID.Hex(),
		UserName:    d.UserName,
		Type:        d.Type,
		Title:       d.Title,
		Description: d.Description,
		Location:    d.Location,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
	if d.Image != nil {
		report.Image = &model.ReportImage{
			Data:        d.Image.Data,
			ContentType: d.Image.ContentType,
		}
	}
	return report
}
