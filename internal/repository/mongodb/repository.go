package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/mamadbah2/khamar/internal/domain/models"
)

const recordsCollection = "daily_records"

// RecordRepository is the durable owner of daily records, keyed by id.
type RecordRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewRecordRepository connects to MongoDB and verifies the connection.
func NewRecordRepository(ctx context.Context, uri string, dbName string, logger *zap.Logger) (*RecordRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	collection := client.Database(dbName).Collection(recordsCollection)
	_, err = collection.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "date", Value: -1}}})
	if err != nil {
		logger.Warn("failed to ensure date index", zap.Error(err))
	}

	return &RecordRepository{
		client:     client,
		collection: collection,
		logger:     logger,
	}, nil
}

// List returns every stored record, newest date first.
func (r *RecordRepository) List(ctx context.Context) ([]models.DailyRecord, error) {
	cursor, err := r.collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query daily records: %w", err)
	}
	defer cursor.Close(ctx)

	records := []models.DailyRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode daily records: %w", err)
	}
	return records, nil
}

// Get returns the record with id.
func (r *RecordRepository) Get(ctx context.Context, id string) (models.DailyRecord, error) {
	var record models.DailyRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.DailyRecord{}, models.ErrRecordNotFound
	}
	if err != nil {
		return models.DailyRecord{}, fmt.Errorf("failed to load daily record %s: %w", id, err)
	}
	return record, nil
}

// Create inserts a record under its caller-assigned id.
func (r *RecordRepository) Create(ctx context.Context, record models.DailyRecord) (models.DailyRecord, error) {
	_, err := r.collection.InsertOne(ctx, record)
	if mongo.IsDuplicateKeyError(err) {
		return models.DailyRecord{}, models.ErrDuplicateRecord
	}
	if err != nil {
		return models.DailyRecord{}, fmt.Errorf("failed to insert daily record: %w", err)
	}
	r.logger.Debug("daily record inserted", zap.String("id", record.ID), zap.String("date", record.Date))
	return record, nil
}

// Update replaces the whole record; there is no partial patch.
func (r *RecordRepository) Update(ctx context.Context, record models.DailyRecord) (models.DailyRecord, error) {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": record.ID}, record)
	if err != nil {
		return models.DailyRecord{}, fmt.Errorf("failed to replace daily record %s: %w", record.ID, err)
	}
	if res.MatchedCount == 0 {
		return models.DailyRecord{}, models.ErrRecordNotFound
	}
	return record, nil
}

// Delete removes the record with id.
func (r *RecordRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete daily record %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return models.ErrRecordNotFound
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *RecordRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
