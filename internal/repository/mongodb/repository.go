package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/legend-harry/pranir-aquatech/internal/domain/models"
)

const (
	analysisCollection = "analysis_history"
	reportCollection   = "recommendation_reports"
	outlookCollection  = "market_outlooks"
)

// Repository defines the interface for analysis and recommendation history
// storage.
type Repository interface {
	SaveAnalysis(ctx context.Context, record models.AnalysisRecord) error
	SaveRecommendationReport(ctx context.Context, report models.RecommendationReport) error
	SaveMarketOutlook(ctx context.Context, outlook models.MarketOutlook) error
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client *mongo.Client
	dbName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client: client,
		dbName: dbName,
	}, nil
}

// SaveAnalysis appends one completed ROI analysis to the history collection.
func (r *MongoDBRepository) SaveAnalysis(ctx context.Context, record models.AnalysisRecord) error {
	collection := r.client.Database(r.dbName).Collection(analysisCollection)
	if _, err := collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert analysis record: %w", err)
	}
	return nil
}

// SaveRecommendationReport appends one advisory run to the report collection.
func (r *MongoDBRepository) SaveRecommendationReport(ctx context.Context, report models.RecommendationReport) error {
	collection := r.client.Database(r.dbName).Collection(reportCollection)
	if _, err := collection.InsertOne(ctx, report); err != nil {
		return fmt.Errorf("failed to insert recommendation report: %w", err)
	}
	return nil
}

// SaveMarketOutlook persists a scheduled forecast snapshot.
func (r *MongoDBRepository) SaveMarketOutlook(ctx context.Context, outlook models.MarketOutlook) error {
	collection := r.client.Database(r.dbName).Collection(outlookCollection)
	if _, err := collection.InsertOne(ctx, outlook); err != nil {
		return fmt.Errorf("failed to insert market outlook: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
