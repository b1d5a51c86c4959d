package repository

import (
	"context"
	"time"

	"furnishop/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		collection: db.Collection("products"),
	}
}

// productDoc is the stored shape. IDs live in Mongo as uuid strings; the
// conversion to uuid.UUID happens only at this boundary.
type productDoc struct {
	ID          string                `bson:"_id"`
	Name        string                `bson:"name"`
	Description string                `bson:"description"`
	Price       float64               `bson:"price"`
	Category    string                `bson:"category"`
	Stock       int                   `bson:"stock"`
	Image       string                `bson:"image,omitempty"`
	Models      []models.ModelVariant `bson:"models,omitempty"`
	ModelURL    string                `bson:"modelUrl,omitempty"`
	CreatedAt   time.Time             `bson:"created_at"`
	UpdatedAt   time.Time             `bson:"updated_at"`
}

func toDoc(p *models.Product) *productDoc {
	return &productDoc{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		Image:       p.Image,
		Models:      p.Models,
		ModelURL:    p.ModelURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (d *productDoc) toModel() models.Product {
	id, _ := uuid.Parse(d.ID)
	p := models.Product{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Category:    d.Category,
		Stock:       d.Stock,
		Image:       d.Image,
		Models:      d.Models,
		ModelURL:    d.ModelURL,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	p.NormalizeModels()
	return p
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	filter := bson.M{"_id": id.String(), "deleted_at": bson.M{"$exists": false}}
	var doc productDoc
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, err
	}
	product := doc.toModel()
	return &product, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	filter := bson.M{"deleted_at": bson.M{"$exists": false}}
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(docs))
	for i := range docs {
		products = append(products, docs[i].toModel())
	}
	return products, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	_, err := r.collection.InsertOne(ctx, toDoc(product))
	return err
}

// updateDoc builds the replacement for the mutable product fields. The
// variant list is stored exactly as submitted, no merge, and the legacy
// modelUrl field is cleared so an emptied list cannot resurrect from it on
// the next read.
func updateDoc(product *models.Product) bson.M {
	return bson.M{"$set": bson.M{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"category":    product.Category,
		"stock":       product.Stock,
		"image":       product.Image,
		"models":      product.Models,
		"modelUrl":    "",
		"updated_at":  time.Now().UTC(),
	}}
}

// Update replaces the mutable product fields wholesale, the variant list
// included: the submitted list is exactly what gets stored, no merge.
func (r *ProductRepository) Update(ctx context.Context, id uuid.UUID, product *models.Product) (int64, error) {
	filter := bson.M{"_id": id.String(), "deleted_at": bson.M{"$exists": false}}
	res, err := r.collection.UpdateOne(ctx, filter, updateDoc(product))
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Delete performs a soft delete.
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	filter := bson.M{"_id": id.String(), "deleted_at": bson.M{"$exists": false}}
	update := bson.M{"$set": bson.M{"deleted_at": time.Now().UTC()}}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}
