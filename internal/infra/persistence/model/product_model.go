package model

import (
	"time"

	"garflex/internal/domain/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ProductModel mirrors one document of the 'products' collection.
type ProductModel struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Name        string        `bson:"name"`
	Description string        `bson:"description,omitempty"`
	Price       float64       `bson:"price"`
	Category    string        `bson:"category,omitempty"`
	ImageURL    string        `bson:"image_url,omitempty"`
	Stock       int           `bson:"stock"`
	CreatedBy   string        `bson:"created_by"`
	CreatedAt   time.Time     `bson:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at"`
}

// ToDomain maps the persistence model back to a pure domain entity.
func (m *ProductModel) ToDomain() *entity.Product {
	return &entity.Product{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
		Stock:       m.Stock,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ProductFromDomain maps a domain entity onto the persistence model.
func ProductFromDomain(product *entity.Product) (*ProductModel, error) {
	m := &ProductModel{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		ImageURL:    product.ImageURL,
		Stock:       product.Stock,
		CreatedBy:   product.CreatedBy,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}

	if product.ID != "" {
		id, err := bson.ObjectIDFromHex(product.ID)
		if err != nil {
			return nil, err
		}
		m.ID = id
	}

	return m, nil
}
