package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is the stored product document.
type Product struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Category    string             `json:"category" bson:"category"`
	SubCategory string             `json:"subCategory" bson:"subCategory"`
	Sizes       []string           `json:"sizes" bson:"sizes"`
	SizeChart   []any              `json:"sizeChart" bson:"sizeChart"`
	Bestseller  bool               `json:"bestseller" bson:"bestseller"`
	Date        int64              `json:"date" bson:"date"`
	Image1      string             `json:"image1" bson:"image1"`
	Image2      string             `json:"image2" bson:"image2"`
	Image3      string             `json:"image3" bson:"image3"`
	Image4      string             `json:"image4" bson:"image4"`
}

// Document is an untyped set of product fields keyed by their stored path.
// Values are strings, lists or JSON-decoded values as they arrived on the wire.
type Document map[string]any

// Uploads maps an image slot to the local path of its uploaded file.
type Uploads map[string]string

// ImageSlots lists the image attachment slots in order.
var ImageSlots = [4]string{"image1", "image2", "image3", "image4"}

// Stats summarizes the product collection.
type Stats struct {
	TotalProducts int64 `json:"total_products"`
	Bestsellers   int64 `json:"bestsellers"`
}
