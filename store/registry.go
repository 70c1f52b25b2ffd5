package store

import (
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Registry decodes embedded documents held in interface values as bson.M so
// free-form fields such as sizeChart render as plain JSON objects.
var Registry = bson.NewRegistryBuilder().
	RegisterTypeMapEntry(bsontype.EmbeddedDocument, reflect.TypeOf(bson.M{})).
	Build()
