package store

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"nexzen-backend/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CastError reports a value that cannot be stored at a path.
type CastError struct {
	Kind  string
	Path  string
	Value any
}

func (e *CastError) Error() string {
	return fmt.Sprintf("Cast to %s failed for value %q (type %T) at path %q", e.Kind, fmt.Sprint(e.Value), e.Value, e.Path)
}

// ValidationError reports a required path missing from a new product.
type ValidationError struct {
	Path string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Product validation failed: %s: Path `%s` is required.", e.Path, e.Path)
}

type caster func(path string, v any) (any, error)

var productSchema = map[string]caster{
	"name":        castString,
	"description": castString,
	"price":       castNumber,
	"category":    castString,
	"subCategory": castString,
	"sizes":       castStringList,
	"sizeChart":   castList,
	"bestseller":  castBool,
	"date":        castInt,
	"image1":      castString,
	"image2":      castString,
	"image3":      castString,
	"image4":      castString,
}

// BuildProduct casts a complete document into a new Product.
func BuildProduct(doc models.Document) (models.Product, error) {
	set, err := BuildUpdate(doc)
	if err != nil {
		return models.Product{}, err
	}
	if name, _ := set["name"].(string); name == "" {
		return models.Product{}, &ValidationError{Path: "name"}
	}

	p := models.Product{
		Sizes:     []string{},
		SizeChart: []any{},
	}
	applySet(&p, set)
	return p, nil
}

// BuildUpdate casts the known paths of a patch into a $set document.
// Unknown paths are dropped; nil values are kept as nil.
func BuildUpdate(patch models.Document) (bson.M, error) {
	set := bson.M{}
	for path, v := range patch {
		cast, ok := productSchema[path]
		if !ok {
			continue
		}
		if v == nil {
			set[path] = nil
			continue
		}
		out, err := cast(path, v)
		if err != nil {
			return nil, err
		}
		set[path] = out
	}
	return set, nil
}

func applySet(p *models.Product, set bson.M) {
	for path, v := range set {
		switch path {
		case "name":
			p.Name, _ = v.(string)
		case "description":
			p.Description, _ = v.(string)
		case "price":
			p.Price, _ = v.(float64)
		case "category":
			p.Category, _ = v.(string)
		case "subCategory":
			p.SubCategory, _ = v.(string)
		case "sizes":
			if sizes, ok := v.([]string); ok {
				p.Sizes = sizes
			}
		case "sizeChart":
			if chart, ok := v.([]any); ok {
				p.SizeChart = chart
			}
		case "bestseller":
			p.Bestseller, _ = v.(bool)
		case "date":
			p.Date, _ = v.(int64)
		case "image1":
			p.Image1, _ = v.(string)
		case "image2":
			p.Image2, _ = v.(string)
		case "image3":
			p.Image3, _ = v.(string)
		case "image4":
			p.Image4, _ = v.(string)
		}
	}
}

func castString(path string, v any) (any, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case bool, float64, float32, int, int32, int64, json.Number:
		return fmt.Sprint(s), nil
	default:
		return nil, &CastError{Kind: "string", Path: path, Value: v}
	}
}

func castNumber(path string, v any) (any, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return nil, &CastError{Kind: "Number", Path: path, Value: v}
		}
		return f, nil
	case string:
		s := strings.TrimSpace(n)
		// A blank form field clears the number.
		if s == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &CastError{Kind: "Number", Path: path, Value: v}
		}
		return f, nil
	default:
		return nil, &CastError{Kind: "Number", Path: path, Value: v}
	}
}

func castInt(path string, v any) (any, error) {
	f, err := castNumber(path, v)
	if err != nil || f == nil {
		return nil, err
	}
	return int64(f.(float64)), nil
}

func castBool(path string, v any) (any, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		switch b {
		case "true", "1", "yes":
			return true, nil
		case "false", "0", "no":
			return false, nil
		}
	case float64:
		switch b {
		case 1:
			return true, nil
		case 0:
			return false, nil
		}
	}
	return nil, &CastError{Kind: "Boolean", Path: path, Value: v}
}

func castStringList(path string, v any) (any, error) {
	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, err := castString(path, item)
			if err != nil {
				return nil, err
			}
			out = append(out, s.(string))
		}
		return out, nil
	case string:
		return []string{list}, nil
	default:
		return nil, &CastError{Kind: "[string]", Path: path, Value: v}
	}
}

func castList(path string, v any) (any, error) {
	switch list := v.(type) {
	case []any:
		return list, nil
	case []string:
		out := make([]any, len(list))
		for i, item := range list {
			out[i] = item
		}
		return out, nil
	case []map[string]any:
		out := make([]any, len(list))
		for i, item := range list {
			out[i] = item
		}
		return out, nil
	default:
		return nil, &CastError{Kind: "Array", Path: path, Value: v}
	}
}
