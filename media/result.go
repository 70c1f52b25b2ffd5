// Package media uploads product images to a hosted media service.
package media

import "context"

// Uploader turns a local file into a durable, network-accessible reference.
type Uploader interface {
	Upload(ctx context.Context, localPath string) (Result, error)
}

// Result is what an Uploader hands back: either Structured or PlainReference.
type Result interface {
	isResult()
}

// Structured is an upload response carrying URL fields.
type Structured struct {
	SecureURL string
	URL       string
	PublicID  string
}

// PlainReference is an upload response that is already the reference itself.
type PlainReference string

func (Structured) isResult()     {}
func (PlainReference) isResult() {}

// Reference resolves a Result to the string stored on the product.
// Precedence is SecureURL, then URL, then the raw reference.
func Reference(r Result) string {
	switch v := r.(type) {
	case Structured:
		if v.SecureURL != "" {
			return v.SecureURL
		}
		return v.URL
	case *Structured:
		if v == nil {
			return ""
		}
		return Reference(*v)
	case PlainReference:
		return string(v)
	default:
		return ""
	}
}
