package docs

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// SetBasePath points the document's server at the mount point of the API.
func SetBasePath(basePath string) {
	if basePath == "" {
		basePath = "/"
	}
	SwaggerInfo.BasePath = basePath
}

// Load renders the registered document and validates it as OpenAPI 3.
func Load(ctx context.Context) (*openapi3.T, error) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		return nil, fmt.Errorf("read api document: %w", err)
	}

	doc, err := openapi3.NewLoader().LoadFromData([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("parse api document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate api document: %w", err)
	}
	return doc, nil
}
