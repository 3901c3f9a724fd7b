package openapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-numeric-input/pkg/model"
	"github.com/goliatone/go-numeric-input/pkg/numeric"
)

const (
	NumericExtension     = "x-formgen-numeric"
	LabelExtension       = "x-formgen-label"
	PlaceholderExtension = "x-formgen-placeholder"
	HelpTextExtension    = "x-formgen-helptext"
	OrderExtension       = "x-formgen-order"
)

var ErrOperationNotFound = errors.New("openapi: operation not found")

// Option configures a Parser.
type Option func(*Parser)

// WithValidation validates the document before extracting fields.
func WithValidation(enabled bool) Option {
	return func(p *Parser) {
		p.validate = enabled
	}
}

// WithLabeler replaces the label derivation used for properties without an
// explicit title or label extension.
func WithLabeler(labeler func(string) string) Option {
	return func(p *Parser) {
		if labeler != nil {
			p.labeler = labeler
		}
	}
}

// Parser turns OpenAPI documents into fields.
type Parser struct {
	validate bool
	labeler  func(string) string
}

// New constructs a Parser.
func New(options ...Option) *Parser {
	p := &Parser{labeler: model.DefaultLabeler}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// FieldsFromDocument is shorthand for New(options...).Fields.
func FieldsFromDocument(ctx context.Context, raw []byte, operationID string, options ...Option) ([]model.Field, error) {
	return New(options...).Fields(ctx, raw, operationID)
}

// Operations lists the operation IDs of the document, sorted. Operations
// without an ID are listed as "<method>:<path>".
func (p *Parser) Operations(ctx context.Context, raw []byte) ([]string, error) {
	spec, err := p.load(ctx, raw)
	if err != nil {
		return nil, err
	}
	var ids []string
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			ids = append(ids, operationID(method, path, op))
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Fields extracts the request body properties of operationID.
func (p *Parser) Fields(ctx context.Context, raw []byte, operationID string) ([]model.Field, error) {
	spec, err := p.load(ctx, raw)
	if err != nil {
		return nil, err
	}
	op := findOperation(spec, operationID)
	if op == nil {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}
	schema := requestSchema(op.RequestBody)
	if schema == nil {
		return nil, nil
	}
	return p.fieldsFromSchema(schema)
}

func (p *Parser) load(ctx context.Context, raw []byte) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if p.validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("openapi: document does not contain any paths")
	}
	return spec, nil
}

func findOperation(spec *openapi3.T, id string) *openapi3.Operation {
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if operationID(method, path, op) == id {
				return op
			}
		}
	}
	return nil
}

func operationID(method, path string, op *openapi3.Operation) string {
	if op != nil && op.OperationID != "" {
		return op.OperationID
	}
	return strings.ToLower(method) + ":" + path
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	keys := make([]string, 0, len(content))
	for key := range content {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if mt := content[key]; mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

type orderedField struct {
	order int
	field model.Field
}

func (p *Parser) fieldsFromSchema(schema *openapi3.Schema) ([]model.Field, error) {
	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	ordered := make([]orderedField, 0, len(schema.Properties))
	for name, ref := range schema.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		field, err := p.convertProperty(name, ref.Value, required[name])
		if err != nil {
			return nil, err
		}
		order, ok := intExtension(ref.Value.Extensions, OrderExtension)
		if !ok {
			order = int(^uint(0) >> 1)
		}
		ordered = append(ordered, orderedField{order: order, field: field})
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].order != ordered[j].order {
			return ordered[i].order < ordered[j].order
		}
		return ordered[i].field.Name < ordered[j].field.Name
	})

	fields := make([]model.Field, 0, len(ordered))
	for _, entry := range ordered {
		fields = append(fields, entry.field)
	}
	return fields, nil
}

func (p *Parser) convertProperty(name string, src *openapi3.Schema, required bool) (model.Field, error) {
	field := model.Field{
		Name:        name,
		Type:        fieldType(src.Type),
		Format:      src.Format,
		Required:    required,
		Label:       src.Title,
		Description: src.Description,
		Default:     src.Default,
	}
	if src.MaxLength != nil {
		field.MaxLength = int(*src.MaxLength)
	}
	if label, ok := stringExtension(src.Extensions, LabelExtension); ok {
		field.Label = label
	}
	if field.Label == "" {
		field.Label = p.labeler(name)
	}
	if placeholder, ok := stringExtension(src.Extensions, PlaceholderExtension); ok {
		field.Placeholder = placeholder
	}
	if help, ok := stringExtension(src.Extensions, HelpTextExtension); ok {
		field.UIHints = map[string]string{"helpText": help}
	}

	raw, ok := src.Extensions[NumericExtension]
	if !ok {
		return field, nil
	}
	config, err := numericConfig(raw)
	if err != nil {
		return model.Field{}, fmt.Errorf("openapi: property %q: %s: %w", name, NumericExtension, err)
	}
	if config == nil {
		return field, nil
	}
	field.Metadata = map[string]string{model.ComponentKey: "numeric"}
	if len(config) > 0 {
		payload, err := json.Marshal(config)
		if err != nil {
			return model.Field{}, fmt.Errorf("openapi: property %q: encode config: %w", name, err)
		}
		field.Metadata[model.ComponentConfigKey] = string(payload)
	}
	return field, nil
}

// numericConfig normalises the extension value. true enables the component
// with defaults, false disables it, a string names a preset and an object is
// the component configuration.
func numericConfig(raw any) (map[string]any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case bool:
		if !v {
			return nil, nil
		}
		return map[string]any{}, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return map[string]any{}, nil
		}
		return map[string]any{"preset": strings.TrimSpace(v)}, nil
	case map[string]any:
		if _, err := numeric.FromMap(v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported value %T", raw)
	}
}

func fieldType(types *openapi3.Types) model.FieldType {
	if types == nil {
		return model.FieldTypeString
	}
	switch {
	case types.Is(openapi3.TypeInteger):
		return model.FieldTypeInteger
	case types.Is(openapi3.TypeNumber):
		return model.FieldTypeNumber
	case types.Is(openapi3.TypeBoolean):
		return model.FieldTypeBoolean
	default:
		return model.FieldTypeString
	}
}

func stringExtension(ext map[string]any, key string) (string, bool) {
	value, ok := ext[key].(string)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return strings.TrimSpace(value), true
}

func intExtension(ext map[string]any, key string) (int, bool) {
	switch v := ext[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	default:
		return 0, false
	}
}
