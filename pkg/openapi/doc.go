// Package openapi extracts form fields from the request body of an OpenAPI 3
// operation. Properties tagged with the x-formgen-numeric extension, or typed
// number/integer with a currency or money format, become numeric components
// carrying their masking configuration.
package openapi
