// Package template defines the template rendering seam used by the vanilla
// renderer and its components. The default implementation lives in the
// gotemplate subpackage.
package template
