// Package numeric holds the configuration of a numeric (currency) text input
// and its export onto rendered elements.
//
// FieldConfiguration stores optional overrides for each masking option and
// resolves them to the documented defaults on demand. Augment writes the
// resolved values as data-maskmoney-* attributes together with MarkerClass,
// which the browser runtime (formgen-numeric.js) and pkg/activator use to find
// the element again and rebuild the masking options.
//
// Prefix and suffix differ from the other six options: they have no default,
// and their attributes are only emitted when an override was set, so an empty
// affix can be told apart from no affix at all.
package numeric
