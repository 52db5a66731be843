// Package stock serves the read-only stock snapshot consumed by the demand
// forecasting job.
//
// A snapshot lists quantity on hand and quantity issued per canonical
// (category, type, size). It is cached for a short TTL, with concurrent
// rebuilds collapsed into one, and can be exported as an xlsx workbook or
// published to object storage under a fixed key.
package stock
