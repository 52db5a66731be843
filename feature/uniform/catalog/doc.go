// Package catalog normalizes uniform item descriptors and classifies item types.
//
// Categories collapse to five canonical labels, legacy type names resolve to
// their current names, and sizes are reduced to one canonical spelling. Types
// are classified as main items (stock tracked, sized), accessories (unsized,
// not stock tracked) or custom-ordered items (personalised, never in stock).
package catalog
