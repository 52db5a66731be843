// Package models defines the gorm models of the uniform inventory: stock
// records, member uniform records and their issued items.
package models
