// Package models contains GORM persistence models for the return request
// grid. Domain types stay free of ORM tags; each model converts itself with
// ToDomain.
//
// References between tables are weak: a return request may point at an
// order item, customer or store that no longer exists. The schema therefore
// declares no foreign key constraints.
package models
