// Package store defines the persistence ports of Timension: registered
// users and the read-only traveler profile with its inventory. The
// interfaces keep the services independent of the database in use;
// internal/platform/postgres provides the PostgreSQL implementation.
package store
