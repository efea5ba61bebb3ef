// Package postgres provides PostgreSQL implementations of the store
// interfaces: users, traveler profiles and inventories. Queries are built
// with squirrel and executed through database/sql on the pgx stdlib
// driver. The schema ships as embedded goose migrations.
package postgres
