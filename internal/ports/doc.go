// Package ports holds the interfaces between layers. Handlers call the
// service ports (validation, accounts); the application layer calls the
// client ports (users API, health).
package ports
