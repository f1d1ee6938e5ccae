// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - FileStore: Glob expansion and file read/write
//
// # Optional Interfaces
//
// These can be nil - the application falls back to built-in defaults:
//
//   - ConfigStore: Application configuration (default limit, size caps)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
