// Package ports defines the contracts between the order workflow and its
// infrastructure: persistence, transactions and change publication.
// Adapters under internal/adapters implement these interfaces.
package ports
