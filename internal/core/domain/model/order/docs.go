// Package order provides the Order entity and its status lifecycle.
//
// The package includes:
//   - Order: one customer purchase with its derived total and timestamps
//   - Status: the closed set of lifecycle states and their classification
//   - TransitionPolicy: whether status changes must follow the nominal lifecycle
//   - ChangedEvent: the fact published after an order is created, changed or deleted
//
// Key business rules:
//   - Customer name, email, product name, quantity, unit price and shipping
//     address are required and bounded
//   - Total amount is always unit price × quantity and is never taken from a caller
//   - A new order without a status starts as PENDING
//   - DELIVERED and CANCELLED are terminal; every other status is active
//   - The nominal path is PENDING -> CONFIRMED -> PROCESSING -> SHIPPED -> DELIVERED,
//     with CANCELLED reachable from any active status. It is only enforced under
//     the Strict policy; the Permissive policy accepts any change.
package order
