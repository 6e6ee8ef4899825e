// Package models defines the core domain models for the sheet ledger.
//
// # Entities
//
//   - User: an account created on first successful sign-in with an external identity provider
//   - Sheet: a named container scoping expenses and categories to one owner
//   - Expense: a dated, categorized money entry on a sheet
//   - SheetCategory: a curated, orderable category name recognized by a sheet
//   - Annotation: free-text note attached to one (expense, column) pair
//
// # Design Principles
//
// 1. **Exact money**: amounts are shopspring decimals, persisted as integer cents
// 2. **Calendar dates**: expense dates are civil dates with no time zone attached
// 3. **Weak references**: relationships are held as IDs, never as pointers
// 4. **Optimistic concurrency**: sheets and expenses carry a Version that every update must match
//
// Ownership is exclusive: a sheet owns its expenses and categories, and every read or
// write is scoped by the owning user's ID.
package models
