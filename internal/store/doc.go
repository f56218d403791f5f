// Package store defines the programmatic contract of the alarm record store:
// the Provider interface with its insert/update/delete/get and query entry
// points, the query parameters, the cursor interfaces returned by queries,
// and the error taxonomy.
//
// Implementations live in subpackages; see store/memory for the in-memory
// provider. Durable providers are a future variant and share this contract.
package store
