// Package journal records committed transfers in the object store.
//
// Every record is written as one JSON object keyed by date and a random id:
//
//	<prefix>/<yyyy>/<mm>/<dd>/<uuid>.json
//
// List reads the most recent records back, fetching objects concurrently. A
// journal created with a nil client or a disabled Config accepts and discards
// every record.
package journal
