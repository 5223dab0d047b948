// Package containers persists ingredient containers and exposes them over HTTP.
//
// A container row describes either a slotless storage (Slots == 0, Capacity is
// the total capacity) or a slotted one (Capacity is per slot). Contents are kept
// in the container_slots table and rebuilt into an inventory.Collection or an
// inventory.Slots whenever a container takes part in a deposit or a transfer.
//
// # HTTP Endpoints
//
//   - GET /containers : Lists all containers.
//   - POST /containers : Creates an empty container.
//   - GET /containers/:name : Shows one container.
//   - POST /containers/:name/deposit : Inserts an item stack.
package containers
