package order

import "errors"

// Checkout failure kinds. Handlers match these with errors.Is to pick a
// response status; each wraps a human-readable message.
var (
	// ErrCustomerNotFound: the customer id does not resolve.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrInvalidProducts: empty item list, a non-positive quantity, or the
	// number of resolved products differs from the number of requested items.
	ErrInvalidProducts = errors.New("invalid products")

	// ErrProductNotFound: a requested item has no matching resolved product.
	// Unreachable when the count check holds and ids are distinct; kept as an
	// invariant check for the duplicated-id case the count alone cannot tell apart.
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock: some requested quantity is not strictly below the
	// product's current stock. The whole order is rejected.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrStockConflict: stock changed between validation and the decrement,
	// and the write-time precondition failed. The order row is already
	// persisted when this is reported; stock is untouched.
	ErrStockConflict = errors.New("stock conflict")
)
