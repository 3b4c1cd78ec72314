package contextkeys

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// AdminID is the context key for the authenticated admin's user ID.
	AdminID contextKey = "adminID"
	// AdminEmail is the context key for the authenticated admin's email.
	AdminEmail contextKey = "adminEmail"
	// AdminRole is the context key for the authenticated admin's role.
	AdminRole contextKey = "adminRole"
)
