package contextkeys

// contextKey is unexported to avoid collisions with other packages.
type contextKey string

// DBContextKey is the key the request-scoped *gorm.DB is stored under.
const DBContextKey = contextKey("db")

// CompanyIDContextKey is the key the authenticated company id is stored under.
const CompanyIDContextKey = contextKey("companyID")
