package ports

import "context"

// SecretReader resolves a secret reference such as "owd/main/init_data" to
// its value.
type SecretReader interface {
	Get(ctx context.Context, key string) (string, error)
}
