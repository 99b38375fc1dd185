package passkey

import (
	"context"
	"time"
)

// Cache holds in-progress ceremony state. GetDel is get-and-delete:
// ceremony state is single-use by contract, so a second read must miss.
type Cache interface {
	SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) error
	GetDel(ctx context.Context, key string) (value []byte, ok bool, err error)
}
