// Package requestid carries the per-request correlation id across HTTP and gRPC.
package requestid

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"
)

// Header is used both as the HTTP header and the gRPC metadata key.
const Header = "X-Request-ID"

type ctxKey struct{}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the id stored by WithID, falling back to incoming gRPC
// metadata. It returns "" when neither is present.
func FromContext(ctx context.Context) string {
	if val, ok := ctx.Value(ctxKey{}).(string); ok {
		return val
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get(Header); len(val) > 0 {
			return val[0]
		}
	}
	return ""
}

// Ensure returns ctx carrying an id, generating one when none was supplied.
func Ensure(ctx context.Context, supplied string) (context.Context, string) {
	id := supplied
	if id == "" {
		id = FromContext(ctx)
	}
	if id == "" {
		id = uuid.NewString()
	}
	return WithID(ctx, id), id
}
