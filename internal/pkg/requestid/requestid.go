package requestid

import "context"

const Header = "X-Request-Id"

type ctxKey int

const ctxKeyRequestID ctxKey = iota

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// FromContext returns "" when no id was attached.
func FromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}
