package users

import (
	"context"
	"time"

	"go.appointy.com/gqlcore/schemabuilder"
)

// RegisterSubscription registers every subscription field.
func RegisterSubscription(sb *schemabuilder.Schema) {
	s := sb.Subscription()

	s.FieldFunc("currentTime", func(ctx context.Context) func() time.Time {
		return time.Now
	})
}