package booking

import "context"

type Repository interface {
	Create(ctx context.Context, b *Booking) error
}
