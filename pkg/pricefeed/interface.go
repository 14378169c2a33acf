package pricefeed

import "context"

// IPriceFeed looks up the current value of a tracked topic.
type IPriceFeed interface {
	Lookup(ctx context.Context, topic string) (Quote, error)
}
