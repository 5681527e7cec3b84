package email

import (
	"context"
	"fmt"

	"github.com/openfare/fareledger/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("notify customer %d: %s for booking %s on flight %d (total %.2f)\n", event.CustomerID, event.Type, event.Reference, event.FlightID, event.TotalPrice)
	return nil
}
