package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
	"github.com/stretchr/testify/suite"
)

type fakeEmail struct {
	mu   sync.Mutex
	sent []string
	fail bool
}

func (f *fakeEmail) Send(_ context.Context, to, subject, html string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("email provider down")
	}
	f.sent = append(f.sent, to)
	return nil
}

func (f *fakeEmail) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakeSMS struct {
	mu   sync.Mutex
	sent []string
	fail bool
}

func (f *fakeSMS) Send(_ context.Context, phone, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("sms gateway down")
	}
	f.sent = append(f.sent, phone)
	return nil
}

func (f *fakeSMS) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type DispatcherSuite struct {
	suite.Suite
	email *fakeEmail
	sms   *fakeSMS
	store *MemoryStore
	d     *Dispatcher
}

func (s *DispatcherSuite) SetupTest() {
	s.email = &fakeEmail{}
	s.sms = &fakeSMS{}
	s.store = NewMemoryStore()
	s.d = NewDispatcher(nil, s.store, s.email, s.sms)
}

func (s *DispatcherSuite) order(status models.OrderStatus) models.Order {
	return models.Order{
		ID:            11,
		OrderRef:      "20250101-abc",
		UserID:        "user1",
		Status:        status,
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		CustomerPhone: "+15550001111",
		TotalAmount:   42.50,
	}
}

func (s *DispatcherSuite) TestFanOutReachesAllChannels() {
	err := s.d.OrderStatusChanged(context.Background(), s.order(models.OrderStatusConfirmed))
	s.Require().NoError(err)

	s.Equal(1, s.email.count())
	s.Equal(1, s.sms.count())

	list, err := s.store.List(context.Background(), "user1")
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(models.StatusMessage(models.OrderStatusConfirmed, "20250101-abc"), list[0].Message)
}

func (s *DispatcherSuite) TestEmailFailureDoesNotSuppressSMS() {
	s.email.fail = true

	err := s.d.OrderStatusChanged(context.Background(), s.order(models.OrderStatusReady))
	s.Require().NoError(err, "channel failures must not surface to the caller")

	s.Equal(0, s.email.count())
	s.Equal(1, s.sms.count())
}

func (s *DispatcherSuite) TestSMSFailureDoesNotSuppressEmail() {
	s.sms.fail = true

	err := s.d.OrderStatusChanged(context.Background(), s.order(models.OrderStatusReady))
	s.Require().NoError(err)

	s.Equal(1, s.email.count())
	s.Equal(0, s.sms.count())
}

func (s *DispatcherSuite) TestDuplicateStatusNotifiesOnce() {
	ctx := context.Background()
	order := s.order(models.OrderStatusPreparing)

	s.Require().NoError(s.d.OrderStatusChanged(ctx, order))
	s.Require().NoError(s.d.OrderStatusChanged(ctx, order))

	list, _ := s.store.List(ctx, "user1")
	s.Len(list, 1, "same (order, status) pair must produce exactly one notification")
	s.Equal(1, s.email.count(), "duplicate delivery must not resend email")
	s.Equal(1, s.sms.count(), "duplicate delivery must not resend SMS")

	// A genuine transition notifies again.
	order.Status = models.OrderStatusReady
	s.Require().NoError(s.d.OrderStatusChanged(ctx, order))

	list, _ = s.store.List(ctx, "user1")
	s.Len(list, 2)
}

func (s *DispatcherSuite) TestMissingContactSkipsChannel() {
	order := s.order(models.OrderStatusConfirmed)
	order.CustomerPhone = ""

	s.Require().NoError(s.d.OrderStatusChanged(context.Background(), order))
	s.Equal(1, s.email.count())
	s.Equal(0, s.sms.count())
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherSuite))
}
