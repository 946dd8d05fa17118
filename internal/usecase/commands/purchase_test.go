//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"purchase-pipeline/internal/domain/purchase"
	"purchase-pipeline/internal/pkg/clock"
	"purchase-pipeline/internal/pkg/errs"
	"purchase-pipeline/internal/pkg/lifecycle"
	"purchase-pipeline/internal/pkg/metrics"
	"purchase-pipeline/internal/usecase/commands"
	"purchase-pipeline/tests/common/builder"
	commandsmock "purchase-pipeline/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PurchaseCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockPublisher *commandsmock.MockPurchasePublisher
	mockReadiness *commandsmock.MockReadinessReader
	mockCounter   *commandsmock.MockStreamCounter
	clock         *clock.MockClock
	cmds          commands.PurchaseCommands
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func (s *PurchaseCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPublisher = commandsmock.NewMockPurchasePublisher(s.mockCtrl)
	s.mockReadiness = commandsmock.NewMockReadinessReader(s.mockCtrl)
	s.mockCounter = commandsmock.NewMockStreamCounter(s.mockCtrl)
	s.clock = clock.NewMockClock(fixedNow)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.cmds = commands.NewPurchaseCommands(s.mockPublisher, s.mockReadiness, s.mockCounter, s.clock, logger)
}

func (s *PurchaseCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPurchaseCommandsSuite(t *testing.T) {
	suite.Run(t, new(PurchaseCommandsTestSuite))
}

func (s *PurchaseCommandsTestSuite) TestSubmit_Success() {
	ctx := context.Background()
	in := builder.NewPurchaseBuilder().BuildSubmitInput()

	s.mockReadiness.EXPECT().DependencyReady(lifecycle.DependencyStream).Return(true)
	s.mockPublisher.EXPECT().Publish(ctx, []byte("u1"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, value []byte) error {
			decoded, err := purchase.DecodeEvent(value, time.Time{})
			require.NoError(s.T(), err)
			s.Equal("alice", decoded.Username())
			s.Equal(19.99, decoded.Price())
			s.True(decoded.Timestamp().Equal(fixedNow))
			return nil
		})
	s.mockCounter.EXPECT().CountStream(metrics.EventPublished)

	p, err := s.cmds.Submit(ctx, in)
	s.Require().NoError(err)
	s.Equal("u1", p.UserID())
	s.True(p.Timestamp().Equal(fixedNow))
}

func (s *PurchaseCommandsTestSuite) TestSubmit_ValidationPublishesNothing() {
	cases := []struct {
		name   string
		mutate func(*builder.PurchaseBuilder)
	}{
		{name: "empty username", mutate: func(b *builder.PurchaseBuilder) { b.WithUsername("") }},
		{name: "empty userid", mutate: func(b *builder.PurchaseBuilder) { b.WithUserID(" ") }},
		{name: "zero price", mutate: func(b *builder.PurchaseBuilder) { b.WithPrice(0) }},
		{name: "negative price", mutate: func(b *builder.PurchaseBuilder) { b.WithPrice(-4) }},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			in := builder.NewPurchaseBuilder().With(tc.mutate).BuildSubmitInput()

			_, err := s.cmds.Submit(context.Background(), in)
			s.Require().Error(err)
			s.True(errs.Is(err, purchase.ErrValidation))
		})
	}
}

func (s *PurchaseCommandsTestSuite) TestSubmit_StreamNotReady() {
	s.mockReadiness.EXPECT().DependencyReady(lifecycle.DependencyStream).Return(false)

	_, err := s.cmds.Submit(context.Background(), builder.NewPurchaseBuilder().BuildSubmitInput())
	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrStreamUnavailable))
}

func (s *PurchaseCommandsTestSuite) TestSubmit_PublishFailure() {
	publishErr := errors.New("leader not available")
	s.mockReadiness.EXPECT().DependencyReady(lifecycle.DependencyStream).Return(true)
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(publishErr).Times(1)
	s.mockCounter.EXPECT().CountStream(metrics.EventPublishFailed)

	_, err := s.cmds.Submit(context.Background(), builder.NewPurchaseBuilder().BuildSubmitInput())
	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrPublishFailed))
	assert.ErrorIs(s.T(), err, publishErr)
}
