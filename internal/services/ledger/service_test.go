package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/velmark/screenhunt/internal/dependencies/mocks"
	"github.com/velmark/screenhunt/internal/model"
	"github.com/velmark/screenhunt/internal/storage/memory"
	"github.com/velmark/screenhunt/internal/testutil"
)

type LedgerSuite struct {
	suite.Suite
	service *Service
	storage *memory.Storage
	clock   *mocks.MockClock
	ctx     context.Context
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerSuite))
}

func (s *LedgerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *LedgerSuite) TestSubmit() {
	sub, err := s.service.Submit(s.ctx, "1001", "https://img.example/a.png")
	s.Require().NoError(err)
	s.Equal(model.SubmissionID(1), sub.ID)
	s.Equal(model.PlayerID("1001"), sub.Owner)
	s.Equal("https://img.example/a.png", sub.ResourceURL)
	s.Equal(s.clock.CurrentTime, sub.SubmittedAt)
	s.True(sub.Valid)
	s.Equal(model.ApprovalPending, sub.Approval)
}

func (s *LedgerSuite) TestSubmitDuplicateURLAllowed() {
	first, err := s.service.Submit(s.ctx, "1001", "https://img.example/a.png")
	s.Require().NoError(err)
	s.clock.Advance(time.Minute)
	second, err := s.service.Submit(s.ctx, "1001", "https://img.example/a.png")
	s.Require().NoError(err)
	s.NotEqual(first.ID, second.ID)
}

func (s *LedgerSuite) TestListForOwnerNewestFirst() {
	first, err := s.service.Submit(s.ctx, "1001", "https://img.example/a.png")
	s.Require().NoError(err)
	s.clock.Advance(time.Minute)
	second, err := s.service.Submit(s.ctx, "1001", "https://img.example/b.png")
	s.Require().NoError(err)

	// Another owner's submissions are not listed
	_, err = s.service.Submit(s.ctx, "2002", "https://img.example/c.png")
	s.Require().NoError(err)

	subs, err := s.service.ListForOwner(s.ctx, "1001")
	s.Require().NoError(err)
	s.Require().Len(subs, 2)
	s.Equal(second.ID, subs[0].ID)
	s.Equal(first.ID, subs[1].ID)
}

func (s *LedgerSuite) TestGetNotFound() {
	_, err := s.service.Get(s.ctx, 42)
	s.ErrorIs(err, model.ErrSubmissionNotFound)
}

func (s *LedgerSuite) TestOrdinal() {
	first, err := s.service.Submit(s.ctx, "1001", "https://img.example/a.png")
	s.Require().NoError(err)
	s.clock.Advance(time.Minute)
	second, err := s.service.Submit(s.ctx, "1001", "https://img.example/b.png")
	s.Require().NoError(err)

	ordinal, err := s.service.Ordinal(s.ctx, "1001", first.ID)
	s.Require().NoError(err)
	s.Equal(1, ordinal)

	ordinal, err = s.service.Ordinal(s.ctx, "1001", second.ID)
	s.Require().NoError(err)
	s.Equal(2, ordinal)
}

func (s *LedgerSuite) TestOrdinalIgnoresApprovalAndValidity() {
	first, err := s.service.Submit(s.ctx, "1001", "https://img.example/a.png")
	s.Require().NoError(err)
	s.clock.Advance(time.Minute)
	second, err := s.service.Submit(s.ctx, "1001", "https://img.example/b.png")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Reject(s.ctx, first.ID))

	ordinal, err := s.service.Ordinal(s.ctx, "1001", second.ID)
	s.Require().NoError(err)
	s.Equal(2, ordinal)
}

func (s *LedgerSuite) TestApproveAndReject() {
	sub, err := s.service.Submit(s.ctx, "1001", "https://img.example/a.png")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Approve(s.ctx, sub.ID))
	stored, err := s.service.Get(s.ctx, sub.ID)
	s.Require().NoError(err)
	s.Equal(model.ApprovalApproved, stored.Approval)

	// Decisions are reversible
	s.Require().NoError(s.service.Reject(s.ctx, sub.ID))
	stored, err = s.service.Get(s.ctx, sub.ID)
	s.Require().NoError(err)
	s.Equal(model.ApprovalRejected, stored.Approval)
}

func (s *LedgerSuite) TestApproveIsIdempotent() {
	sub, err := s.service.Submit(s.ctx, "1001", "https://img.example/a.png")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Approve(s.ctx, sub.ID))
	s.Require().NoError(s.service.Approve(s.ctx, sub.ID))
}

func (s *LedgerSuite) TestApproveNotFound() {
	s.ErrorIs(s.service.Approve(s.ctx, 42), model.ErrSubmissionNotFound)
	s.ErrorIs(s.service.Reject(s.ctx, 42), model.ErrSubmissionNotFound)
}
