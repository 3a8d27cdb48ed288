package registry

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

type RegistrySuite struct {
	suite.Suite
	service *Service
	clock   *mocks.MockClock
	ctx     context.Context
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(memory.New(), s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *RegistrySuite) TestRegister() {
	player, err := s.service.Register(s.ctx, "1001", "S1", "Alice")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("1001"), player.ID)
	s.Equal("S1", player.StaticID)
	s.Equal("Alice", player.Nickname)
	s.Equal(s.clock.CurrentTime, player.RegisteredAt)
	s.False(player.Disqualified)
}

func (s *RegistrySuite) TestRegisterTrimsFields() {
	player, err := s.service.Register(s.ctx, "1001", "  S1 ", " Alice\t")
	s.Require().NoError(err)
	s.Equal("S1", player.StaticID)
	s.Equal("Alice", player.Nickname)
}

func (s *RegistrySuite) TestRegisterDuplicate() {
	_, err := s.service.Register(s.ctx, "1001", "S1", "Alice")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "1001", "S2", "Other")
	s.ErrorIs(err, model.ErrPlayerExists)

	// First registration wins
	player, err := s.service.Get(s.ctx, "1001")
	s.Require().NoError(err)
	s.Equal("Alice", player.Nickname)
}

func (s *RegistrySuite) TestGetNotFound() {
	_, err := s.service.Get(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *RegistrySuite) TestIsDisqualified() {
	_, err := s.service.Register(s.ctx, "1001", "S1", "Alice")
	s.Require().NoError(err)

	disqualified, err := s.service.IsDisqualified(s.ctx, "1001")
	s.Require().NoError(err)
	s.False(disqualified)

	s.Require().NoError(s.service.Disqualify(s.ctx, "1001"))

	disqualified, err = s.service.IsDisqualified(s.ctx, "1001")
	s.Require().NoError(err)
	s.True(disqualified)
}

func (s *RegistrySuite) TestIsDisqualifiedUnknownPlayer() {
	// An identity that never registered is simply not disqualified
	disqualified, err := s.service.IsDisqualified(s.ctx, "ghost")
	s.Require().NoError(err)
	s.False(disqualified)
}

func (s *RegistrySuite) TestDisqualifyAndReinstate() {
	_, err := s.service.Register(s.ctx, "1001", "S1", "Alice")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Disqualify(s.ctx, "1001"))

	// Disqualifying again is a no-op
	s.Require().NoError(s.service.Disqualify(s.ctx, "1001"))

	s.Require().NoError(s.service.Reinstate(s.ctx, "1001"))

	disqualified, err := s.service.IsDisqualified(s.ctx, "1001")
	s.Require().NoError(err)
	s.False(disqualified)
}

func (s *RegistrySuite) TestDisqualifyNotFound() {
	err := s.service.Disqualify(s.ctx, "ghost")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
