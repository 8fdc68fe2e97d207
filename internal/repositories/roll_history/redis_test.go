package rollhistory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	rollhistory "github.com/KirkDiggler/rpg-companion/internal/repositories/roll_history"
	"github.com/KirkDiggler/rpg-companion/internal/testutils"
)

type RollHistoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	cleanup func()
	repo    rollhistory.Repository
	ctx     context.Context
}

func TestRollHistorySuite(t *testing.T) {
	suite.Run(t, new(RollHistoryTestSuite))
}

func (s *RollHistoryTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := rollhistory.NewRedisRepository(&rollhistory.Config{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RollHistoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RollHistoryTestSuite) roll(i int) *dnd5e.RollResult {
	return &dnd5e.RollResult{
		ID:        fmt.Sprintf("roll_%d", i),
		Title:     "Check",
		Formula:   "1d20",
		Total:     i,
		Rolls:     []int{i},
		FinalRoll: i,
		Timestamp: time.Date(2024, 1, 1, 0, 0, i, 0, time.UTC),
		Meta:      dnd5e.RollMeta{Mode: dnd5e.RollModeD20, Type: dnd5e.AdvantageNormal, DiceCount: 1},
	}
}

func (s *RollHistoryTestSuite) TestAppendAndList() {
	first := s.roll(1)
	_, err := s.repo.Append(s.ctx, rollhistory.AppendInput{OwnerID: "char_1", Roll: first})
	s.Require().NoError(err)
	out, err := s.repo.Append(s.ctx, rollhistory.AppendInput{OwnerID: "char_1", Roll: s.roll(2)})
	s.Require().NoError(err)
	s.Equal(2, out.Length)

	list, err := s.repo.List(s.ctx, rollhistory.ListInput{OwnerID: "char_1"})
	s.Require().NoError(err)
	s.Require().Len(list.Rolls, 2)
	s.Equal("roll_2", list.Rolls[0].ID)
	s.Equal(first, list.Rolls[1])
}

func (s *RollHistoryTestSuite) TestNeverExceedsFifty() {
	for i := 1; i <= 60; i++ {
		out, err := s.repo.Append(s.ctx, rollhistory.AppendInput{OwnerID: "char_1", Roll: s.roll(i)})
		s.Require().NoError(err)
		s.LessOrEqual(out.Length, rollhistory.MaxEntries)
	}

	list, err := s.repo.List(s.ctx, rollhistory.ListInput{OwnerID: "char_1"})
	s.Require().NoError(err)
	s.Require().Len(list.Rolls, 50)
	s.Equal("roll_60", list.Rolls[0].ID)
	s.Equal("roll_11", list.Rolls[49].ID)

	stored, err := s.mr.List("roll_history:char_1")
	s.Require().NoError(err)
	s.Len(stored, 50)
}

func (s *RollHistoryTestSuite) TestListLimit() {
	for i := 1; i <= 5; i++ {
		_, err := s.repo.Append(s.ctx, rollhistory.AppendInput{OwnerID: "char_1", Roll: s.roll(i)})
		s.Require().NoError(err)
	}
	list, err := s.repo.List(s.ctx, rollhistory.ListInput{OwnerID: "char_1", Limit: 2})
	s.Require().NoError(err)
	s.Len(list.Rolls, 2)
}

func (s *RollHistoryTestSuite) TestEmptyOwnerHistory() {
	list, err := s.repo.List(s.ctx, rollhistory.ListInput{OwnerID: "nobody"})
	s.Require().NoError(err)
	s.Empty(list.Rolls)
}

func (s *RollHistoryTestSuite) TestOwnersAreSeparate() {
	_, err := s.repo.Append(s.ctx, rollhistory.AppendInput{OwnerID: "a", Roll: s.roll(1)})
	s.Require().NoError(err)

	list, err := s.repo.List(s.ctx, rollhistory.ListInput{OwnerID: "b"})
	s.Require().NoError(err)
	s.Empty(list.Rolls)
}

func (s *RollHistoryTestSuite) TestClear() {
	for i := 1; i <= 3; i++ {
		_, err := s.repo.Append(s.ctx, rollhistory.AppendInput{OwnerID: "char_1", Roll: s.roll(i)})
		s.Require().NoError(err)
	}

	out, err := s.repo.Clear(s.ctx, rollhistory.ClearInput{OwnerID: "char_1"})
	s.Require().NoError(err)
	s.Equal(3, out.RollsDeleted)
	s.False(s.mr.Exists("roll_history:char_1"))

	out, err = s.repo.Clear(s.ctx, rollhistory.ClearInput{OwnerID: "char_1"})
	s.Require().NoError(err)
	s.Equal(0, out.RollsDeleted)
}

func (s *RollHistoryTestSuite) TestValidation() {
	_, err := s.repo.Append(s.ctx, rollhistory.AppendInput{Roll: s.roll(1)})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Append(s.ctx, rollhistory.AppendInput{OwnerID: "char_1"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.List(s.ctx, rollhistory.ListInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Clear(s.ctx, rollhistory.ClearInput{})
	s.True(errors.IsInvalidArgument(err))
}
