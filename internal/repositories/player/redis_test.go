package player_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/firetop/gamebook-api/internal/entities/gamebook"
	"github.com/firetop/gamebook-api/internal/errors"
	"github.com/firetop/gamebook-api/internal/pkg/clock"
	"github.com/firetop/gamebook-api/internal/repositories/player"
	"github.com/firetop/gamebook-api/internal/testutils"
)

const testPlayerID = "player_123"

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    player.Repository
	cleanup func()
	now     time.Time
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	repo, err := player.NewRedis(&player.RedisConfig{
		Client: client,
		Clock:  &clock.Fixed{Instant: s.now},
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	record := gamebook.New(testPlayerID)
	record.CurrentSection = "71"
	record.Gold = 10
	record.Inventory = []string{"Espada", "Lanterna"}
	record.Attributes.SetInitial(gamebook.AttributeSkill, 9)
	record.Attributes.SetCurrent(gamebook.AttributeSkill, 9)

	_, err := s.repo.Save(s.ctx, player.SaveInput{Record: record})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, player.GetInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Equal("71", output.Record.CurrentSection)
	s.Equal(10, output.Record.Gold)
	s.Equal([]string{"Espada", "Lanterna"}, output.Record.Inventory)
	s.Equal(9, output.Record.Attributes.Current(gamebook.AttributeSkill))
	s.True(output.Record.UpdatedAt.Equal(s.now))
}

func (s *RedisRepositoryTestSuite) TestSaveOverwrites() {
	record := gamebook.New(testPlayerID)
	record.CurrentSection = "1"
	_, err := s.repo.Save(s.ctx, player.SaveInput{Record: record})
	s.Require().NoError(err)

	record.CurrentSection = "202"
	_, err = s.repo.Save(s.ctx, player.SaveInput{Record: record})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, player.GetInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Equal("202", output.Record.CurrentSection)
}

func (s *RedisRepositoryTestSuite) TestSaveRoundTripsCombat() {
	record := gamebook.New(testPlayerID)
	record.Combat = &gamebook.CombatState{
		Monsters: []gamebook.Monster{
			{Name: "ORC", Skill: 6, Stamina: 5},
		},
		Round:       2,
		VictoryGoTo: "90",
	}

	_, err := s.repo.Save(s.ctx, player.SaveInput{Record: record})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, player.GetInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Require().NotNil(output.Record.Combat)
	s.Equal(2, output.Record.Combat.Round)
	s.Equal("ORC", output.Record.Combat.CurrentMonster().Name)
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, player.GetInput{PlayerID: "player_999"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetEmptyID() {
	_, err := s.repo.Get(s.ctx, player.GetInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestSaveNilRecord() {
	_, err := s.repo.Save(s.ctx, player.SaveInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	record := gamebook.New(testPlayerID)
	_, err := s.repo.Save(s.ctx, player.SaveInput{Record: record})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, player.DeleteInput{PlayerID: testPlayerID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, player.GetInput{PlayerID: testPlayerID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDeleteNotFound() {
	_, err := s.repo.Delete(s.ctx, player.DeleteInput{PlayerID: "player_999"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
