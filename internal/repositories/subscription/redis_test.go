package subscription

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestAddAndMembers() {
	for _, nick := range []string{"alice", "bob"} {
		err := s.repo.Add(context.Background(), &AddInput{Nick: nick})
		s.Require().NoError(err)
	}

	output, err := s.repo.Members(context.Background())
	s.Require().NoError(err)
	s.ElementsMatch([]string{"alice", "bob"}, output.Nicks)
}

func (s *RedisRepositoryTestSuite) TestAddIsIdempotent() {
	for i := 0; i < 2; i++ {
		err := s.repo.Add(context.Background(), &AddInput{Nick: "alice"})
		s.Require().NoError(err)
	}

	output, err := s.repo.Members(context.Background())
	s.Require().NoError(err)
	s.Equal([]string{"alice"}, output.Nicks)
}

func (s *RedisRepositoryTestSuite) TestRemove() {
	err := s.repo.Add(context.Background(), &AddInput{Nick: "alice"})
	s.Require().NoError(err)

	err = s.repo.Remove(context.Background(), &RemoveInput{Nick: "alice"})
	s.Require().NoError(err)

	output, err := s.repo.Members(context.Background())
	s.Require().NoError(err)
	s.Empty(output.Nicks)

	// Removing an absent nick is fine.
	err = s.repo.Remove(context.Background(), &RemoveInput{Nick: "alice"})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestInvalidInputs() {
	s.Error(s.repo.Add(context.Background(), nil))
	s.Error(s.repo.Add(context.Background(), &AddInput{}))
	s.Error(s.repo.Remove(context.Background(), &RemoveInput{}))
}
