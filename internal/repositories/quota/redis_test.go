package quota

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cadavrebot/cadavre/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
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

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetQuota() {
	quota := &models.Quota{
		Nick:     "alice",
		ByRounds: true,
		Rounds:   3,
	}

	err := s.repo.SaveQuota(context.Background(), &SaveQuotaInput{
		Quota: quota,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetQuota(context.Background(), &GetQuotaInput{
		Nick: "alice",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("alice", retrieved.Nick)
	s.True(retrieved.ByRounds)
	s.Equal(3, retrieved.Rounds)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetDeadlineQuota() {
	quota := &models.Quota{
		Nick:     "bob",
		Deadline: s.testNow.Add(45 * time.Minute),
	}

	err := s.repo.SaveQuota(context.Background(), &SaveQuotaInput{
		Quota: quota,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetQuota(context.Background(), &GetQuotaInput{
		Nick: "bob",
	})
	s.Require().NoError(err)
	s.False(retrieved.ByRounds)
	s.Equal(quota.Deadline.Unix(), retrieved.Deadline.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetQuotaNotFound() {
	_, err := s.repo.GetQuota(context.Background(), &GetQuotaInput{
		Nick: "nobody",
	})
	s.Require().ErrorIs(err, ErrQuotaNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveOverwritesQuota() {
	err := s.repo.SaveQuota(context.Background(), &SaveQuotaInput{
		Quota: &models.Quota{Nick: "alice", ByRounds: true, Rounds: 3},
	})
	s.Require().NoError(err)

	err = s.repo.SaveQuota(context.Background(), &SaveQuotaInput{
		Quota: &models.Quota{Nick: "alice", Deadline: s.testNow},
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetQuota(context.Background(), &GetQuotaInput{
		Nick: "alice",
	})
	s.Require().NoError(err)
	s.False(retrieved.ByRounds)
}

func (s *RedisRepositoryTestSuite) TestDeleteQuota() {
	err := s.repo.SaveQuota(context.Background(), &SaveQuotaInput{
		Quota: &models.Quota{Nick: "alice", ByRounds: true, Rounds: 1},
	})
	s.Require().NoError(err)

	err = s.repo.DeleteQuota(context.Background(), &DeleteQuotaInput{
		Nick: "alice",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetQuota(context.Background(), &GetQuotaInput{
		Nick: "alice",
	})
	s.Require().ErrorIs(err, ErrQuotaNotFound)

	// Deleting again is not an error.
	err = s.repo.DeleteQuota(context.Background(), &DeleteQuotaInput{
		Nick: "alice",
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestListQuotas() {
	quotas := []*models.Quota{
		{Nick: "alice", ByRounds: true, Rounds: 2},
		{Nick: "bob", Deadline: s.testNow.Add(time.Hour)},
		{Nick: "carol", ByRounds: true, Rounds: 5},
	}
	for _, q := range quotas {
		err := s.repo.SaveQuota(context.Background(), &SaveQuotaInput{Quota: q})
		s.Require().NoError(err)
	}

	output, err := s.repo.ListQuotas(context.Background())
	s.Require().NoError(err)
	s.Require().Len(output.Quotas, 3)

	nicks := make(map[string]bool)
	for _, q := range output.Quotas {
		nicks[q.Nick] = true
	}
	s.True(nicks["alice"])
	s.True(nicks["bob"])
	s.True(nicks["carol"])
}

func (s *RedisRepositoryTestSuite) TestListQuotasEmpty() {
	output, err := s.repo.ListQuotas(context.Background())
	s.Require().NoError(err)
	s.Empty(output.Quotas)
}

func (s *RedisRepositoryTestSuite) TestInvalidInputs() {
	err := s.repo.SaveQuota(context.Background(), nil)
	s.Error(err)

	err = s.repo.SaveQuota(context.Background(), &SaveQuotaInput{
		Quota: &models.Quota{},
	})
	s.Error(err)

	_, err = s.repo.GetQuota(context.Background(), &GetQuotaInput{})
	s.Error(err)
}
