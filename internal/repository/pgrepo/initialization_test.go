package pgrepo

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type ConnectRetryTestSuite struct {
	suite.Suite
	logger *logrus.Logger
}

func TestConnectRetrySuite(t *testing.T) {
	suite.Run(t, new(ConnectRetryTestSuite))
}

func (s *ConnectRetryTestSuite) SetupTest() {
	s.logger = logrus.New()
	s.logger.SetOutput(io.Discard)
}

// TestExhaustedAttempts Исчерпание попыток должно вернуть последнюю ошибку
// подключения, а не зависнуть.
func (s *ConnectRetryTestSuite) TestExhaustedAttempts() {
	dialErr := errors.New("connection refused")
	var calls uint
	dial := func(_ context.Context, _ string) (*pgxpool.Pool, error) {
		calls++
		return nil, dialErr
	}

	type result struct {
		pool *pgxpool.Pool
		err  error
	}
	resChan := make(chan result, 1)
	go func() {
		pool, err := connectWithRetry(context.Background(), "postgres://stub", dial, 3, time.Millisecond, s.logger)
		resChan <- result{pool: pool, err: err}
	}()

	select {
	case res := <-resChan:
		s.Require().ErrorIs(res.err, dialErr)
		s.Contains(res.err.Error(), "after 3 attempts")
		s.Nil(res.pool)
		s.Equal(uint(3), calls)
	case <-time.After(time.Second):
		s.Fail("connectWithRetry did not return after exhausting attempts")
	}
}

// TestSucceedsAfterRetries Успех не с первой попытки - штатный сценарий
// старта рядом с поднимающейся БД.
func (s *ConnectRetryTestSuite) TestSucceedsAfterRetries() {
	var calls uint
	dial := func(_ context.Context, _ string) (*pgxpool.Pool, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("connection refused")
		}
		return nil, nil
	}

	_, err := connectWithRetry(context.Background(), "postgres://stub", dial, 5, time.Millisecond, s.logger)
	s.Require().NoError(err)
	s.Equal(uint(3), calls)
}

func (s *ConnectRetryTestSuite) TestContextCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	dial := func(_ context.Context, _ string) (*pgxpool.Pool, error) {
		cancel()
		return nil, errors.New("connection refused")
	}

	_, err := connectWithRetry(ctx, "postgres://stub", dial, 5, time.Minute, s.logger)
	s.ErrorIs(err, context.Canceled)
}
