// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-crypt/internal/config"
	"github.com/MKhiriev/go-pass-crypt/internal/crypto"
	"github.com/MKhiriev/go-pass-crypt/internal/logger"
	"github.com/MKhiriev/go-pass-crypt/internal/mock"
	"github.com/MKhiriev/go-pass-crypt/internal/service"
	"github.com/MKhiriev/go-pass-crypt/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPool_SealOpen_RoundTrip(t *testing.T) {
	creds := service.NewCredentialService(
		crypto.NewDefaultProvider(1000),
		validators.NewCryptoValidator(1024),
		logger.Nop(),
	)
	pool := NewPool(creds, config.Workers{Concurrency: 3}, logger.Nop())

	plaintexts := []string{"one", "two", "three", "four", "five"}

	envelopes, err := pool.SealAll(context.Background(), plaintexts, "master")
	require.NoError(t, err)
	require.Len(t, envelopes, len(plaintexts))

	opened, err := pool.OpenAll(context.Background(), envelopes, "master")
	require.NoError(t, err)
	assert.Equal(t, plaintexts, opened)
}

func TestPool_EmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	pool := NewPool(mock.NewMockCredentialService(ctrl), config.Workers{Concurrency: 2}, logger.Nop())

	out, err := pool.SealAll(context.Background(), nil, "master")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestPool_KeepsInputOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mock.NewMockCredentialService(ctrl)

	creds.EXPECT().EncryptCredential(gomock.Any(), "m").DoAndReturn(func(p, _ string) (string, error) {
		// Later items finish first.
		if p == "a" {
			time.Sleep(20 * time.Millisecond)
		}
		return "env-" + p, nil
	}).Times(3)

	pool := NewPool(creds, config.Workers{Concurrency: 3}, logger.Nop())

	out, err := pool.SealAll(context.Background(), []string{"a", "b", "c"}, "m")
	require.NoError(t, err)
	assert.Equal(t, []string{"env-a", "env-b", "env-c"}, out)
}

func TestPool_RespectsConcurrencyLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mock.NewMockCredentialService(ctrl)

	var running, peak atomic.Int32
	creds.EXPECT().DecryptCredential(gomock.Any(), gomock.Any()).DoAndReturn(func(e, _ string) (string, error) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		running.Add(-1)
		return e, nil
	}).Times(10)

	pool := NewPool(creds, config.Workers{Concurrency: 2}, logger.Nop())

	_, err := pool.OpenAll(context.Background(), make([]string, 10), "m")
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestPool_FirstErrorStopsBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mock.NewMockCredentialService(ctrl)

	creds.EXPECT().DecryptCredential("bad", "m").Return("", service.ErrParse)
	creds.EXPECT().DecryptCredential(gomock.Any(), "m").Return("ok", nil).AnyTimes()

	pool := NewPool(creds, config.Workers{Concurrency: 1}, logger.Nop())

	out, err := pool.OpenAll(context.Background(), []string{"bad", "x", "y"}, "m")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, service.ErrParse)
	assert.ErrorContains(t, err, "open item 0")
}

func TestPool_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mock.NewMockCredentialService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewPool(creds, config.Workers{Concurrency: 1}, logger.Nop())

	_, err := pool.SealAll(ctx, []string{"a", "b"}, "m")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestPool_BatchTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := mock.NewMockCredentialService(ctrl)

	creds.EXPECT().EncryptCredential(gomock.Any(), gomock.Any()).DoAndReturn(func(p, _ string) (string, error) {
		time.Sleep(30 * time.Millisecond)
		return p, nil
	}).MinTimes(1).MaxTimes(2)

	pool := NewPool(creds, config.Workers{Concurrency: 1, BatchTimeout: 10 * time.Millisecond}, logger.Nop())

	_, err := pool.SealAll(context.Background(), []string{"a", "b", "c", "d"}, "m")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewPool_ClampsConcurrency(t *testing.T) {
	pool := NewPool(nil, config.Workers{Concurrency: 0}, logger.Nop())
	assert.Equal(t, 1, pool.concurrency)
}
