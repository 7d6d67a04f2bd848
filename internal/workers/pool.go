// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-pass-crypt/internal/config"
	"github.com/MKhiriev/go-pass-crypt/internal/logger"
	"github.com/MKhiriev/go-pass-crypt/internal/service"
)

// Pool runs seal/open batches against a [service.CredentialService].
type Pool struct {
	credentials  service.CredentialService
	concurrency  int
	batchTimeout time.Duration
	logger       *logger.Logger
}

// NewPool constructs a [Pool]. A non-positive cfg.Concurrency runs jobs
// one at a time; a zero cfg.BatchTimeout means no time limit.
func NewPool(credentials service.CredentialService, cfg config.Workers, log *logger.Logger) *Pool {
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &Pool{
		credentials:  credentials,
		concurrency:  concurrency,
		batchTimeout: cfg.BatchTimeout,
		logger:       log,
	}
}

// SealAll encrypts every plaintext under passphrase. On the first failure
// the remaining jobs are skipped and the error names the failing index.
func (p *Pool) SealAll(ctx context.Context, plaintexts []string, passphrase string) ([]string, error) {
	return p.run(ctx, "seal", plaintexts, func(in string) (string, error) {
		return p.credentials.EncryptCredential(in, passphrase)
	})
}

// OpenAll decrypts every envelope with passphrase. On the first failure
// the remaining jobs are skipped and the error names the failing index.
func (p *Pool) OpenAll(ctx context.Context, envelopes []string, passphrase string) ([]string, error) {
	return p.run(ctx, "open", envelopes, func(in string) (string, error) {
		return p.credentials.DecryptCredential(in, passphrase)
	})
}

func (p *Pool) run(ctx context.Context, op string, inputs []string, job func(string) (string, error)) ([]string, error) {
	if p.batchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.batchTimeout)
		defer cancel()
	}

	started := time.Now()
	out := make([]string, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			// Jobs are not interruptible once started; cancellation only
			// stops the ones still queued.
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := job(in)
			if err != nil {
				return fmt.Errorf("%s item %d: %w", op, i, err)
			}
			out[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		p.logger.Warn().Err(err).Str("op", op).Int("items", len(inputs)).Msg("batch failed")
		return nil, err
	}

	p.logger.Debug().
		Str("op", op).
		Int("items", len(inputs)).
		Dur("elapsed", time.Since(started)).
		Msg("batch done")
	return out, nil
}
