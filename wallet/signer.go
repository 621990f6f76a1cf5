// Copyright (C) 2024-2026, the chia-blockchain authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package wallet composes condition parsing, obligation derivation and the
// keychain into the spend authorization pipeline.
package wallet

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/prayogimhd/chia-blockchain/conditions"
	"github.com/prayogimhd/chia-blockchain/crypto/bls"
	"github.com/prayogimhd/chia-blockchain/ids"
	"github.com/prayogimhd/chia-blockchain/keychain"
	"github.com/prayogimhd/chia-blockchain/types"
)

// Signer turns a coin spend's declared conditions into the aggregate
// signature consensus expects. It is stateless per request; all key material
// lives in the keychain.
type Signer struct {
	cfg      Config
	keychain *keychain.Keychain
	log      *zap.Logger
	metrics  *metrics
}

// NewSigner returns a Signer backed by [kc]. [log] may be nil.
func NewSigner(cfg Config, kc *keychain.Keychain, log *zap.Logger, registerer prometheus.Registerer) (*Signer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	m, err := newMetrics("wallet", registerer)
	if err != nil {
		return nil, err
	}
	return &Signer{
		cfg:      cfg,
		keychain: kc,
		log:      log,
		metrics:  m,
	}, nil
}

// SignSolution authorizes the spend of the coin named [coinID]: it decodes
// [solution] into conditions, derives the signing obligations, signs each one
// with the keychain and aggregates the results. Either every obligation is
// fulfilled or an error is returned and no signature material is exposed.
func (s *Signer) SignSolution(solution []byte, coinID ids.ID) (*bls.Signature, error) {
	dict, err := conditions.ParseConditions(solution)
	if err != nil {
		s.metrics.authorizationFails.Inc()
		s.log.Debug("rejected malformed solution",
			zap.Stringer("coinID", coinID),
			zap.Error(err),
		)
		return nil, err
	}

	obligations, err := conditions.DeriveObligations(dict, coinID, s.cfg.AggSigMeAdditionalData[:])
	if err != nil {
		s.metrics.authorizationFails.Inc()
		s.log.Debug("failed to derive signing obligations",
			zap.Stringer("coinID", coinID),
			zap.Error(err),
		)
		return nil, err
	}

	signature, err := s.keychain.SignObligations(obligations)
	if err != nil {
		s.metrics.authorizationFails.Inc()
		s.log.Debug("failed to fulfill signing obligations",
			zap.Stringer("coinID", coinID),
			zap.Int("numObligations", len(obligations)),
			zap.Error(err),
		)
		return nil, err
	}

	s.metrics.spendsAuthorized.Inc()
	s.metrics.obligationsSigned.Add(float64(len(obligations)))
	s.log.Debug("authorized spend",
		zap.Stringer("coinID", coinID),
		zap.Int("numObligations", len(obligations)),
	)
	return signature, nil
}

// SignCoinSpend authorizes [spend] against its coin's canonical name.
func (s *Signer) SignCoinSpend(spend *types.CoinSpend) (*bls.Signature, error) {
	return s.SignSolution(spend.Solution, spend.Coin.ID())
}

// SignSpendBundle authorizes every spend in [spends] and returns a bundle
// carrying the single signature aggregated across all of them. If any spend
// can't be authorized, no bundle is returned.
func (s *Signer) SignSpendBundle(spends []*types.CoinSpend) (*types.SpendBundle, error) {
	signatures := make([]*bls.Signature, 0, len(spends))
	for _, spend := range spends {
		signature, err := s.SignCoinSpend(spend)
		if err != nil {
			return nil, err
		}
		signatures = append(signatures, signature)
	}

	aggregated, err := bls.AggregateSignatures(signatures)
	if err != nil {
		return nil, err
	}
	return &types.SpendBundle{
		CoinSpends:          spends,
		AggregatedSignature: aggregated,
	}, nil
}
