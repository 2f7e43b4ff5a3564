package xchain

import (
	"fmt"
	"time"

	"github.com/smartcontractkit/xchain/metrics"
	"github.com/smartcontractkit/xchain/types"
)

// Recover returns the account whose key produced sig over message, using the recovery scheme
// of the signature's chain.
func (r *Registry) Recover(sig ChainSignature, message []byte) (ChainAccount, error) {
	c, err := r.Chain(sig.Chain)
	if err != nil {
		return ChainAccount{}, err
	}

	start := time.Now()
	addr, err := c.RecoverAddress(message, sig.Signature)
	r.metrics.ObserveLatency(metricRecover, time.Since(start), map[string]string{
		metrics.LabelChain: sig.Chain.String(),
	})
	if err != nil {
		r.count(metricRecover, sig.Chain, metrics.OutcomeError)
		return ChainAccount{}, err
	}
	r.count(metricRecover, sig.Chain, metrics.OutcomeOK)

	return ChainAccount{Chain: sig.Chain, Address: addr}, nil
}

// RecoverAccount recovers the signer of message and returns it only if it is exactly the
// claimed account. Any other signer fails with a SignatureAccountMismatchError.
func (r *Registry) RecoverAccount(sig ChainAccountSignature, message []byte) (ChainAccount, error) {
	recovered, err := r.Recover(sig.ToChainSignature(), message)
	if err != nil {
		r.count(metricRecoverAccount, sig.Chain, metrics.OutcomeError)
		return ChainAccount{}, err
	}

	claimed := sig.ClaimedAccount()
	if recovered != claimed {
		r.count(metricRecoverAccount, sig.Chain, metrics.OutcomeMismatch)
		r.logger.Warnf("signature on %s claims %s but recovers to %s", sig.Chain, claimed, recovered)

		return ChainAccount{}, types.NewSignatureAccountMismatchError(sig.Chain, sig.Account, recovered.Address)
	}
	r.count(metricRecoverAccount, sig.Chain, metrics.OutcomeOK)

	return recovered, nil
}

// RecoverSigners verifies every entry of list over message and returns the signers in list
// order. It stops at the first entry that fails.
func (r *Registry) RecoverSigners(list ChainSignatureList, message []byte) ([]ChainAccount, error) {
	signers := make([]ChainAccount, 0, list.Len())
	for i := range list.Signatures {
		signer, err := r.RecoverAccount(list.At(i), message)
		if err != nil {
			return nil, fmt.Errorf("signature %d: %w", i, err)
		}
		signers = append(signers, signer)
	}

	return signers, nil
}
