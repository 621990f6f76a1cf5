// Copyright (C) 2024-2026, the chia-blockchain authors. All rights reserved.
// See the file LICENSE for licensing terms.

package bls

import (
	"bytes"
	"errors"

	blst "github.com/supranational/blst/bindings/go"
)

const SignatureLen = blst.BLST_P2_COMPRESS_BYTES

var (
	errFailedSignatureDecompress  = errors.New("couldn't decompress signature")
	errInvalidSignature           = errors.New("invalid signature")
	errFailedSignatureAggregation = errors.New("couldn't aggregate signatures")

	// Compressed encoding of the G2 point at infinity: the aggregate of zero
	// signatures.
	signatureIdentityBytes = func() []byte {
		b := make([]byte, SignatureLen)
		b[0] = 0xc0
		return b
	}()
)

type (
	Signature          = blst.P2Affine
	AggregateSignature = blst.P2Aggregate
)

// SignatureToBytes returns the compressed big-endian format of the signature.
func SignatureToBytes(sig *Signature) []byte {
	return sig.Compress()
}

// SignatureFromBytes parses the compressed big-endian format of the signature
// into a signature.
func SignatureFromBytes(sigBytes []byte) (*Signature, error) {
	sig := new(Signature).Uncompress(sigBytes)
	if sig == nil {
		return nil, errFailedSignatureDecompress
	}
	if !sig.SigValidate(false) {
		return nil, errInvalidSignature
	}
	return sig, nil
}

// SignatureIdentity returns the identity element of the signature group.
func SignatureIdentity() *Signature {
	return new(Signature).Uncompress(signatureIdentityBytes)
}

// IsSignatureIdentity returns true iff [sig] is the identity element.
func IsSignatureIdentity(sig *Signature) bool {
	return bytes.Equal(sig.Compress(), signatureIdentityBytes)
}

// AggregateSignatures combines [sigs] with the group operation. The result is
// independent of the order of [sigs]. Aggregating zero signatures yields the
// identity element.
func AggregateSignatures(sigs []*Signature) (*Signature, error) {
	if len(sigs) == 0 {
		return SignatureIdentity(), nil
	}

	var agg AggregateSignature
	if !agg.Aggregate(sigs, false) {
		return nil, errFailedSignatureAggregation
	}
	return agg.ToAffine(), nil
}

// AggregateVerify verifies [sig] as the aggregate signature of [msgs[i]]
// under [pks[i]] for every i. An empty obligation set verifies iff [sig] is
// the identity element.
//
// Invariant: [pks] and [sig] have been validated.
func AggregateVerify(pks []*PublicKey, msgs [][]byte, sig *Signature) bool {
	if len(pks) != len(msgs) {
		return false
	}
	if len(pks) == 0 {
		return IsSignatureIdentity(sig)
	}

	payloads := make([]blst.Message, len(msgs))
	for i, msg := range msgs {
		payloads[i] = augmentedMessage(pks[i], msg)
	}
	return sig.AggregateVerify(false, pks, false, payloads, ciphersuite)
}
