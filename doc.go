// Package xchain represents accounts, assets, hashes and signatures of several blockchains
// behind one chain tagged data model.
//
// Every value carries the ChainID it belongs to next to a payload that only makes sense on
// that chain. A Registry maps each ChainID to its sdk.Chain implementation and rewraps raw
// results with the right tag, so callers never pair a payload with the wrong chain.
//
// Ethereum is the only chain with real cryptography. The other chains are placeholders
// whose operations fail with types.ErrUnsupportedOperation.
package xchain
