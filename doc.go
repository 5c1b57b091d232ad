// Package jwtcore implements a JSON Web Token producer and verifier for
// JWS Compact Serialization over HMAC (HS256/384/512) and ECDSA
// (ES256/384/512).
//
// A claim set is built with RawJwtBuilder, signed with a MACHandle or
// SignerHandle to produce a compact token, and verified with the
// matching MACHandle or VerifierHandle plus a Validator policy to
// produce a VerifiedJwt. Raw cryptographic primitives, key generation,
// and key-derivation byte sources are external collaborators; this
// package consumes already-constructed key material via NewHMACKey,
// NewECDSAPrivateKey, and NewECDSAPublicKey.
package jwtcore
