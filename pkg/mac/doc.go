/*
Package mac provides a simplified, HMAC-shaped message authentication scheme keyed by a xorcipher.Secret.

This is NOT RFC 2104 HMAC, and tags produced here won't match any standard HMAC implementation.
It's a teaching construction that keeps the two-stage hash shape of HMAC while skipping key normalization and block padding.

# How it works:

The pad constants OPAD (0x5c) and IPAD (0x36) are XORed into the secret as integers, which only changes the lowest byte of the secret.
Each padded key is encoded big-endian, left-padded to 32 bytes, and used as a hash prefix.

	inner = H((secret ^ IPAD) || message)
	tag   = H((secret ^ OPAD) || inner)

# General guidelines:
  - Use a different Secret for authentication than the one used for encryption.
  - SHA-256 is used by default. SHA3-256 and BLAKE2b-256 are available with UseSHA3 and UseBLAKE2b.
  - Both parties must use the same hash to produce matching tags.
*/
package mac
