/*
Package envelope pairs the xorcipher transform with mac authentication in an encrypt-then-MAC layout.

A message is encrypted with one secret, and the resulting cipher text is authenticated with a different secret held by a mac.Authenticator.
The receiver checks the tag before decrypting, so a tampered Envelope is rejected without ever producing a plain text.

Envelopes have a compact binary form for storage or transport.
All multibyte fields are big-endian when written, but a byte-swapped magic number is accepted as little-endian when reading.

	magic       uint16  0xc7a9
	version     uint8
	hash id     uint8
	cipher text uint32 length, then bytes
	tag         uint32 length, then bytes
*/
package envelope
