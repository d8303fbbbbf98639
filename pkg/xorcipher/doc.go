/*
Package xorcipher provides a keyed XOR transform over base-36 text, using a large random integer as the key.

Note that this is NOT a secure cipher.
The same secret is reused across messages, so this behaves like a one-time pad that is used many times over, and it's easily broken with known plain text.
It exists to demonstrate how a big-integer XOR works, and should never be used for security critical data.

# How it works:

A message is read as a base-36 numeral (the symbols 0-9 and A-Z, in either case) and converted to an integer.
That integer is XORed with a Secret, and the result is rendered back to base-36 text.
Since XOR is its own inverse, Encrypt and Decrypt are the same operation.

# Important note:

Rendering an integer drops any leading zero symbols, so a message like "00AB" comes back as "ab".
Output is always lowercase.
Use Normalize to get the form a message will take after a round trip.

# General guidelines:
  - Use GenerateSecret to create a 256-bit secret from the OS entropy pool.
  - Never use the same Secret for both encryption and message authentication.
  - ExhaustiveSearch is only useful for demonstrating how small key spaces fail, it doesn't recover 256-bit secrets.
*/
package xorcipher
