/*
Package value defines the contract for values that can be packed into a single
Merkle tree chunk and provides the stock packable types.

A packable type has a fixed encoded size and a packing factor, the number of
its values fitting one chunk (util.ChunkSize bytes). Value i of a packed chunk
occupies bytes [i*Len, (i+1)*Len) where Len is ChunkSize/PackingFactor.
Integer types are encoded in little-endian byte order, booleans take one byte.

Packing factors and methods are called on zero values, so they must not depend
on the receiver.
*/
package value
