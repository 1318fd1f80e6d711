/*
Package packed implements packed leaves of a persistent Merkle-izable list.

A packed leaf keeps up to PackingFactor small values of a single type in one
util.ChunkSize bytes long chunk. Value i occupies bytes [i*Len, (i+1)*Len) of
the chunk, trailing bytes past the last populated value are zero. The chunk is
the leaf's contribution to the tree hash as is, no hashing is done here.

Leaves are plain values. Every exported edit that doesn't have a pointer
receiver returns a new leaf and leaves the original intact, so old versions of
a tree stay valid while sharing unchanged leaves. InsertInPlace and Push mutate
the receiver and are meant for leaves the caller exclusively owns (like the
ones being constructed).

Writes never leave holes: a value can only be written to an already populated
slot or appended at the frontier (the slot equal to Length). Writing past the
frontier is a bug in the caller's index bookkeeping and panics.
*/
package packed
