package packed

import (
	"encoding/json"
	"fmt"

	"github.com/macladson/milhouse/pkg/io"
	"github.com/macladson/milhouse/pkg/util"
)

// BinarySize is the size of a binary encoded leaf: length byte followed by
// the chunk.
const BinarySize = 1 + util.ChunkSize

type leafAux struct {
	Length int          `json:"length"`
	Chunk  util.Hash256 `json:"chunk"`
}

// MarshalJSON implements json.Marshaler.
func (l Leaf[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(leafAux{Length: l.Length(), Chunk: l.hash})
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Leaf[T]) UnmarshalJSON(data []byte) error {
	var aux leafAux
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	res, err := FromChunk[T](aux.Chunk, aux.Length)
	if err != nil {
		return err
	}
	*l = res
	return nil
}

// EncodeBinary implements io.Serializable.
func (l *Leaf[T]) EncodeBinary(w *io.BinWriter) {
	w.WriteB(l.length)
	w.WriteBytes(l.hash[:])
}

// DecodeBinary implements io.Serializable. The decoded leaf is validated
// the same way FromChunk does it.
func (l *Leaf[T]) DecodeBinary(r *io.BinReader) {
	var chunk util.Hash256
	length := r.ReadB()
	r.ReadBytes(chunk[:])
	if r.Err != nil {
		return
	}
	res, err := FromChunk[T](chunk, int(length))
	if err != nil {
		r.Err = err
		return
	}
	*l = res
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (l Leaf[T]) MarshalBinary() ([]byte, error) {
	bw := io.NewBufBinWriter()
	l.EncodeBinary(bw.BinWriter)
	if bw.Err != nil {
		return nil, bw.Err
	}
	return bw.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (l *Leaf[T]) UnmarshalBinary(data []byte) error {
	if len(data) != BinarySize {
		return fmt.Errorf("expected %d bytes got %d", BinarySize, len(data))
	}
	r := io.NewBinReaderFromBuf(data)
	l.DecodeBinary(r)
	return r.Err
}
