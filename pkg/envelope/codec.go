package envelope

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	bin "github.com/saylorsolutions/binmap"
	"github.com/saylorsolutions/cryptokit/pkg/mac"
	"github.com/saylorsolutions/cryptokit/pkg/xorcipher"
)

const (
	magicBytes        uint16 = 0xc7a9
	magicBytesInverse uint16 = 0xa9c7
	currentVersion    uint8  = 1

	maxCiphertextLen = 1 << 20
	maxTagLen        = 64
)

var (
	ErrInvalidHeader = errors.New("invalid envelope header")
)

var _ bin.Mapper = (*lenBytes)(nil)

// lenBytes maps a byte slice prefixed with its uint32 length.
type lenBytes struct {
	target *[]byte
	max    uint32
}

func (l *lenBytes) Write(w io.Writer, endian binary.ByteOrder) error {
	if uint64(len(*l.target)) > uint64(l.max) {
		return fmt.Errorf("%w: field length %d exceeds limit %d", ErrInvalidHeader, len(*l.target), l.max)
	}
	if err := binary.Write(w, endian, uint32(len(*l.target))); err != nil {
		return err
	}
	_, err := w.Write(*l.target)
	return err
}

func (l *lenBytes) Read(r io.Reader, endian binary.ByteOrder) error {
	var size uint32
	if err := binary.Read(r, endian, &size); err != nil {
		return err
	}
	if size > l.max {
		return fmt.Errorf("%w: field length %d exceeds limit %d", ErrInvalidHeader, size, l.max)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return err
	}
	*l.target = buf
	return nil
}

func (e *Envelope) bodyMapper() bin.Mapper {
	return bin.MapSequence(
		bin.Byte(&e.version),
		bin.Byte((*byte)(&e.hashID)),
		&lenBytes{target: &e.ciphertext, max: maxCiphertextLen},
		&lenBytes{target: (*[]byte)(&e.tag), max: maxTagLen},
	)
}

func (e *Envelope) validate() error {
	if e == nil {
		return fmt.Errorf("%w: nil Envelope", ErrInvalidHeader)
	}
	if e.version != currentVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidHeader, e.version)
	}
	if _, err := mac.HashByID(e.hashID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	if _, err := xorcipher.ParseNumeral(e.ciphertext); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	if len(e.tag) == 0 {
		return fmt.Errorf("%w: missing tag", ErrInvalidHeader)
	}
	return nil
}

// Write emits the binary form of the Envelope to w.
func (e *Envelope) Write(w io.Writer) error {
	return e.write(w, binary.BigEndian)
}

func (e *Envelope) write(w io.Writer, endian binary.ByteOrder) error {
	if err := e.validate(); err != nil {
		return err
	}
	magic := magicBytes
	return bin.MapSequence(bin.Int(&magic), e.bodyMapper()).Write(w, endian)
}

// Read populates the Envelope from its binary form in r.
// The Envelope is left unchanged if an error is returned.
func (e *Envelope) Read(r io.Reader) error {
	var (
		magic  uint16
		endian binary.ByteOrder = binary.BigEndian
	)
	if err := bin.Int(&magic).Read(r, endian); err != nil {
		return err
	}
	switch magic {
	case magicBytes:
	case magicBytesInverse:
		endian = binary.LittleEndian
	default:
		return fmt.Errorf("%w: unrecognized magic 0x%04x", ErrInvalidHeader, magic)
	}
	read := new(Envelope)
	if err := read.bodyMapper().Read(r, endian); err != nil {
		return err
	}
	if err := read.validate(); err != nil {
		return err
	}
	*e = *read
	return nil
}

func (e *Envelope) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Envelope) UnmarshalBinary(data []byte) error {
	return e.Read(bytes.NewReader(data))
}
