package artifact

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

const zstdSuffix = ".zst"

var (
	decoder *zstdDecoder
	mut     sync.Mutex
)

type zstdDecoder struct {
	decoder *zstd.Decoder
}

func newZstdDecoder() (*zstdDecoder, error) {
	mut.Lock()
	defer mut.Unlock()
	if decoder != nil {
		return decoder, nil
	}
	//When a value of 0 is provided in DecoderConcurrency, GOMAXPROCS will be used
	dec, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(0),
		zstd.WithDecoderLowmem(false))
	if err != nil {
		return nil, err
	}
	decoder = &zstdDecoder{
		decoder: dec,
	}
	return decoder, nil
}

func (d *zstdDecoder) decode(cdata []byte) ([]byte, error) {
	return d.decoder.DecodeAll(cdata, make([]byte, 0, len(cdata)*3))
}
