package msgpack

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/openscan/ipcmsg"
)

type Encoder struct{}

var _ ipcmsg.Encoder = &Encoder{}

func (e *Encoder) Encode(m *ipcmsg.Message) ([]byte, error) {
	doc, err := ipcmsg.ToFields(m)
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(doc)
}

func (e *Encoder) Decode(data []byte) (*ipcmsg.Message, error) {
	var doc map[string]any
	if err := msgpack.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ipcmsg.ErrMalformedWire, err)
	}
	return ipcmsg.FromFields(doc)
}

func New() *Encoder {
	return &Encoder{}
}
