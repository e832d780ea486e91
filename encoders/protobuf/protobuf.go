// Package protobuf provides a Protocol Buffers encoder for ipc messages.
// The wire document is carried as a google.protobuf.Struct, so no generated
// message types are needed and the document keeps the same member layout as
// the JSON format.
package protobuf

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/openscan/ipcmsg"
)

type Encoder struct{}

var _ ipcmsg.Encoder = &Encoder{}

func (e *Encoder) Encode(m *ipcmsg.Message) ([]byte, error) {
	doc, err := ipcmsg.ToFields(m)
	if err != nil {
		return nil, err
	}
	st, err := structpb.NewStruct(doc)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(st)
}

func (e *Encoder) Decode(data []byte) (*ipcmsg.Message, error) {
	var st structpb.Struct
	if err := proto.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("%w: %v", ipcmsg.ErrMalformedWire, err)
	}
	return ipcmsg.FromFields(st.AsMap())
}

func New() *Encoder {
	return &Encoder{}
}
