package events

import (
	"bytes"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/champions-tracker/internal/domain/event"
	"github.com/valyala/bytebufferpool"
)

// Encode serializes e as compact JSON.
func Encode(e event.Event) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(e); err != nil {
		return nil, crerr.Wrapf(err, "encode event type=%s", e.Type)
	}

	return append([]byte(nil), bytes.TrimRight(buf.B, "\n")...), nil
}

// Decode parses an event produced by Encode. The payload is left as a
// generic JSON value.
func Decode(raw []byte) (event.Event, error) {
	var e event.Event
	if err := sonic.Unmarshal(raw, &e); err != nil {
		return event.Event{}, crerr.Wrap(err, "decode event")
	}
	return e, nil
}
